package game

import (
	"errors"
	"fmt"
)

// Heuristic computes a non-negative magnitude for one side of the board.
// Authors must make sure both sides can never report zero at the same time,
// e.g. by giving a piece that is always present a non-zero value.
type Heuristic func(board Board, color Color) float64

type HeuristicEntry struct {
	Name      string
	Heuristic Heuristic
	Weight    float64
}

// HeuristicSet is a fixed list of weighted heuristics. Its Evaluate method is
// a game.Evaluate.
type HeuristicSet struct {
	entries []HeuristicEntry
}

var (
	ErrNegativeWeight     = errors.New("heuristic weight must be non-negative")
	ErrMissingHeuristic   = errors.New("heuristic function is nil")
	ErrDuplicateHeuristic = errors.New("heuristic registered twice")
)

func NewHeuristicSet(entries ...HeuristicEntry) (*HeuristicSet, error) {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Heuristic == nil {
			return nil, fmt.Errorf("%q: %w", entry.Name, ErrMissingHeuristic)
		}
		if entry.Weight < 0 {
			return nil, fmt.Errorf("%q weight %v: %w", entry.Name, entry.Weight, ErrNegativeWeight)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("%q: %w", entry.Name, ErrDuplicateHeuristic)
		}
		seen[entry.Name] = true
	}

	return &HeuristicSet{entries: append([]HeuristicEntry(nil), entries...)}, nil
}

// DefaultHeuristicSet blends material (0.75) and mobility (0.25).
func DefaultHeuristicSet() *HeuristicSet {
	return &HeuristicSet{entries: []HeuristicEntry{
		{Name: MaterialName, Heuristic: Material, Weight: 0.75},
		{Name: MobilityName, Heuristic: Mobility, Weight: 0.25},
	}}
}

func (hs *HeuristicSet) Entries() []HeuristicEntry {
	return append([]HeuristicEntry(nil), hs.entries...)
}

// TotalWeight is the largest absolute value Evaluate can return.
func (hs *HeuristicSet) TotalWeight() float64 {
	total := 0.0
	for _, entry := range hs.entries {
		total += entry.Weight
	}
	return total
}

// Evaluate sums the weighted, normalized heuristics from perspective's point of view
func (hs *HeuristicSet) Evaluate(s State, perspective Color) float64 {
	board, ok := s.(Board)
	if !ok {
		panic("unexpected state type: state does not expose a board")
	}

	score := 0.0
	for _, entry := range hs.entries {
		score += entry.Weight * Normalize(entry.Heuristic, board, perspective)
	}
	return score
}

// Normalize compares both sides' magnitudes to a score in (-1, 1).
// Normalize(h, b, c) == -Normalize(h, b, c.Opponent()).
func Normalize(h Heuristic, board Board, perspective Color) float64 {
	return normalize(h(board, perspective), h(board, perspective.Opponent()))
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
