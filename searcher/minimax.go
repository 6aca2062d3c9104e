package searcher

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"math"
)

// Minimax returns the exact minimax value of state searched to depth, from the
// point of view of the side to move in state. It visits every node and serves as
// the reference for the pruned search.
func Minimax(state game.State, depth int, evaluate game.Evaluate) float64 {
	s := &search{
		perspective: state.Player(),
		evaluate:    evaluate,
		metrics:     metrics.NewDummyCollector(),
	}
	return s.minimax(state, depth, true)
}

func (s *search) minimax(state game.State, depth int, maximizing bool) float64 {
	s.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		return s.leaf(state)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, move := range state.LegalMoves() {
			value = math.Max(value, s.minimax(state.Play(move), depth-1, false))
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range state.LegalMoves() {
		value = math.Min(value, s.minimax(state.Play(move), depth-1, true))
	}
	return value
}
