package searcher

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine runs bounded-depth minimax searches. An Engine holds no per-search
// state, so one Engine may serve concurrent Search calls.
type Engine struct {
	goroutines int
	pruning    bool
	evaluate   game.Evaluate
	metrics    func() metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// WithGoroutines searches root successors concurrently.
func WithGoroutines(goroutines int) Option {
	return func(e *Engine) {
		if goroutines > 0 {
			e.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector
	}
}

// WithoutPruning searches the full tree with plain minimax.
func WithoutPruning() Option {
	return func(e *Engine) {
		e.pruning = false
	}
}

func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		goroutines: 1,
		pruning:    true,
		evaluate:   game.DefaultHeuristicSet().Evaluate,
		metrics:    metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) BestMove(state game.State, depth int) (game.Move, error) {
	result, err := e.Search(state, depth)
	if err != nil {
		return nil, err
	}
	return result.Move, nil
}

// Search returns the best move for the side to move in state together with its
// value. The side to move is the perspective for the whole search.
func (e *Engine) Search(state game.State, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}
	if state.IsTerminal() {
		return Result{}, ErrTerminalState
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	collector := e.metrics()
	collector.Start(e.goroutines, depth, e.pruning)
	collector.AddNode() // Root

	s := &search{
		perspective: state.Player(),
		evaluate:    e.evaluate,
		pruning:     e.pruning,
		metrics:     collector,
	}

	var scores []float64
	if e.goroutines > 1 && len(moves) > 1 {
		var err error
		scores, err = s.parallelRoot(state, moves, depth, e.goroutines)
		if err != nil {
			return Result{}, err
		}
	} else {
		scores = s.sequentialRoot(state, moves, depth)
	}

	// First encountered wins ties
	bestIndex := 0
	bestScore := math.Inf(-1)
	for i, score := range scores {
		if score > bestScore {
			bestIndex, bestScore = i, score
		}
	}

	metric := collector.Complete()
	metric.Score = bestScore
	log.Debug().Msgf("%s picked %s with score %.4f at depth %d (%d nodes)",
		s.perspective, moves[bestIndex], bestScore, depth, metric.Nodes)

	return Result{Move: moves[bestIndex], Score: bestScore, Metric: metric}, nil
}

// sequentialRoot scores each root move. The best score so far seeds alpha, so a
// score that does not beat it is only an upper bound; bounds never win the
// strictly-greater comparison in Search.
func (s *search) sequentialRoot(state game.State, moves []game.Move, depth int) []float64 {
	scores := make([]float64, len(moves))
	best := math.Inf(-1)
	for i, move := range moves {
		scores[i] = s.child(state.Play(move), depth-1, best, math.Inf(1))
		log.Debug().Msgf("root move %s scored %.4f", move, scores[i])
		best = math.Max(best, scores[i])
	}
	return scores
}

func (s *search) child(state game.State, depth int, alpha, beta float64) float64 {
	if s.pruning {
		return s.minValue(state, depth, alpha, beta)
	}
	return s.minimax(state, depth, false)
}

type search struct {
	perspective game.Color
	evaluate    game.Evaluate
	pruning     bool
	metrics     metrics.Collector
}

// maxValue returns the value of a node where the root player moves, clipped to
// [alpha, beta]. Requires alpha <= beta.
func (s *search) maxValue(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		return s.leaf(state)
	}

	value := math.Inf(-1)
	for _, move := range state.LegalMoves() {
		value = math.Max(value, s.minValue(state.Play(move), depth-1, alpha, beta))
		if value >= beta {
			s.metrics.AddCutoff()
			return value
		}
		alpha = math.Max(alpha, value)
	}
	return value
}

// minValue is the opponent's counterpart of maxValue.
func (s *search) minValue(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if depth == 0 || state.IsTerminal() {
		return s.leaf(state)
	}

	value := math.Inf(1)
	for _, move := range state.LegalMoves() {
		value = math.Min(value, s.maxValue(state.Play(move), depth-1, alpha, beta))
		if value <= alpha {
			s.metrics.AddCutoff()
			return value
		}
		beta = math.Min(beta, value)
	}
	return value
}

// leaf scores terminal states by outcome and everything else with the
// evaluation function.
func (s *search) leaf(state game.State) float64 {
	if state.IsTerminal() {
		s.metrics.AddTerminal()
		return game.TerminalScore(state, s.perspective)
	}
	s.metrics.AddEvaluation()
	return s.evaluate(state, s.perspective)
}
