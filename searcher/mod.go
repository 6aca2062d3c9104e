package searcher

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"errors"
)

var (
	ErrInvalidDepth  = errors.New("search depth must be at least 1")
	ErrTerminalState = errors.New("cannot search from a terminal state")
	ErrNoLegalMoves  = errors.New("state has no legal moves")
)

// Result of a single root search
type Result struct {
	Move   game.Move
	Score  float64 // Minimax value of Move from the root player's perspective
	Metric metrics.SearchMetric
}

// Searcher picks a move for the side to move in state.
type Searcher interface {
	BestMove(state game.State, depth int) (game.Move, error)
}
