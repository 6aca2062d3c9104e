package agent

import (
	"chessai/experiments/metrics"
	"chessai/game"
)

type Agent interface {
	// FindMove returns the move to play and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}
