package engine

import "chessai/experiments/metrics"

const MaxMoves = 200

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run() (outcome string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
