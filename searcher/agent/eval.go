package agent

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"chessai/searcher"
)

type evaluationAgent struct {
	engine *searcher.Engine
	depth  int
}

// NewEvaluationAgent returns an agent that always plays the searched best move.
func NewEvaluationAgent(engine *searcher.Engine, depth int) Agent {
	return evaluationAgent{engine: engine, depth: depth}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.engine.Search(state, a.depth)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
