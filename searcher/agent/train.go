package agent

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"chessai/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	engine  *searcher.Engine
	depth   int
	epsilon float64
	rng     *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that plays a uniformly random
// legal move with probability epsilon and the searched best move otherwise.
// With epsilon >= 1 it never searches and engine may be nil.
func NewTrainingAgent(engine *searcher.Engine, depth int, epsilon float64, seed uint64) Agent {
	return &trainingAgent{
		engine:  engine,
		depth:   depth,
		epsilon: epsilon,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return NewTrainingAgent(nil, 0, 1, seed)
}

func (a *trainingAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	if a.epsilon >= 1 || a.rng.Float64() < a.epsilon {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return nil, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
		}
		return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
	}

	result, err := a.engine.Search(state, a.depth)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
