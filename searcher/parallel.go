package searcher

import (
	"chessai/game"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// workerPanic carries a panic raised by the rules engine inside a worker back
// to the caller's goroutine.
type workerPanic struct {
	value any
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("search worker panicked: %v", p.value)
}

// parallelRoot scores every root move with a full window so that each score is
// exact. Scores are stored by move index, which keeps the tie-break in Search
// identical to the sequential order.
func (s *search) parallelRoot(state game.State, moves []game.Move, depth, goroutines int) ([]float64, error) {
	scores := make([]float64, len(moves))

	var g errgroup.Group
	g.SetLimit(goroutines)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &workerPanic{value: r}
				}
			}()
			scores[i] = s.child(state.Play(move), depth-1, math.Inf(-1), math.Inf(1))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var p *workerPanic
		if errors.As(err, &p) {
			panic(p.value)
		}
		return nil, err
	}
	return scores, nil
}
