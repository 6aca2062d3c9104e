package engine

import (
	"chessai/experiments/metrics"
	"chessai/game"
	"chessai/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Unfinished is reported when the move cap stops a game.
const Unfinished = "unfinished"

// methodReporter is implemented by states that know how the game ended.
type methodReporter interface {
	Method() string
}

type localEngine struct {
	State    game.State
	Agents   [2]agent.Agent // Indexed by game.Color
	MaxMoves int
}

// LocalEngine plays white against black from state in process. maxMoves <= 0
// uses MaxMoves.
func LocalEngine(state game.State, white, black agent.Agent, maxMoves int) Engine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}
	return &localEngine{
		State:    state,
		Agents:   [2]agent.Agent{white, black},
		MaxMoves: maxMoves,
	}
}

// Run executes the game loop until the game ends or the move cap is hit.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for ; !e.State.IsTerminal() && step <= e.MaxMoves; step++ {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("step %d (%s): %w", step, player, err)
		}
		log.Debug().Msgf("step %d: %s plays %s", step, player, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.State = e.State.Play(move)
	}

	outcome := Unfinished
	if e.State.IsTerminal() {
		outcome = e.State.Outcome().String()
		if r, ok := e.State.(methodReporter); ok {
			outcome = fmt.Sprintf("%s (%s)", outcome, r.Method())
		}
	} else {
		log.Info().Msgf("stopped after %d moves without a result", e.MaxMoves)
	}

	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game ended after %d moves: %s", gameMetric.TotalMoves, outcome)
	return outcome, gameMetric, moveMetrics, nil
}
