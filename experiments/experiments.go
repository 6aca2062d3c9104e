package experiments

import (
	"chessai/chessrules"
	"chessai/config"
	"chessai/engine"
	"chessai/experiments/metrics"
	"chessai/game"
	"chessai/searcher"
	"chessai/searcher/agent"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type pairing struct {
	id    int
	white config.AgentConfig
	black config.AgentConfig
}

// Run plays every match up of c and stores the results as CSV files in a new
// folder under c.OutputDir, whose path is returned.
func Run(name string, c *config.Config) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if _, err := StartState(c); err != nil {
		return "", err
	}

	// Each match up plays Games games, alternating colors
	var games []pairing
	for _, m := range c.MatchUps {
		first, _ := c.Agent(m[0])
		second, _ := c.Agent(m[1])
		for i := 0; i < c.Games; i++ {
			g := pairing{id: len(games) + 1, white: first, black: second}
			if i%2 == 1 {
				g.white, g.black = second, first
			}
			games = append(games, g)
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(games))

	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))

	var mu sync.Mutex
	completed := 0
	var g errgroup.Group
	g.SetLimit(c.Parallel)
	for i, p := range games {
		i, p := i, p
		g.Go(func() error {
			outcome, gameMetric, moveMetrics, err := runGame(c, p)
			if err != nil {
				return fmt.Errorf("game %d: %w", p.id, err)
			}
			gameRecords[i] = metrics.GameRecord{
				ID:         p.id,
				White:      p.white.ID,
				Black:      p.black.ID,
				GameMetric: gameMetric,
			}
			for _, mm := range moveMetrics {
				moveRecords[i] = append(moveRecords[i], metrics.MoveRecord{Game: p.id, MoveMetric: mm})
			}

			mu.Lock()
			completed++
			log.Info().Msgf("completed game %d (%d of %d): agent %d vs agent %d, %s",
				p.id, completed, len(games), p.white.ID, p.black.ID, outcome)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, c, gameRecords, moveRecords)
}

func store(name string, c *config.Config, gameRecords []metrics.GameRecord, moveRecords [][]metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(c.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := make([]config.AgentConfig, len(c.Agents))
	for i, a := range c.Agents {
		configs[i], _ = c.Agent(a.ID)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	var moves []metrics.MoveRecord
	for _, records := range moveRecords {
		moves = append(moves, records...)
	}
	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the outcome
func runGame(c *config.Config, p pairing) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := StartState(c)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	white, err := createAgent(p.white, p.id)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	black, err := createAgent(p.black, p.id)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	return engine.LocalEngine(state, white, black, c.MaxMoves).Run()
}

// StartState returns the configured start position, the standard one by default.
func StartState(c *config.Config) (game.State, error) {
	if c.StartFEN == "" {
		return chessrules.NewPosition(), nil
	}
	p, err := chessrules.FromFEN(c.StartFEN)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Opponents creates the agents of the first match up, first one as white.
func Opponents(c *config.Config) (agent.Agent, agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	first, _ := c.Agent(c.MatchUps[0][0])
	second, _ := c.Agent(c.MatchUps[0][1])
	white, err := createAgent(first, 1)
	if err != nil {
		return nil, nil, err
	}
	black, err := createAgent(second, 1)
	if err != nil {
		return nil, nil, err
	}
	return white, black, nil
}

// createAgent builds the agent for one game. Seeds are offset by the game ID
// so that repeated games differ but experiments stay reproducible.
func createAgent(c config.AgentConfig, gameID int) (agent.Agent, error) {
	seed := c.Seed + uint64(gameID)
	if c.Kind == config.RandomAgent {
		return agent.NewRandomAgent(seed), nil
	}

	eng, err := createEngine(c)
	if err != nil {
		return nil, err
	}
	if c.Kind == config.TrainingAgent {
		return agent.NewTrainingAgent(eng, c.Depth, c.Epsilon, seed), nil
	}
	return agent.NewEvaluationAgent(eng, c.Depth), nil
}

func createEngine(c config.AgentConfig) (*searcher.Engine, error) {
	set, err := c.HeuristicSet()
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithEvaluationFn(set.Evaluate)}
	if c.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(c.Goroutines))
	}
	if c.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.New(options...), nil
}
