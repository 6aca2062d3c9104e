package config

import (
	"chessai/game"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Agent kinds
const (
	SearchAgent   = "search"
	RandomAgent   = "random"
	TrainingAgent = "training"
)

type HeuristicConfig struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type AgentConfig struct {
	ID         int               `yaml:"id"`
	Kind       string            `yaml:"kind"`
	Depth      int               `yaml:"depth,omitempty"`
	Goroutines int               `yaml:"goroutines,omitempty"`
	NoPruning  bool              `yaml:"no_pruning,omitempty"`
	Heuristics []HeuristicConfig `yaml:"heuristics,omitempty"`
	Epsilon    float64           `yaml:"epsilon,omitempty"` // Training agents only
	Seed       uint64            `yaml:"seed,omitempty"`
}

// Config describes an experiment: the agents and the games they play. Depth,
// Goroutines and Heuristics are defaults for agents that leave them unset.
type Config struct {
	Depth      int               `yaml:"depth"`
	Goroutines int               `yaml:"goroutines"`
	Heuristics []HeuristicConfig `yaml:"heuristics"`
	Games      int               `yaml:"games"` // Per match up
	MaxMoves   int               `yaml:"max_moves"`
	StartFEN   string            `yaml:"start_fen,omitempty"`
	OutputDir  string            `yaml:"output_dir"`
	Parallel   int               `yaml:"parallel"` // Games played at once
	Agents     []AgentConfig     `yaml:"agents"`
	MatchUps   [][2]int          `yaml:"match_ups"` // Pairs of agent IDs, first one starts
}

func Default() *Config {
	return &Config{
		Depth:      3,
		Goroutines: 1,
		Heuristics: []HeuristicConfig{
			{Name: game.MaterialName, Weight: 0.75},
			{Name: game.MobilityName, Weight: 0.25},
		},
		Games:     2,
		MaxMoves:  200,
		OutputDir: "experiments",
		Parallel:  1,
		Agents: []AgentConfig{
			{ID: 1, Kind: SearchAgent},
			{ID: 2, Kind: RandomAgent, Seed: 1},
		},
		MatchUps: [][2]int{{1, 2}},
	}
}

// Load reads a YAML file over the defaults. Lists given in the file replace the
// default lists.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

// Override replaces settings with the non-zero arguments. A depth also applies
// to every search agent.
func (c *Config) Override(depth, games, maxMoves int, outputDir string) {
	if depth > 0 {
		c.Depth = depth
		for i := range c.Agents {
			c.Agents[i].Depth = depth
		}
	}
	if games > 0 {
		c.Games = games
	}
	if maxMoves > 0 {
		c.MaxMoves = maxMoves
	}
	if outputDir != "" {
		c.OutputDir = outputDir
	}
}

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Depth >= 1, "depth %d must be at least 1", c.Depth)
	check(c.Goroutines >= 1, "goroutines %d must be at least 1", c.Goroutines)
	check(c.Games >= 1, "games %d must be at least 1", c.Games)
	check(c.MaxMoves >= 1, "max_moves %d must be at least 1", c.MaxMoves)
	check(c.Parallel >= 1, "parallel %d must be at least 1", c.Parallel)
	check(c.OutputDir != "", "output_dir must be set")
	check(len(c.Agents) > 0, "no agents configured")
	check(len(c.MatchUps) > 0, "no match ups configured")

	ids := map[int]bool{}
	for _, a := range c.Agents {
		check(!ids[a.ID], "agent %d is configured twice", a.ID)
		ids[a.ID] = true

		a = c.Resolve(a)
		switch a.Kind {
		case SearchAgent, TrainingAgent:
			check(a.Depth >= 1, "agent %d: depth %d must be at least 1", a.ID, a.Depth)
			check(a.Goroutines >= 1, "agent %d: goroutines %d must be at least 1", a.ID, a.Goroutines)
			check(a.Epsilon >= 0 && a.Epsilon <= 1, "agent %d: epsilon %v must be in [0, 1]", a.ID, a.Epsilon)
			if _, err := a.HeuristicSet(); err != nil {
				errs = append(errs, fmt.Errorf("agent %d: %w", a.ID, err))
			}
		case RandomAgent:
		default:
			errs = append(errs, fmt.Errorf("agent %d: unknown kind %q", a.ID, a.Kind))
		}
	}
	for _, m := range c.MatchUps {
		check(ids[m[0]] && ids[m[1]], "match up %v refers to an unknown agent", m)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Resolve fills the unset search settings of a from the config defaults.
func (c *Config) Resolve(a AgentConfig) AgentConfig {
	if a.Depth == 0 {
		a.Depth = c.Depth
	}
	if a.Goroutines == 0 {
		a.Goroutines = c.Goroutines
	}
	if len(a.Heuristics) == 0 {
		a.Heuristics = c.Heuristics
	}
	return a
}

// Agent returns the resolved config of the agent with the given ID.
func (c *Config) Agent(id int) (AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.ID == id {
			return c.Resolve(a), true
		}
	}
	return AgentConfig{}, false
}

// HeuristicSet builds the evaluation blend of a. Blends whose weights sum above
// 1 are allowed but can rival a decisive result.
func (a AgentConfig) HeuristicSet() (*game.HeuristicSet, error) {
	entries := make([]game.HeuristicEntry, 0, len(a.Heuristics))
	for _, h := range a.Heuristics {
		heuristic, err := game.HeuristicByName(h.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, game.HeuristicEntry{Name: h.Name, Heuristic: heuristic, Weight: h.Weight})
	}
	set, err := game.NewHeuristicSet(entries...)
	if err != nil {
		return nil, err
	}
	if set.TotalWeight() > 1 {
		log.Warn().Msgf("agent %d: heuristic weights sum to %.2f, evaluations may outweigh a win", a.ID, set.TotalWeight())
	}
	return set, nil
}
