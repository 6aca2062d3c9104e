package experiments

import (
	"chessai/config"
	"fmt"
	"sort"
)

// Presets are named experiments that override the agents and match ups of a
// base config while keeping its game settings.
var Presets = map[string]func(base *config.Config) *config.Config{
	"baseline":        Baseline,
	"depth":           DepthToStrength,
	"pruning":         PruningToThroughput,
	"parallelization": ParallelizationToThroughput,
}

// Preset looks up a named experiment. The "config" name runs base unchanged.
func Preset(name string, base *config.Config) (*config.Config, error) {
	if name == "config" {
		return base, nil
	}
	preset, ok := Presets[name]
	if !ok {
		names := make([]string, 0, len(Presets))
		for n := range Presets {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown experiment %q, expected config or one of %v", name, names)
	}
	return preset(base), nil
}

// Setup applies the command line overrides to base and then selects the named
// experiment, so that presets build their agents from the overridden settings.
func Setup(name string, base *config.Config, depth, games, maxMoves int, outputDir string) (*config.Config, error) {
	base.Override(depth, games, maxMoves, outputDir)
	return Preset(name, base)
}

// Baseline pairs a search agent with the configured settings against a random
// agent.
func Baseline(base *config.Config) *config.Config {
	c := *base
	c.Agents = []config.AgentConfig{
		{ID: 1, Kind: config.SearchAgent},
		{ID: 2, Kind: config.RandomAgent, Seed: 1},
	}
	c.MatchUps = [][2]int{{1, 2}}
	return &c
}

// DepthToStrength pairs each depth up to the configured one against the
// depth-1 baseline.
func DepthToStrength(base *config.Config) *config.Config {
	c := *base
	c.Agents = []config.AgentConfig{{ID: 0, Kind: config.SearchAgent, Depth: 1}}
	c.MatchUps = nil
	for depth := 2; depth <= max(base.Depth, 2); depth++ {
		c.Agents = append(c.Agents, config.AgentConfig{ID: depth, Kind: config.SearchAgent, Depth: depth})
		c.MatchUps = append(c.MatchUps, [2]int{0, depth})
	}
	return &c
}

// PruningToThroughput plays the same search with and without pruning, each
// against itself for similar game lengths.
func PruningToThroughput(base *config.Config) *config.Config {
	c := *base
	c.Agents = []config.AgentConfig{
		{ID: 1, Kind: config.SearchAgent},
		{ID: 2, Kind: config.SearchAgent, NoPruning: true},
	}
	c.MatchUps = [][2]int{{1, 1}, {2, 2}}
	return &c
}

// ParallelizationToThroughput plays root-parallel searches with increasing
// goroutines, each against itself.
func ParallelizationToThroughput(base *config.Config) *config.Config {
	c := *base
	c.Agents = nil
	c.MatchUps = nil
	for i, goroutines := range []int{1, 2, 4, 8} {
		id := i + 1
		c.Agents = append(c.Agents, config.AgentConfig{ID: id, Kind: config.SearchAgent, Goroutines: goroutines})
		c.MatchUps = append(c.MatchUps, [2]int{id, id})
	}
	return &c
}
