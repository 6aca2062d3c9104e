package config

import (
	"chessai/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests loading and validating experiment configs
- defaults are valid and fill fields missing from the file
- agents inherit unset search settings
- flag overrides replace file values
- invalid values are reported together
*/

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		c := Default()

		require.NoError(t, c.Validate())
		require.Equal(t, 3, c.Depth)
		require.Equal(t, 200, c.MaxMoves)
	})

	t.Run("reading a file over the defaults", func(t *testing.T) {
		path := writeConfig(t, `
depth: 2
games: 4
agents:
  - id: 7
    kind: search
    goroutines: 4
    heuristics:
      - name: material
        weight: 0.5
      - name: position
        weight: 0.5
  - id: 8
    kind: training
    epsilon: 0.2
    seed: 9
match_ups:
  - [7, 8]
  - [8, 7]
`)

		c, err := Load(path)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.Equal(t, 2, c.Depth)
		require.Equal(t, 4, c.Games)
		require.Equal(t, 200, c.MaxMoves, "Missing fields should keep their defaults")
		require.Equal(t, "experiments", c.OutputDir)
		require.Len(t, c.Agents, 2, "Agents from the file replace the default agents")
		require.Equal(t, [][2]int{{7, 8}, {8, 7}}, c.MatchUps)

		a, ok := c.Agent(7)
		require.True(t, ok)
		require.Equal(t, 2, a.Depth, "Unset depth should come from the config")
		require.Equal(t, 4, a.Goroutines)

		b, ok := c.Agent(8)
		require.True(t, ok)
		require.Equal(t, c.Heuristics, b.Heuristics)
		require.Equal(t, uint64(9), b.Seed)
		require.Equal(t, 0.2, b.Epsilon)
	})

	t.Run("failing on missing files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("failing on malformed YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: [1"))
		require.Error(t, err)
	})
}

func TestOverride(t *testing.T) {
	c := Default()
	c.Agents[0].Depth = 5

	c.Override(1, 6, 40, "out")

	require.Equal(t, 1, c.Depth)
	require.Equal(t, 1, c.Agents[0].Depth)
	require.Equal(t, 6, c.Games)
	require.Equal(t, 40, c.MaxMoves)
	require.Equal(t, "out", c.OutputDir)

	c.Override(0, 0, 0, "")
	require.Equal(t, 6, c.Games, "Zero values should leave settings unchanged")
}

func TestValidate(t *testing.T) {
	t.Run("rejecting bad values", func(t *testing.T) {
		cases := map[string]func(c *Config){
			"depth":          func(c *Config) { c.Depth = 0 },
			"games":          func(c *Config) { c.Games = 0 },
			"max moves":      func(c *Config) { c.MaxMoves = -1 },
			"parallel":       func(c *Config) { c.Parallel = 0 },
			"unknown kind":   func(c *Config) { c.Agents[1].Kind = "oracle" },
			"duplicate id":   func(c *Config) { c.Agents[1].ID = 1 },
			"unknown agent":  func(c *Config) { c.MatchUps = [][2]int{{1, 3}} },
			"epsilon":        func(c *Config) { c.Agents[0].Kind, c.Agents[0].Epsilon = TrainingAgent, 2 },
			"heuristic name": func(c *Config) { c.Heuristics = []HeuristicConfig{{Name: "tempo", Weight: 1}} },
			"negative weight": func(c *Config) {
				c.Agents[0].Heuristics = []HeuristicConfig{{Name: game.MaterialName, Weight: -1}}
			},
		}
		for name, mutate := range cases {
			c := Default()
			mutate(c)

			require.ErrorIs(t, c.Validate(), ErrInvalidConfig, name)
		}
	})

	t.Run("reporting every problem", func(t *testing.T) {
		c := Default()
		c.Games = 0
		c.MaxMoves = 0

		err := c.Validate()

		require.ErrorContains(t, err, "games")
		require.ErrorContains(t, err, "max_moves")
	})
}

func TestHeuristicSet(t *testing.T) {
	t.Run("building the default blend", func(t *testing.T) {
		a, ok := Default().Agent(1)
		require.True(t, ok)

		set, err := a.HeuristicSet()

		require.NoError(t, err)
		require.Equal(t, 1.0, set.TotalWeight())
		require.Len(t, set.Entries(), 2)
	})

	t.Run("allowing weights above one", func(t *testing.T) {
		a := AgentConfig{Heuristics: []HeuristicConfig{
			{Name: game.MaterialName, Weight: 1},
			{Name: game.MobilityName, Weight: 1},
		}}

		set, err := a.HeuristicSet()

		require.NoError(t, err)
		require.Equal(t, 2.0, set.TotalWeight())
	})

	t.Run("rejecting duplicates", func(t *testing.T) {
		a := AgentConfig{Heuristics: []HeuristicConfig{
			{Name: game.MaterialName, Weight: 0.5},
			{Name: game.MaterialName, Weight: 0.5},
		}}

		_, err := a.HeuristicSet()

		require.ErrorIs(t, err, game.ErrDuplicateHeuristic)
	})
}
