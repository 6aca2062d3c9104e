package searcher

import (
	"chessai/chessrules"
	"chessai/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, fen string) *chessrules.Position {
	t.Helper()
	p, err := chessrules.FromFEN(fen)
	require.NoError(t, err)
	return p
}

func TestChessSearch(t *testing.T) {
	t.Run("capturing into mate at depth 1", func(t *testing.T) {
		p := mustParse(t, "r5k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

		for _, depth := range []int{1, 2} {
			result, err := New().Search(p, depth)

			require.NoError(t, err)
			require.Equal(t, "a1a8", result.Move.String(), "depth %d", depth)
			require.Equal(t, game.WinScore, result.Score, "depth %d", depth)
		}
	})

	t.Run("capturing into mate as black", func(t *testing.T) {
		p := mustParse(t, "r5k1/5ppp/8/8/8/8/5PPP/R5K1 b - - 0 1")

		result, err := New().Search(p, 1)

		require.NoError(t, err)
		require.Equal(t, "a8a1", result.Move.String())
		require.Equal(t, game.WinScore, result.Score)
	})

	t.Run("horizon leaves fall back to the evaluation", func(t *testing.T) {
		p := chessrules.NewPosition()

		result, err := New(WithMetrics()).Search(p, 1)

		require.NoError(t, err)
		require.Equal(t, 20, result.Metric.Evaluations)
		require.Equal(t, 0, result.Metric.Terminals)
		require.Less(t, result.Score, game.WinScore)
	})

	t.Run("pruning agrees with plain minimax", func(t *testing.T) {
		positions := []string{
			"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
			"r5k1/5ppp/8/8/8/8/5PPP/R5K1 b - - 0 1",
			"4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1",
		}
		for _, fen := range positions {
			p := mustParse(t, fen)

			pruned, err := New(WithMetrics()).Search(p, 2)
			require.NoError(t, err)
			full, err := New(WithMetrics(), WithoutPruning()).Search(p, 2)
			require.NoError(t, err)

			require.Equal(t, full.Score, pruned.Score, fen)
			require.Equal(t, full.Move, pruned.Move, fen)
			require.LessOrEqual(t, pruned.Metric.Nodes, full.Metric.Nodes, fen)
		}
	})

	t.Run("parallel root search matches sequential", func(t *testing.T) {
		p := mustParse(t, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")

		sequential, err := New().Search(p, 3)
		require.NoError(t, err)
		parallel, err := New(WithGoroutines(4)).Search(p, 3)
		require.NoError(t, err)

		require.Equal(t, sequential.Move, parallel.Move)
		require.Equal(t, sequential.Score, parallel.Score)
	})

	t.Run("custom heuristic blends plug in unchanged", func(t *testing.T) {
		set, err := game.NewHeuristicSet(
			game.HeuristicEntry{Name: game.MaterialName, Heuristic: game.Material, Weight: 0.5},
			game.HeuristicEntry{Name: game.PositionName, Heuristic: game.Position, Weight: 0.5},
		)
		require.NoError(t, err)
		p := chessrules.NewPosition()

		first, err := New(WithEvaluationFn(set.Evaluate)).BestMove(p, 2)
		require.NoError(t, err)
		second, err := New(WithEvaluationFn(set.Evaluate)).BestMove(p, 2)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}
