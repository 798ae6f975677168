package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternEvaluator(t *testing.T) {
	e := NewPatternEvaluator()

	t.Run("empty board has no patterns", func(t *testing.T) {
		require.Zero(t, e.Evaluate(NewStandardBoard(), PlayerA))
	})

	t.Run("playable completing cell is a must-fill", func(t *testing.T) {
		grid := emptyGrid(6, 7)
		grid[5][0], grid[5][1], grid[5][2] = 1, 1, 1
		b, err := FromGrid(grid, PlayerB)
		require.NoError(t, err)

		heat := b.heat(PlayerA)

		require.Equal(t, heatMustFill, heat[b.index(5, 3)])
		require.Equal(t, heatMustFill, e.Evaluate(b, PlayerA))
		require.Equal(t, -heatMustFill, e.Evaluate(b, PlayerB))
	})

	t.Run("unsupported completing cell marks the cell beneath", func(t *testing.T) {
		grid := emptyGrid(6, 7)
		grid[5][0], grid[5][1], grid[5][2] = 2, 2, 2
		grid[4][0], grid[4][1], grid[4][2] = 1, 1, 1
		b, err := FromGrid(grid, PlayerB)
		require.NoError(t, err)

		heat := b.heat(PlayerA)

		require.Equal(t, heatBeneathPending, heat[b.index(5, 3)])
		require.Zero(t, heat[b.index(4, 3)])
		// Only B's playable three counts
		require.Equal(t, -heatMustFill, e.Evaluate(b, PlayerA))
	})

	t.Run("open two heats both ends", func(t *testing.T) {
		grid := emptyGrid(6, 7)
		grid[5][2], grid[5][3] = 1, 1
		b, err := FromGrid(grid, PlayerB)
		require.NoError(t, err)

		heat := b.heat(PlayerA)

		require.Equal(t, heatOpenEnd, heat[b.index(5, 1)])
		require.Equal(t, heatOpenEnd, heat[b.index(5, 4)])
		require.Equal(t, 2*heatOpenEnd, e.Evaluate(b, PlayerA))
	})

	t.Run("split two heats the ends and the gap", func(t *testing.T) {
		grid := emptyGrid(6, 7)
		grid[5][1], grid[5][3] = 1, 1
		b, err := FromGrid(grid, PlayerB)
		require.NoError(t, err)

		heat := b.heat(PlayerA)

		require.Equal(t, heatOpenEnd, heat[b.index(5, 0)])
		require.Equal(t, heatSplitGap, heat[b.index(5, 2)])
		require.Equal(t, heatOpenEnd, heat[b.index(5, 4)])
		require.Equal(t, 2*heatOpenEnd+heatSplitGap, e.Evaluate(b, PlayerA))
	})

	t.Run("plugs into the Evaluator interface", func(t *testing.T) {
		var evaluator Evaluator = e
		require.NotNil(t, evaluator)
	})
}
