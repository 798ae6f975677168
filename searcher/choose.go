package searcher

import (
	"connect4/game"
	"fmt"
	"math"
	"time"
)

// ChooseMoveMinimax picks a column for toMove on grid (row 0 at the top, cells
// 0 empty, 1 PlayerA, 2 PlayerB) with a depth-limited alpha-beta search.
// A full grid yields NoColumn and a score of 0; a grid that is already won
// yields NoColumn and the infinite score of the winner from toMove's side.
func ChooseMoveMinimax(grid [][]int, toMove game.Player, depth int, weights game.Weights) (int, float64, error) {
	if depth < 1 {
		return game.NoColumn, 0, ErrInvalidDepth
	}
	if err := weights.Validate(); err != nil {
		return game.NoColumn, 0, err
	}
	board, err := game.FromGrid(grid, toMove)
	if err != nil {
		return game.NoColumn, 0, err
	}

	column, score, _ := NewMinimax(game.NewWindowEvaluator(weights)).FindMove(board, depth)
	return column, score, nil
}

// ChooseMoveMCTS picks a column for toMove on grid with Monte Carlo tree search
// bounded by rollouts and budget, whichever runs out first. Zero rollouts run no
// search at all; negative rollouts leave only the time budget. Extra options such as WithSeed or
// WithGoroutines are applied after the budget.
func ChooseMoveMCTS(grid [][]int, toMove game.Player, rollouts int, budget time.Duration, exploration float64, options ...Option) (int, Stats, error) {
	if exploration < 0 || math.IsNaN(exploration) || math.IsInf(exploration, 0) {
		return game.NoColumn, nil, fmt.Errorf("%w: exploration constant %v", game.ErrMalformedInput, exploration)
	}
	board, err := game.FromGrid(grid, toMove)
	if err != nil {
		return game.NoColumn, nil, err
	}

	options = append([]Option{WithRollouts(rollouts), WithDuration(budget), WithExploration(exploration)}, options...)
	column, stats, _ := NewMCTS(options...).Simulate(board)
	return column, stats, nil
}
