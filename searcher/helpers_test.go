package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// drawnGrid is a full 6x7 grid without four in a row for either side
var drawnGrid = [][]int{
	{1, 1, 2, 2, 1, 1, 2},
	{2, 2, 1, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 1, 2},
	{2, 2, 1, 1, 2, 2, 1},
	{1, 1, 2, 2, 1, 1, 2},
	{2, 2, 1, 1, 2, 2, 1},
}

func emptyGrid(rows, columns int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, columns)
	}
	return grid
}

func copyGrid(grid [][]int) [][]int {
	copied := make([][]int, len(grid))
	for r := range grid {
		copied[r] = append([]int(nil), grid[r]...)
	}
	return copied
}

// threeInRowGrid has PlayerA on the bottom row's first three columns and two B pieces stacked on the last column.
func threeInRowGrid() [][]int {
	grid := emptyGrid(game.StandardRows, game.StandardColumns)
	grid[5][0], grid[5][1], grid[5][2] = 1, 1, 1
	grid[5][6], grid[4][6] = 2, 2
	return grid
}

func fromGrid(t *testing.T, grid [][]int, toMove game.Player) *game.Board {
	t.Helper()
	b, err := game.FromGrid(grid, toMove)
	require.NoError(t, err)
	return b
}

// randomBoards returns count non-terminal standard boards reached by random play.
func randomBoards(t *testing.T, seed uint64, count, maxMoves int) []*game.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	boards := make([]*game.Board, 0, count)
	for len(boards) < count {
		b := game.NewStandardBoard()
		moves := rng.Intn(maxMoves + 1)
		for i := 0; i < moves && !b.Terminal(); i++ {
			columns := b.AvailableColumns()
			b.Drop(columns[rng.Intn(len(columns))])
		}
		if !b.Terminal() {
			boards = append(boards, b)
		}
	}
	return boards
}

// decidedGrid has four of PlayerA on the bottom row; PlayerB is to move and has already lost
func decidedGrid() [][]int {
	grid := emptyGrid(6, 7)
	for c := 0; c < 4; c++ {
		grid[5][c] = 1
	}
	grid[5][6], grid[4][6], grid[3][6] = 2, 2, 2
	return grid
}
