package game

import (
	"testing"

	"github.com/stretchr/testify/require"
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

func play(t *testing.T, b *Board, columns ...int) {
	t.Helper()
	for _, c := range columns {
		require.True(t, b.Drop(c), "drop in column %d should succeed", c)
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("creates an empty board with the first mover to play", func(t *testing.T) {
		b, err := NewBoard(5, 8, PlayerB)

		require.NoError(t, err)
		require.Equal(t, 5, b.Rows())
		require.Equal(t, 8, b.Columns())
		require.Equal(t, PlayerB, b.Turn())
		require.Zero(t, b.Moves())
		require.Len(t, b.AvailableColumns(), 8)
		_, _, ok := b.LastMove()
		require.False(t, ok, "Empty board should have no last move")
	})

	t.Run("rejects degenerate dimensions", func(t *testing.T) {
		_, err := NewBoard(0, 7, PlayerA)
		require.ErrorIs(t, err, ErrMalformedInput)

		_, err = NewBoard(6, -1, PlayerA)
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("rejects an invalid first mover", func(t *testing.T) {
		_, err := NewBoard(6, 7, None)
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestBoardDrop(t *testing.T) {
	t.Run("piece lands on the bottom row and the turn passes", func(t *testing.T) {
		b := NewStandardBoard()

		ok := b.Drop(3)

		require.True(t, ok)
		require.Equal(t, PlayerA, b.At(5, 3), "First piece should land on the bottom row")
		require.Equal(t, PlayerB, b.Turn())
		require.Equal(t, 1, b.Moves())
		row, col, ok := b.LastMove()
		require.True(t, ok)
		require.Equal(t, 5, row)
		require.Equal(t, 3, col)
	})

	t.Run("pieces stack upwards in a column", func(t *testing.T) {
		b := NewStandardBoard()

		play(t, b, 2, 2, 2)

		require.Equal(t, PlayerA, b.At(5, 2))
		require.Equal(t, PlayerB, b.At(4, 2))
		require.Equal(t, PlayerA, b.At(3, 2))
		require.Equal(t, None, b.At(2, 2))
		require.Equal(t, 3, b.Height(2))
	})

	t.Run("full column is rejected without changing the board", func(t *testing.T) {
		b := NewStandardBoard()
		play(t, b, 0, 0, 0, 0, 0, 0)
		before := b.Grid()
		turn := b.Turn()

		ok := b.Drop(0)

		require.False(t, ok, "Drop into a full column should fail")
		require.Equal(t, before, b.Grid())
		require.Equal(t, turn, b.Turn(), "Turn should not advance on a failed drop")
		require.NotContains(t, b.AvailableColumns(), 0)
	})

	t.Run("out of range columns are rejected", func(t *testing.T) {
		b := NewStandardBoard()

		require.False(t, b.Drop(-1))
		require.False(t, b.Drop(7))
		require.Equal(t, PlayerA, b.Turn())
		require.Zero(t, b.Moves())
	})
}

func TestBoardIsFull(t *testing.T) {
	t.Run("board fills after rows x columns drops", func(t *testing.T) {
		b, err := NewBoard(2, 2, PlayerA)
		require.NoError(t, err)

		play(t, b, 0, 1, 0)
		require.False(t, b.IsFull())

		play(t, b, 1)
		require.True(t, b.IsFull())
		require.Empty(t, b.AvailableColumns())
		require.True(t, b.Terminal())
	})
}

func TestBoardCheckWin(t *testing.T) {
	tests := []struct {
		name    string
		setup   []int // Moves before the winning one
		winning int   // Winning column for PlayerA
	}{
		{name: "horizontal", setup: []int{0, 0, 1, 1, 2, 2}, winning: 3},
		{name: "vertical", setup: []int{4, 5, 4, 5, 4, 5}, winning: 4},
		{name: "rising diagonal", setup: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6}, winning: 3},
		{name: "falling diagonal", setup: []int{6, 5, 5, 4, 4, 3, 4, 3, 3, 0}, winning: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name+" four is detected only after the winning move", func(t *testing.T) {
			b := NewStandardBoard()
			play(t, b, tt.setup...)
			require.Equal(t, PlayerA, b.Turn())
			require.False(t, b.CheckWin(PlayerA), "Pre-move board should not be won")

			play(t, b, tt.winning)

			require.True(t, b.CheckWin(PlayerA), "Post-move board should be won by the mover")
			require.False(t, b.CheckWin(PlayerB))
			row, col, _ := b.LastMove()
			require.True(t, b.CheckWinAt(row, col), "Restricted scan should agree with the full scan")
			require.Equal(t, PlayerA, b.Winner())
			require.True(t, b.Terminal())
		})
	}

	t.Run("checking the side about to move misses the win", func(t *testing.T) {
		b := NewStandardBoard()
		play(t, b, 0, 0, 1, 1, 2, 2, 3)

		require.Equal(t, PlayerB, b.Turn())
		require.False(t, b.CheckWin(b.Turn()))
		require.True(t, b.CheckWin(b.Turn().Opponent()))
	})

	t.Run("empty cells and None never win", func(t *testing.T) {
		b := NewStandardBoard()

		require.False(t, b.CheckWin(None))
		require.False(t, b.CheckWinAt(0, 0))
		require.False(t, b.CheckWinAt(-1, 9))
	})

	t.Run("read-only queries leave the board unchanged", func(t *testing.T) {
		b := NewStandardBoard()
		play(t, b, 3, 3, 4)
		before := b.Clone()

		for i := 0; i < 3; i++ {
			b.AvailableColumns()
			b.CheckWin(PlayerA)
			b.CheckWin(PlayerB)
			b.IsFull()
		}

		require.Equal(t, before, b)
	})
}

func TestBoardWouldWin(t *testing.T) {
	b := NewStandardBoard()
	play(t, b, 0, 0, 1, 1, 2)

	require.Equal(t, PlayerB, b.Turn())
	require.True(t, b.WouldWin(3, PlayerA), "A completes the bottom row in column 3")
	require.False(t, b.WouldWin(3, PlayerB))
	require.False(t, b.WouldWin(4, PlayerA))
	require.False(t, b.WouldWin(9, PlayerA))
	require.False(t, b.WouldWin(3, None))
	require.Equal(t, 5, b.Moves(), "Probing should not play a move")
}

func TestBoardClone(t *testing.T) {
	t.Run("same moves on original and clone give identical grids", func(t *testing.T) {
		b := NewStandardBoard()
		play(t, b, 3, 2)
		clone := b.Clone()

		moves := []int{4, 4, 1, 6, 3}
		play(t, b, moves...)
		play(t, clone, moves...)

		require.Equal(t, b.Grid(), clone.Grid())
		require.Equal(t, b.Turn(), clone.Turn())
	})

	t.Run("moves on a clone do not leak into the original", func(t *testing.T) {
		b := NewStandardBoard()
		play(t, b, 3)
		clone := b.Clone()

		play(t, clone, 3, 3, 3)

		require.Equal(t, 1, b.Moves())
		require.Equal(t, 1, b.Height(3))
		require.Equal(t, PlayerB, b.Turn())
	})
}

func TestBoardString(t *testing.T) {
	b, err := NewBoard(2, 3, PlayerA)
	require.NoError(t, err)
	play(t, b, 1, 1)

	require.Equal(t, "- B -\n- A -\n0 1 2", b.String())
}
