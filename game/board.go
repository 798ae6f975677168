package game

import (
	"fmt"
	"strings"
)

// Line directions as (row, column) steps: horizontal, vertical, and the two diagonals
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Board is a Connect Four grid. Row 0 is the top row; pieces fall towards
// row Rows()-1. A Board is mutated only through Drop; search code clones it
// before every speculative move.
type Board struct {
	rows    int
	columns int
	cells   []Player // Row-major
	heights []int    // Pieces stacked in each column
	turn    Player   // Side to move
	moves   int
	lastRow int
	lastCol int
	won     Player // First player to complete a line, None if nobody has
}

// NewBoard creates an empty rows x columns board where first moves first.
func NewBoard(rows, columns int, first Player) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: board dimensions %dx%d", ErrMalformedInput, rows, columns)
	}
	if !first.Valid() {
		return nil, fmt.Errorf("%w: invalid first player %d", ErrMalformedInput, first)
	}
	return &Board{
		rows:    rows,
		columns: columns,
		cells:   make([]Player, rows*columns),
		heights: make([]int, columns),
		turn:    first,
		lastRow: -1,
		lastCol: -1,
	}, nil
}

// NewStandardBoard creates an empty 6x7 board with PlayerA to move.
func NewStandardBoard() *Board {
	b, _ := NewBoard(StandardRows, StandardColumns, PlayerA)
	return b
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }
func (b *Board) Turn() Player { return b.turn }
func (b *Board) Moves() int   { return b.moves }

// Winner returns the first player to complete four in a row, or None.
func (b *Board) Winner() Player { return b.won }

func (b *Board) index(row, column int) int {
	return row*b.columns + column
}

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// At returns the owner of a cell, None for empty or out-of-range cells.
func (b *Board) At(row, column int) Player {
	if !b.inBounds(row, column) {
		return None
	}
	return b.cells[b.index(row, column)]
}

// Height returns the number of pieces in a column.
func (b *Board) Height(column int) int {
	if column < 0 || column >= b.columns {
		return 0
	}
	return b.heights[column]
}

// LastMove returns the cell filled by the most recent Drop.
func (b *Board) LastMove() (row, column int, ok bool) {
	return b.lastRow, b.lastCol, b.lastRow >= 0
}

func (b *Board) CanDrop(column int) bool {
	return column >= 0 && column < b.columns && b.heights[column] < b.rows
}

// Drop places the side to move's piece in the lowest empty cell of column
// and passes the turn. It reports false, leaving the board untouched, when
// the column is full or out of range.
func (b *Board) Drop(column int) bool {
	if !b.CanDrop(column) {
		return false
	}

	row := b.rows - 1 - b.heights[column]
	b.cells[b.index(row, column)] = b.turn
	b.heights[column]++
	b.moves++
	b.lastRow, b.lastCol = row, column
	if b.won == None && b.CheckWinAt(row, column) {
		b.won = b.turn
	}
	b.turn = b.turn.Opponent()
	return true
}

func (b *Board) IsFull() bool {
	return b.moves == b.rows*b.columns
}

// Terminal reports whether someone has four in a row or no cell is left.
func (b *Board) Terminal() bool {
	return b.won != None || b.IsFull()
}

// AvailableColumns returns the columns with at least one empty cell, ascending.
func (b *Board) AvailableColumns() []int {
	columns := make([]int, 0, b.columns)
	for c := 0; c < b.columns; c++ {
		if b.heights[c] < b.rows {
			columns = append(columns, c)
		}
	}
	return columns
}

// CheckWin reports whether player has four contiguous cells in any direction.
func (b *Board) CheckWin(player Player) bool {
	if !player.Valid() {
		return false
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			if b.cells[b.index(r, c)] != player {
				continue
			}
			for _, d := range directions {
				if b.lineFrom(r, c, d[0], d[1], player) {
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) lineFrom(row, column, dr, dc int, player Player) bool {
	for i := 1; i < ConnectLength; i++ {
		if b.At(row+i*dr, column+i*dc) != player {
			return false
		}
	}
	return true
}

// CheckWinAt reports whether the owner of (row, column) has four in a row on
// a line through that cell.
func (b *Board) CheckWinAt(row, column int) bool {
	player := b.At(row, column)
	if player == None {
		return false
	}
	for _, d := range directions {
		count := 1 + b.countFrom(row, column, d[0], d[1], player) + b.countFrom(row, column, -d[0], -d[1], player)
		if count >= ConnectLength {
			return true
		}
	}
	return false
}

func (b *Board) countFrom(row, column, dr, dc int, player Player) int {
	count := 0
	for r, c := row+dr, column+dc; b.At(r, c) == player; r, c = r+dr, c+dc {
		count++
	}
	return count
}

// WouldWin reports whether player dropping a piece in column would complete
// four in a row, whoever is to move.
func (b *Board) WouldWin(column int, player Player) bool {
	if !b.CanDrop(column) || !player.Valid() {
		return false
	}
	row := b.rows - 1 - b.heights[column]
	for _, d := range directions {
		if 1+b.countFrom(row, column, d[0], d[1], player)+b.countFrom(row, column, -d[0], -d[1], player) >= ConnectLength {
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no state with b.
func (b *Board) Clone() *Board {
	clone := *b
	clone.cells = make([]Player, len(b.cells))
	copy(clone.cells, b.cells)
	clone.heights = make([]int, len(b.heights))
	copy(clone.heights, b.heights)
	return &clone
}

// Grid returns the cells as small integers, row 0 being the top row.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		grid[r] = make([]int, b.columns)
		for c := range grid[r] {
			grid[r][c] = int(b.cells[b.index(r, c)])
		}
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[b.index(r, c)].String())
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < b.columns; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", c%10)
	}
	return sb.String()
}
