package game

import "fmt"

// FromGrid builds a Board from a snapshot where row 0 is the top row and
// cells hold 0 (empty), 1 (PlayerA) or 2 (PlayerB). Snapshots that break
// the board's invariants are rejected with ErrMalformedInput.
func FromGrid(grid [][]int, toMove Player) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}
	if !toMove.Valid() {
		return nil, fmt.Errorf("%w: invalid side to move %d", ErrMalformedInput, toMove)
	}

	rows, columns := len(grid), len(grid[0])
	b, err := NewBoard(rows, columns, toMove)
	if err != nil {
		return nil, err
	}

	for r, row := range grid {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedInput, r, len(row), columns)
		}
		for c, v := range row {
			p := Player(v)
			if v < 0 || v > int(PlayerB) {
				return nil, fmt.Errorf("%w: cell (%d, %d) holds %d", ErrMalformedInput, r, c, v)
			}
			b.cells[b.index(r, c)] = p
		}
	}

	// Gravity: every column is a solid stack from the bottom row
	for c := 0; c < columns; c++ {
		height := 0
		for r := rows - 1; r >= 0 && b.At(r, c) != None; r-- {
			height++
		}
		for r := rows - 1 - height; r >= 0; r-- {
			if b.At(r, c) != None {
				return nil, fmt.Errorf("%w: piece at (%d, %d) floats above an empty cell", ErrMalformedInput, r, c)
			}
		}
		b.heights[c] = height
		b.moves += height
	}

	if b.CheckWin(toMove) {
		return nil, fmt.Errorf("%w: side to move %s already has four in a row", ErrMalformedInput, toMove)
	}
	if b.CheckWin(toMove.Opponent()) {
		b.won = toMove.Opponent()
	}
	return b, nil
}
