package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
)

var ErrNoMove = errors.New("no legal move")

type Agent interface {
	// FindMove returns the column to drop in and performance metrics (if collected) from the search
	FindMove(board *game.Board) (int, metrics.SearchMetric, error)
}

func checkPlayable(board *game.Board) error {
	if board.Terminal() {
		return ErrNoMove
	}
	return nil
}
