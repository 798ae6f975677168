package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"golang.org/x/exp/rand"
)

type tacticalAgent struct {
	rng *rand.Rand
}

// NewTacticalAgent returns a one-ply heuristic player: it wins if it can,
// blocks an immediate win of the opponent, avoids columns that let the
// opponent win straight after, and otherwise plays a random legal column.
func NewTacticalAgent(rng *rand.Rand) Agent {
	return tacticalAgent{rng: rng}
}

func (a tacticalAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	if err := checkPlayable(board); err != nil {
		return game.NoColumn, metrics.SearchMetric{}, err
	}
	start := time.Now()
	column := a.choose(board)
	return column, metrics.SearchMetric{Engine: "tactical", Goroutines: 1, Depth: 2, Duration: time.Since(start)}, nil
}

func (a tacticalAgent) choose(board *game.Board) int {
	me := board.Turn()
	opponent := me.Opponent()
	legal := board.AvailableColumns()

	for _, column := range legal {
		if board.WouldWin(column, me) {
			return column
		}
	}
	for _, column := range legal {
		if board.WouldWin(column, opponent) {
			return column
		}
	}

	safe := make([]int, 0, len(legal))
	for _, column := range legal {
		child := board.Clone()
		child.Drop(column)
		if !opensWin(child, opponent) {
			safe = append(safe, column)
		}
	}
	if len(safe) == 0 {
		safe = legal
	}
	return safe[a.rng.Intn(len(safe))]
}

func opensWin(board *game.Board, player game.Player) bool {
	for _, column := range board.AvailableColumns() {
		if board.WouldWin(column, player) {
			return true
		}
	}
	return false
}
