package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
	depth   int
}

// NewMinimaxAgent returns an agent searching depth plies with alpha-beta.
func NewMinimaxAgent(minimax *searcher.Minimax, depth int) Agent {
	return minimaxAgent{minimax: minimax, depth: depth}
}

func (a minimaxAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	if a.depth < 1 {
		return game.NoColumn, metrics.SearchMetric{}, searcher.ErrInvalidDepth
	}
	if err := checkPlayable(board); err != nil {
		return game.NoColumn, metrics.SearchMetric{}, err
	}
	column, _, metric := a.minimax.FindMove(board, a.depth)
	return column, metric, nil
}
