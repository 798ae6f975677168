package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent playing the column MCTS rates best.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	if err := checkPlayable(board); err != nil {
		return game.NoColumn, metrics.SearchMetric{}, err
	}
	column, _, metric := a.mcts.Simulate(board)
	return column, metric, nil
}
