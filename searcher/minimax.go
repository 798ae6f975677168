package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited alpha-beta search scoring leaves with an Evaluator.
type Minimax struct {
	settings
	evaluator game.Evaluator
}

func NewMinimax(evaluator game.Evaluator, options ...Option) *Minimax {
	if evaluator == nil {
		evaluator = game.NewWindowEvaluator(game.DefaultWeights())
	}
	m := &Minimax{settings: defaultSettings(), evaluator: evaluator}
	for _, option := range options {
		option(&m.settings)
	}
	return m
}

// Search returns the best column and its score for the side to move. Scores
// are from the perspective of the maximizing side at the top of the search:
// +Inf for a forced win, -Inf for a forced loss, 0 for a full board.
func (m *Minimax) Search(board *game.Board, depth int, alpha, beta float64, maximizing bool) (int, float64) {
	column, score, _ := m.search(board, depth, alpha, beta, maximizing)
	return column, score
}

// FindMove runs a full-window search for the side to move.
func (m *Minimax) FindMove(board *game.Board, depth int) (int, float64, metrics.SearchMetric) {
	return m.search(board, depth, math.Inf(-1), math.Inf(1), true)
}

func (m *Minimax) search(board *game.Board, depth int, alpha, beta float64, maximizing bool) (int, float64, metrics.SearchMetric) {
	collector := m.newCollector()
	collector.Start("minimax", 1, depth)

	perspective := board.Turn()
	if !maximizing {
		perspective = perspective.Opponent()
	}
	s := &minimaxSearch{
		evaluator:   m.evaluator,
		perspective: perspective,
		pruning:     m.pruning,
		collector:   collector,
	}
	if m.duration > 0 {
		s.deadline = time.Now().Add(m.duration)
	}

	column, score := s.search(board, depth, alpha, beta, maximizing, true)
	metric := collector.Complete()
	if m.collect {
		log.Debug().Msgf("minimax chose column %d with score %v at depth %d (%d nodes, %d cutoffs)", column, score, depth, metric.Nodes, metric.Cutoffs)
	} else {
		log.Debug().Msgf("minimax chose column %d with score %v at depth %d", column, score, depth)
	}
	return column, score, metric
}

type minimaxSearch struct {
	evaluator   game.Evaluator
	perspective game.Player
	pruning     bool
	deadline    time.Time
	collector   metrics.Collector
}

func (s *minimaxSearch) search(board *game.Board, depth int, alpha, beta float64, maximizing, root bool) (int, float64) {
	s.collector.AddNode()

	if winner := board.Winner(); winner != game.None {
		if winner == s.perspective {
			return game.NoColumn, math.Inf(1)
		}
		return game.NoColumn, math.Inf(-1)
	}
	if board.IsFull() {
		return game.NoColumn, 0
	}
	if depth <= 0 {
		return game.NoColumn, s.evaluator.Evaluate(board, s.perspective)
	}

	columns := CenterOrder(board.AvailableColumns(), board.Columns())
	if len(columns) == 0 {
		return game.NoColumn, 0
	}

	bestColumn := game.NoColumn
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, column := range columns {
		// Out of time: keep what the finished root subtrees found
		if root && bestColumn != game.NoColumn && !s.deadline.IsZero() && time.Now().After(s.deadline) {
			break
		}

		child := board.Clone()
		if !child.Drop(column) {
			continue
		}
		_, score := s.search(child, depth-1, alpha, beta, !maximizing, false)

		if maximizing {
			if bestColumn == game.NoColumn || score > best {
				best, bestColumn = score, column
			}
			alpha = math.Max(alpha, best)
		} else {
			if bestColumn == game.NoColumn || score < best {
				best, bestColumn = score, column
			}
			beta = math.Min(beta, best)
		}

		if s.pruning && alpha >= beta {
			s.collector.AddCutoff()
			break
		}
	}
	if bestColumn == game.NoColumn {
		return game.NoColumn, 0
	}
	return bestColumn, best
}
