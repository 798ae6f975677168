package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is a flat Monte Carlo tree search over the root's columns. Each search
// runs independent workers with their own statistics and random source and
// merges their statistics when the budget runs out.
type MCTS struct {
	settings
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{settings: defaultSettings()}
	for _, option := range options {
		option(&m.settings)
	}
	return m
}

// Simulate runs rollouts from board within the engine's budget and returns the
// chosen column with the merged per-column statistics. A board with a single
// legal column is answered without any rollout; a terminal board yields NoColumn.
func (m *MCTS) Simulate(board *game.Board) (int, Stats, metrics.SearchMetric) {
	collector := m.newCollector()
	collector.Start("mcts", m.goroutines, 0)
	rng := m.newRand()

	legal := board.AvailableColumns()
	if board.Terminal() || len(legal) == 0 {
		return game.NoColumn, NewStats(board.Columns()), collector.Complete()
	}
	if len(legal) == 1 {
		return legal[0], NewStats(board.Columns()), collector.Complete()
	}

	stats := NewStats(board.Columns())
	if m.capped {
		if m.rollouts > 0 {
			stats = m.iterate(board, rng, collector)
		}
	} else if m.duration > 0 {
		stats = m.countdown(board, rng, collector)
	}

	column := stats.Best()
	if column == game.NoColumn {
		column = legal[rng.Intn(len(legal))]
		log.Debug().Msgf("mcts ran no rollouts, picked random column %d", column)
	}
	metric := collector.Complete()
	log.Debug().Msgf("mcts chose column %d after %d rollouts", column, stats.Total())
	return column, stats, metric
}

func (m *MCTS) iterate(board *game.Board, rng *rand.Rand, collector metrics.Collector) Stats {
	var claimed atomic.Int64
	budget := int64(m.rollouts)

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	return m.spawn(board, rng, func(w *worker) {
		for claimed.Add(1) <= budget {
			if !deadline.IsZero() && time.Now().After(deadline) {
				return
			}
			w.rollout(collector)
		}
	})
}

func (m *MCTS) countdown(board *game.Board, rng *rand.Rand, collector metrics.Collector) Stats {
	done := make(chan struct{})
	timer := time.AfterFunc(m.duration, func() { close(done) })
	defer timer.Stop()

	return m.spawn(board, rng, func(w *worker) {
		for {
			select {
			case <-done:
				return
			default:
				w.rollout(collector)
			}
		}
	})
}

// spawn runs work on every goroutine and merges their statistics.
func (m *MCTS) spawn(board *game.Board, rng *rand.Rand, work func(w *worker)) Stats {
	legal := make([]bool, board.Columns())
	for _, column := range board.AvailableColumns() {
		legal[column] = true
	}

	workers := make([]*worker, m.goroutines)
	for i := range workers {
		workers[i] = &worker{
			root:        board,
			player:      board.Turn(),
			legal:       legal,
			exploration: m.exploration,
			stats:       NewStats(board.Columns()),
			rng:         rand.New(rand.NewSource(rng.Uint64())),
		}
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			work(w)
		}(w)
	}
	wg.Wait()

	partials := make([]Stats, len(workers))
	for i, w := range workers {
		partials[i] = w.stats
	}
	return Merge(board.Columns(), partials...)
}

type worker struct {
	root        *game.Board
	player      game.Player
	legal       []bool
	exploration float64
	stats       Stats
	rng         *rand.Rand
}

func (w *worker) rollout(collector metrics.Collector) {
	column := Select(w.stats, w.legal, w.exploration)
	child, ok := Expand(w.root, column)
	if !ok {
		return
	}
	result := Simulate(child, w.rng)
	Backpropagate(w.player, column, result, w.stats)

	collector.AddRollout()
	if result == game.None {
		collector.AddDraw()
	}
}

// Select returns the legal column with the highest UCT score. Unvisited legal
// columns come first; ties go to the lower column; NoColumn if nothing is legal.
func Select(stats Stats, legal []bool, c float64) int {
	total := 0
	for column, s := range stats {
		if column < len(legal) && legal[column] {
			if s.Visits == 0 {
				return column
			}
			total += s.Visits
		}
	}
	if total == 0 {
		return game.NoColumn
	}

	policy := newUCT(c, float64(total))
	best, bestScore := game.NoColumn, math.Inf(-1)
	for column, s := range stats {
		if column >= len(legal) || !legal[column] {
			continue
		}
		score := policy.evaluate(float64(s.Wins-s.Losses), float64(s.Visits))
		if best == game.NoColumn || score > bestScore {
			best, bestScore = column, score
		}
	}
	return best
}

// Expand returns a copy of board with column played, or false if the drop is illegal.
func Expand(board *game.Board, column int) (*game.Board, bool) {
	if !board.CanDrop(column) || board.Terminal() {
		return nil, false
	}
	child := board.Clone()
	if !child.Drop(column) {
		return nil, false
	}
	return child, true
}

// Simulate plays uniformly random legal moves on a copy of board until a win
// or a full board and returns the winner, None for a draw.
func Simulate(board *game.Board, rng *rand.Rand) game.Player {
	b := board.Clone()
	limit := b.Rows() * b.Columns()
	columns := make([]int, 0, b.Columns())
	for i := 0; i < limit && !b.Terminal(); i++ {
		columns = columns[:0]
		for c := 0; c < b.Columns(); c++ {
			if b.CanDrop(c) {
				columns = append(columns, c)
			}
		}
		b.Drop(columns[rng.Intn(len(columns))])
	}
	return b.Winner()
}

// Backpropagate records one rollout result for the root column it started from.
func Backpropagate(player game.Player, column int, result game.Player, stats Stats) {
	stats[column].Visits++
	switch result {
	case player:
		stats[column].Wins++
	case player.Opponent():
		stats[column].Losses++
	}
}
