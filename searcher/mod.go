package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// Hyperparameters shared by the engines

const DefaultExploration = math.Sqrt2 // UCT exploration constant

var ErrInvalidDepth = fmt.Errorf("%w: search depth must be at least 1", game.ErrMalformedInput)

type Option func(s *settings)

type settings struct {
	goroutines  int
	rollouts    int
	capped      bool
	duration    time.Duration
	exploration float64
	seed        uint64
	seeded      bool
	pruning     bool
	collect     bool
}

func defaultSettings() settings {
	return settings{
		goroutines:  1,
		exploration: DefaultExploration,
		pruning:     true,
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithRollouts caps the number of MCTS rollouts. Zero runs no rollouts and a
// negative value removes the cap.
func WithRollouts(rollouts int) Option {
	return func(s *settings) {
		if rollouts < 0 {
			s.rollouts, s.capped = 0, false
			return
		}
		s.rollouts, s.capped = rollouts, true
	}
}

// WithDuration sets the wall-clock budget of a search. Non-positive means no budget.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		s.duration = duration
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		if c >= 0 {
			s.exploration = c
		}
	}
}

// WithSeed makes every search of the engine start from the same random source.
// Searches replay exactly only with a single goroutine; with more, workers claim
// rollouts in whatever order they get scheduled.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithoutPruning turns minimax into a plain full-width search.
func WithoutPruning() Option {
	return func(s *settings) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.collect = true
	}
}

func (s settings) newCollector() metrics.Collector {
	if s.collect {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}

func (s settings) newRand() *rand.Rand {
	seed := s.seed
	if !s.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// CenterOrder sorts columns by distance from the centre column, ties to the lower index.
func CenterOrder(columns []int, width int) []int {
	center := width / 2
	ordered := slices.Clone(columns)
	slices.SortStableFunc(ordered, func(a, b int) int {
		da, db := distance(a, center), distance(b, center)
		if da != db {
			return da - db
		}
		return a - b
	})
	return ordered
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
