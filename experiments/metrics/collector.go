package metrics

import (
	"connect4/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Engine     string
	Goroutines int
	Depth      int
	Duration   time.Duration
	Rollouts   int
	Draws      int
	Nodes      int
	Cutoffs    int
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Column   int
	Fallback bool // Column was replaced by a random legal one
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // None on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(engine string, goroutines, depth int)
	AddRollout()
	AddDraw()
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	engine     string
	goroutines int
	depth      int
	startTime  time.Time
	rollouts   atomic.Int32
	draws      atomic.Int32
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(engine string, goroutines, depth int) {
	m.startTime = time.Now()
	m.engine = engine
	m.goroutines = goroutines
	m.depth = depth
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddDraw() {
	m.draws.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Engine:     m.engine,
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Rollouts:   int(m.rollouts.Load()),
		Draws:      int(m.draws.Load()),
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(engine string, goroutines, depth int) {}
func (m *dummyCollector) AddRollout()                                {}
func (m *dummyCollector) AddDraw()                                   {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) AddCutoff()                                 {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
