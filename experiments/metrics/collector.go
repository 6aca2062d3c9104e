package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Depth       int
	Pruning     bool
	Duration    time.Duration
	Nodes       int // max/min nodes entered, leaves included
	Evaluations int // horizon evaluations
	Terminals   int // terminal leaves scored
	Cutoffs     int // alpha or beta cutoffs
	Score       float64
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counters are safe for concurrent use by parallel root workers.
type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddNode()
	AddEvaluation()
	AddTerminal()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	depth       int
	pruning     bool
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Depth:       m.depth,
		Pruning:     m.pruning,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                                   {}
func (m *dummyCollector) AddEvaluation()                             {}
func (m *dummyCollector) AddTerminal()                               {}
func (m *dummyCollector) AddCutoff()                                 {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
