package metrics

import (
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step    int
	Player  string
	Kind    string
	Ejected int
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // "" if the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Rejected       int
	BlackLost      int
	WhiteLost      int
}

// Collector counts what happens during a single game.
type Collector interface {
	Start(id, startingPlayer string)
	AddMove(MoveMetric)
	AddRejected()
	Complete(winner string, blackLost, whiteLost int) (GameMetric, []MoveMetric)
}

type collector struct {
	id             string
	startingPlayer string
	startTime      time.Time
	moves          []MoveMetric
	rejected       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id, startingPlayer string) {
	m.id = id
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves = nil
	m.rejected.Store(0)
}

func (m *collector) AddMove(mm MoveMetric) {
	m.moves = append(m.moves, mm)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete(winner string, blackLost, whiteLost int) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		ID:             m.id,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
		Rejected:       int(m.rejected.Load()),
		BlackLost:      blackLost,
		WhiteLost:      whiteLost,
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id, startingPlayer string) {}
func (m *dummyCollector) AddMove(MoveMetric)              {}
func (m *dummyCollector) AddRejected()                    {}
func (m *dummyCollector) Complete(winner string, blackLost, whiteLost int) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner, BlackLost: blackLost, WhiteLost: whiteLost}, nil
}
