package minigame

import (
	"github.com/lixenwraith/anvil/engine"
)

// State is the minigame phase
type State int

const (
	StateIdle State = iota
	StateRoundActive
	StateRoundResolved
	StateComplete
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRoundActive:
		return "round_active"
	case StateRoundResolved:
		return "round_resolved"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Trigger is the arm/disarm-able stop source
type Trigger interface {
	Arm(handler func())
	Disarm()
}

// Listener receives progress notifications, called synchronously from transitions
type Listener interface {
	RoundStarted(round, total int)
	RoundResolved(round int, position float64, hit bool)
	Completed(stops int, bonus float64)
}

// Marker is the moving indicator of the active round
type Marker struct {
	Position float64
	Speed    float64
}

// Machine runs timed rounds and tallies stops inside the target window
// All methods must be called from the goroutine that drives the clock
type Machine struct {
	cfg      Config
	clock    engine.Clock
	trigger  Trigger
	level    func() int
	listener Listener

	state   State
	round   int
	stops   int
	marker  Marker
	results []bool

	armTimer engine.TimerID
	onDone   func(bonus float64)
}

// NewMachine creates an idle machine; level is sampled once at each round start
func NewMachine(cfg Config, clock engine.Clock, trigger Trigger, level func() int, listener Listener) *Machine {
	if level == nil {
		level = func() int { return 0 }
	}
	if listener == nil {
		listener = nopListener{}
	}
	return &Machine{
		cfg:      cfg,
		clock:    clock,
		trigger:  trigger,
		level:    level,
		listener: listener,
		results:  make([]bool, 0, cfg.Rounds),
	}
}

// State returns the current phase
func (m *Machine) State() State {
	return m.state
}

// Active reports whether a run is in flight, including the completion pause
func (m *Machine) Active() bool {
	return m.state != StateIdle
}

// Start begins a run from IDLE; onDone receives the bonus once the run completes
// Returns false when a run is already in flight
func (m *Machine) Start(onDone func(bonus float64)) bool {
	if m.state != StateIdle {
		return false
	}

	m.round = 0
	m.stops = 0
	m.results = m.results[:0]
	m.onDone = onDone

	m.beginRound(0)
	return true
}

// beginRound spawns the marker and arms the trigger after the arming delay
func (m *Machine) beginRound(n int) {
	m.round = n
	m.marker = Marker{
		Position: m.cfg.StartPosition,
		Speed:    m.cfg.Speed(m.level()),
	}
	m.state = StateRoundActive
	m.listener.RoundStarted(n, m.cfg.Rounds)

	m.armTimer = m.clock.After(m.cfg.ArmDelay, func() {
		m.armTimer = 0
		if m.state == StateRoundActive && m.round == n {
			m.trigger.Arm(m.stop)
		}
	})
}

// Tick advances the marker by one animation step
// Running off the track end counts as a stop at the current position
func (m *Machine) Tick() {
	if m.state != StateRoundActive {
		return
	}

	m.marker.Position += m.marker.Speed
	if m.marker.Position >= m.cfg.TrackEnd {
		m.stop()
	}
}

// stop resolves the active round; the trigger is disarmed before any delayed transition
func (m *Machine) stop() {
	if m.state != StateRoundActive {
		return
	}

	m.trigger.Disarm()
	if m.armTimer != 0 {
		m.clock.Cancel(m.armTimer)
		m.armTimer = 0
	}

	pos := m.marker.Position
	hit := m.cfg.InWindow(pos)
	if hit {
		m.stops++
	}
	m.results = append(m.results, hit)
	m.state = StateRoundResolved
	m.listener.RoundResolved(m.round, pos, hit)

	next := m.round + 1
	m.clock.After(m.cfg.RoundPause, func() {
		if next < m.cfg.Rounds {
			m.beginRound(next)
			return
		}
		m.complete()
	})
}

// complete emits the tally, then hands the bonus over after the completion pause
func (m *Machine) complete() {
	m.state = StateComplete
	stops := m.stops
	bonus := m.cfg.Bonus(stops)
	m.listener.Completed(stops, bonus)

	done := m.onDone
	m.clock.After(m.cfg.CompletePause, func() {
		m.state = StateIdle
		m.onDone = nil
		if done != nil {
			done(bonus)
		}
	})
}

// Snapshot is a read-only view of the run for rendering
type Snapshot struct {
	State    State
	Round    int
	Rounds   int
	Stops    int
	Marker   Marker
	Results  []bool // Hit flag per resolved round
	Target   [2]float64
	TrackEnd float64
}

// Snapshot captures the current run
func (m *Machine) Snapshot() Snapshot {
	results := make([]bool, len(m.results))
	copy(results, m.results)

	return Snapshot{
		State:    m.state,
		Round:    m.round,
		Rounds:   m.cfg.Rounds,
		Stops:    m.stops,
		Marker:   m.marker,
		Results:  results,
		Target:   [2]float64{m.cfg.TargetLeft, m.cfg.TargetLeft + m.cfg.TargetWidth},
		TrackEnd: m.cfg.TrackEnd,
	}
}

type nopListener struct{}

func (nopListener) RoundStarted(int, int)            {}
func (nopListener) RoundResolved(int, float64, bool) {}
func (nopListener) Completed(int, float64)           {}
