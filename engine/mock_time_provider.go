package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven time source. A scheduler bound through
// Scheduler reads it, and Step moves time forward and fires what came due.
type MockTimeProvider struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
	sched *ClockScheduler
}

// NewMockTimeProvider creates a mock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Elapsed returns the time moved since construction or the last Rewind
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now.Sub(m.start)
}

// Advance moves time forward without firing timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Rewind returns the mock to its start time. Pending timers keep their deadlines.
func (m *MockTimeProvider) Rewind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.start
}

// Scheduler returns the scheduler driven by this mock, creating it on first use
func (m *MockTimeProvider) Scheduler() *ClockScheduler {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched == nil {
		m.sched = NewClockScheduler(m)
	}
	return m.sched
}

// Step advances time by d and fires every timer due at the new time.
// Returns the number of callbacks run.
func (m *MockTimeProvider) Step(d time.Duration) int {
	m.Advance(d)
	return m.Scheduler().Advance()
}
