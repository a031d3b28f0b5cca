package engine

import (
	"testing"
	"time"
)

func newTestScheduler() (*ClockScheduler, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return mock.Scheduler(), mock
}

// TestClockSchedulerNothingFiresEarly verifies timers wait for their deadline
func TestClockSchedulerNothingFiresEarly(t *testing.T) {
	cs, mock := newTestScheduler()

	fired := false
	cs.After(300*time.Millisecond, func() { fired = true })

	if n := mock.Step(299 * time.Millisecond); n != 0 || fired {
		t.Fatalf("timer fired early (n=%d)", n)
	}

	if n := mock.Step(time.Millisecond); n != 1 || !fired {
		t.Fatalf("timer did not fire at deadline (n=%d)", n)
	}

	if cs.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", cs.Pending())
	}
}

// TestClockSchedulerDeadlineOrder verifies firing order across deadlines and ties
func TestClockSchedulerDeadlineOrder(t *testing.T) {
	cs, mock := newTestScheduler()

	var order []string
	cs.After(30*time.Millisecond, func() { order = append(order, "c") })
	cs.After(10*time.Millisecond, func() { order = append(order, "a") })
	cs.After(20*time.Millisecond, func() { order = append(order, "b1") })
	cs.After(20*time.Millisecond, func() { order = append(order, "b2") })

	mock.Step(time.Second)

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestClockSchedulerCancel(t *testing.T) {
	cs, mock := newTestScheduler()

	fired := false
	id := cs.After(50*time.Millisecond, func() { fired = true })

	if !cs.Cancel(id) {
		t.Fatal("cancel of pending timer should succeed")
	}
	if cs.Cancel(id) {
		t.Error("second cancel should report false")
	}
	if cs.Cancel(0) {
		t.Error("zero id should never be pending")
	}

	mock.Step(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

// TestClockSchedulerCallbackSchedules verifies chained timers respect their own deadline
func TestClockSchedulerCallbackSchedules(t *testing.T) {
	cs, mock := newTestScheduler()

	var steps []int
	cs.After(100*time.Millisecond, func() {
		steps = append(steps, 1)
		cs.After(0, func() { steps = append(steps, 2) })
		cs.After(50*time.Millisecond, func() { steps = append(steps, 3) })
	})

	if n := mock.Step(100 * time.Millisecond); n != 2 {
		t.Fatalf("expected parent and zero-delay child to fire, got %d", n)
	}
	if len(steps) != 2 {
		t.Fatalf("steps = %v", steps)
	}

	next, ok := cs.NextDeadline()
	if !ok || !next.Equal(mock.Now().Add(50*time.Millisecond)) {
		t.Errorf("next deadline = %v, %v", next, ok)
	}

	mock.Step(50 * time.Millisecond)
	if len(steps) != 3 || steps[2] != 3 {
		t.Errorf("steps = %v, want [1 2 3]", steps)
	}
}

func TestClockSchedulerCancelFromCallback(t *testing.T) {
	cs, mock := newTestScheduler()

	fired := false
	var later TimerID
	cs.After(10*time.Millisecond, func() { cs.Cancel(later) })
	later = cs.After(10*time.Millisecond, func() { fired = true })

	mock.Step(10 * time.Millisecond)
	if fired {
		t.Error("timer cancelled by an earlier same-deadline callback still fired")
	}
}

func TestClockSchedulerDefaultProvider(t *testing.T) {
	cs := NewClockScheduler(nil)
	if _, ok := cs.time.(*MonotonicTimeProvider); !ok {
		t.Errorf("expected monotonic provider, got %T", cs.time)
	}
	if _, ok := cs.NextDeadline(); ok {
		t.Error("empty scheduler should have no deadline")
	}
}
