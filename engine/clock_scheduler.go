package engine

import (
	"container/heap"
	"sync"
	"time"
)

// TimerID identifies a pending one-shot timer; zero is never issued
type TimerID uint64

// Clock schedules delayed one-shot transitions
type Clock interface {
	Now() time.Time
	After(d time.Duration, fn func()) TimerID
	Cancel(id TimerID) bool
}

type timer struct {
	id       TimerID
	deadline time.Time
	seq      uint64
	fn       func()
	index    int
}

// timerQueue orders by deadline, then by scheduling order
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// ClockScheduler fires one-shot timers from the host loop
// Callbacks run on the goroutine calling Advance, never concurrently
type ClockScheduler struct {
	mu     sync.Mutex
	time   TimeProvider
	queue  timerQueue
	byID   map[TimerID]*timer
	nextID TimerID
	seq    uint64
}

// NewClockScheduler creates a scheduler reading time from tp
func NewClockScheduler(tp TimeProvider) *ClockScheduler {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		time: tp,
		byID: make(map[TimerID]*timer),
	}
}

// Now returns the current time of the underlying provider
func (cs *ClockScheduler) Now() time.Time {
	return cs.time.Now()
}

// After schedules fn to run once d has elapsed
func (cs *ClockScheduler) After(d time.Duration, fn func()) TimerID {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.nextID++
	cs.seq++
	t := &timer{
		id:       cs.nextID,
		deadline: cs.time.Now().Add(d),
		seq:      cs.seq,
		fn:       fn,
	}
	heap.Push(&cs.queue, t)
	cs.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer, returns false if it already fired or never existed
func (cs *ClockScheduler) Cancel(id TimerID) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	t, ok := cs.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&cs.queue, t.index)
	delete(cs.byID, id)
	return true
}

// Advance fires every timer whose deadline is not after now, in deadline order
// Timers scheduled by a callback fire in the same call only if already due
func (cs *ClockScheduler) Advance() int {
	now := cs.time.Now()
	fired := 0

	for {
		cs.mu.Lock()
		if len(cs.queue) == 0 || cs.queue[0].deadline.After(now) {
			cs.mu.Unlock()
			return fired
		}
		t := heap.Pop(&cs.queue).(*timer)
		delete(cs.byID, t.id)
		cs.mu.Unlock()

		// Lock released: callbacks may schedule or cancel
		t.fn()
		fired++
	}
}

// Pending returns the number of scheduled timers
func (cs *ClockScheduler) Pending() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.queue)
}

// NextDeadline returns the earliest pending deadline
func (cs *ClockScheduler) NextDeadline() (time.Time, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if len(cs.queue) == 0 {
		return time.Time{}, false
	}
	return cs.queue[0].deadline, true
}
