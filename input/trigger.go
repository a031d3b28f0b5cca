package input

// Trigger is the single stop event source of a minigame round
// A disarmed trigger swallows Fire calls
type Trigger struct {
	armed   bool
	handler func()

	arms  int
	fires int
}

// NewTrigger creates a disarmed trigger
func NewTrigger() *Trigger {
	return &Trigger{}
}

// Arm installs the handler invoked by the next Fire
func (t *Trigger) Arm(handler func()) {
	t.armed = handler != nil
	t.handler = handler
	if t.armed {
		t.arms++
	}
}

// Disarm removes the handler; safe to call when already disarmed
func (t *Trigger) Disarm() {
	t.armed = false
	t.handler = nil
}

// Armed reports whether Fire would reach a handler
func (t *Trigger) Armed() bool {
	return t.armed
}

// Fire delivers a stop event, returns false when disarmed
func (t *Trigger) Fire() bool {
	if !t.armed {
		return false
	}
	t.fires++
	t.handler()
	return true
}

// Counts returns how many times the trigger was armed and fired
func (t *Trigger) Counts() (arms, fires int) {
	return t.arms, t.fires
}
