package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMachineKeysIdle(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"enter enhances", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentEnhance},
		{"space enhances", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentEnhance},
		{"e enhances", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), IntentEnhance},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"m mutes", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleEffectMute},
		{"other ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Parse(tt.ev, false); got != tt.want {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMachineKeysActive verifies every key stops the marker except Ctrl+C
func TestMachineKeysActive(t *testing.T) {
	m := NewMachine()
	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone),
	}
	for _, ev := range keys {
		if got := m.Parse(ev, true); got != IntentStop {
			t.Errorf("key %v while active = %v, want stop", ev.Name(), got)
		}
	}
	if got := m.Parse(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true); got != IntentQuit {
		t.Errorf("ctrl-c while active = %v, want quit", got)
	}
}

func TestMachineMouseEdge(t *testing.T) {
	m := NewMachine()

	press := tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone)

	if got := m.Parse(press, false); got != IntentEnhance {
		t.Errorf("press idle = %v, want enhance", got)
	}
	// Held button repeats as motion without a new press
	if got := m.Parse(press, true); got != IntentNone {
		t.Errorf("held button = %v, want none", got)
	}
	if got := m.Parse(release, true); got != IntentNone {
		t.Errorf("release = %v, want none", got)
	}
	if got := m.Parse(press, true); got != IntentStop {
		t.Errorf("press active = %v, want stop", got)
	}
}

func TestMachineResize(t *testing.T) {
	m := NewMachine()
	if got := m.Parse(tcell.NewEventResize(80, 24), true); got != IntentResize {
		t.Errorf("resize = %v", got)
	}
}
