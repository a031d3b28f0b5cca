package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
// Mouse handling is edge-triggered: only a fresh primary button press counts
type Machine struct {
	lastButtons tcell.ButtonMask
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Parse maps an event to an intent; active reports whether a minigame run is in flight
func (m *Machine) Parse(ev tcell.Event, active bool) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.parseKey(ev, active)
	case *tcell.EventMouse:
		return m.parseMouse(ev, active)
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func (m *Machine) parseKey(ev *tcell.EventKey, active bool) IntentType {
	// Quitting the process stays available, it is not a run cancel
	if ev.Key() == tcell.KeyCtrlC {
		return IntentQuit
	}

	if active {
		return IntentStop
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return IntentEnhance
	case tcell.KeyEscape:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'e', 'E':
			return IntentEnhance
		case 'q', 'Q':
			return IntentQuit
		case 'm', 'M':
			return IntentToggleEffectMute
		}
	}
	return IntentNone
}

func (m *Machine) parseMouse(ev *tcell.EventMouse, active bool) IntentType {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
	m.lastButtons = buttons

	if !pressed {
		return IntentNone
	}
	if active {
		return IntentStop
	}
	return IntentEnhance
}
