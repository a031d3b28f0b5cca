package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit             // Ctrl+C always; q or ESC while idle
	IntentToggleEffectMute // m while idle
	IntentResize           // Terminal resize event

	// Game intents
	IntentEnhance // Enter, Space, e or click while idle
	IntentStop    // Any key or click while the minigame runs
)

// String returns the intent name for logging
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleEffectMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentEnhance:
		return "enhance"
	case IntentStop:
		return "stop"
	default:
		return "none"
	}
}
