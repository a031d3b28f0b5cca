package core

// ColorTag is the semantic color of a status message
type ColorTag int

const (
	ColorDefault ColorTag = iota
	ColorYellow           // Informational, terminal state
	ColorLime             // Success
	ColorOrange           // Fail
	ColorRed              // Destroy
	ColorCyan             // Minigame progress
)

// String returns the tag name
func (t ColorTag) String() string {
	switch t {
	case ColorYellow:
		return "yellow"
	case ColorLime:
		return "lime"
	case ColorOrange:
		return "orange"
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	default:
		return "default"
	}
}
