package core

// Cue is a fire-and-forget audio/visual feedback kind
type Cue int

const (
	CueUse   Cue = iota // Enhancement succeeded
	CueLand             // Marker stopped inside the target window
	CueBreak            // Enhancement failed or item destroyed
	CueCount
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueUse:
		return "use"
	case CueLand:
		return "land"
	case CueBreak:
		return "break"
	default:
		return "unknown"
	}
}
