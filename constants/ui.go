package constants

// Default item
const (
	DefaultItemName = "Old Sword"
	DefaultTierKey  = "NORMAL"
)

// Layout
const (
	PanelX        = 2
	PanelY        = 1
	MaxTrackWidth = 60
	MinTrackWidth = 20
)

// Track glyphs
const (
	TrackRune  = '─'
	TargetRune = '▒'
	MarkerRune = '█'
)
