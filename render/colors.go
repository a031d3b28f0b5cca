package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/anvil/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbDim        = tcell.NewRGBColor(110, 110, 120) // Disabled hints
	RgbLevel      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	RgbSuccess = tcell.NewRGBColor(50, 255, 50) // Bright green
	RgbFail    = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbDestroy = tcell.NewRGBColor(255, 80, 80) // Normal red
	RgbInfo    = tcell.NewRGBColor(0, 200, 200) // Vibrant cyan
	RgbWarn    = tcell.NewRGBColor(255, 215, 0) // Gold

	RgbTrack  = tcell.NewRGBColor(80, 80, 90)    // Track line
	RgbTarget = tcell.NewRGBColor(60, 100, 200)  // Dark blue window
	RgbMarker = tcell.NewRGBColor(255, 255, 255) // Moving marker

	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbMutedBg    = tcell.NewRGBColor(200, 50, 50)   // Red mute badge
)

// TagColor maps a message tag to its foreground color
func TagColor(tag core.ColorTag) tcell.Color {
	switch tag {
	case core.ColorYellow:
		return RgbWarn
	case core.ColorLime:
		return RgbSuccess
	case core.ColorOrange:
		return RgbFail
	case core.ColorRed:
		return RgbDestroy
	case core.ColorCyan:
		return RgbInfo
	default:
		return RgbText
	}
}

// TierColor parses a tier hex color, falling back to the text color
func TierColor(hex string) tcell.Color {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return RgbText
	}
	return c
}
