package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/core"
	"github.com/lixenwraith/anvil/enhance"
	"github.com/lixenwraith/anvil/minigame"
	"github.com/lixenwraith/anvil/session"
)

// Row offsets from the panel origin
const (
	rowItem    = 0
	rowOdds    = 2
	rowHint    = 4
	rowBars    = 6
	rowTrack   = 7
	rowMessage = 9
)

// TerminalRenderer draws the enhancement panel on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	muted  bool

	message    string
	messageTag core.ColorTag
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetMuted updates the mute badge shown in the status bar
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// Render draws the entire frame
func (r *TerminalRenderer) Render(v session.View) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	width, height := r.screen.Size()
	r.fill(width, height, defaultStyle)

	r.message = v.Message
	r.messageTag = v.MessageTag

	r.drawItem(v.Item, defaultStyle)
	r.drawOdds(v.Odds, defaultStyle)
	r.drawHint(v, defaultStyle)
	r.drawBars(v.Minigame, defaultStyle)
	r.drawTrack(v.Minigame, r.trackWidth(width), defaultStyle)
	r.drawMessage(width, defaultStyle)
	r.drawStatusBar(v.Stats, width, height, defaultStyle)

	r.screen.Show()
}

// Message redraws only the message line
func (r *TerminalRenderer) Message(text string, tag core.ColorTag) {
	r.message = text
	r.messageTag = tag

	width, _ := r.screen.Size()
	r.drawMessage(width, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText))
	r.screen.Show()
}

func (r *TerminalRenderer) fill(width, height int, style tcell.Style) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawItem(item enhance.Item, defaultStyle tcell.Style) {
	y := constants.PanelY + rowItem
	x := r.drawText(constants.PanelX, y, item.Name, defaultStyle.Bold(true))
	x = r.drawText(x+1, y, "["+item.Tier.Label+"]", defaultStyle.Foreground(TierColor(item.Tier.Color)))
	r.drawText(x+1, y, fmt.Sprintf("+%d", item.Level), defaultStyle.Foreground(RgbLevel).Bold(true))
}

func (r *TerminalRenderer) drawOdds(odds enhance.Probabilities, defaultStyle tcell.Style) {
	y := constants.PanelY + rowOdds
	x := r.drawText(constants.PanelX, y, fmt.Sprintf("Success %.2f%%", odds.Success), defaultStyle.Foreground(RgbSuccess))
	x = r.drawText(x+2, y, fmt.Sprintf("Fail %.2f%%", odds.Fail), defaultStyle.Foreground(RgbFail))
	r.drawText(x+2, y, fmt.Sprintf("Destroy %.2f%%", odds.Destroy), defaultStyle.Foreground(RgbDestroy))
}

func (r *TerminalRenderer) drawHint(v session.View, defaultStyle tcell.Style) {
	y := constants.PanelY + rowHint
	switch {
	case v.Busy:
		x := r.drawText(constants.PanelX, y, "[Enter] Enhance", defaultStyle.Foreground(RgbDim))
		r.drawText(x+2, y, "[Space] Stop", defaultStyle.Foreground(RgbInfo).Bold(true))
	case v.Item.AtMax():
		r.drawText(constants.PanelX, y, "[Enter] Enhance (max level)", defaultStyle.Foreground(RgbDim))
	default:
		r.drawText(constants.PanelX, y, "[Enter] Enhance", defaultStyle.Bold(true))
	}
}

// drawBars shows one badge per round: resolved rounds by result, the current one highlighted
func (r *TerminalRenderer) drawBars(snap minigame.Snapshot, defaultStyle tcell.Style) {
	if snap.State == minigame.StateIdle {
		return
	}
	y := constants.PanelY + rowBars
	x := constants.PanelX
	for i := 0; i < snap.Rounds; i++ {
		style := defaultStyle.Foreground(RgbDim)
		switch {
		case i < len(snap.Results) && snap.Results[i]:
			style = defaultStyle.Foreground(RgbSuccess)
		case i < len(snap.Results):
			style = defaultStyle.Foreground(RgbDestroy)
		case i == snap.Round:
			style = defaultStyle.Foreground(RgbInfo)
		}
		x = r.drawText(x, y, fmt.Sprintf("Bar %d", i+1), style)
		x += 2
	}
}

func (r *TerminalRenderer) drawTrack(snap minigame.Snapshot, width int, defaultStyle tcell.Style) {
	if snap.State == minigame.StateIdle {
		return
	}
	y := constants.PanelY + rowTrack
	trackStyle := defaultStyle.Foreground(RgbTrack)
	targetStyle := defaultStyle.Foreground(RgbTarget)

	left := TrackColumn(snap.Target[0], snap.TrackEnd, width)
	right := TrackColumn(snap.Target[1], snap.TrackEnd, width)
	for i := 0; i < width; i++ {
		if i >= left && i <= right {
			r.screen.SetContent(constants.PanelX+i, y, constants.TargetRune, nil, targetStyle)
			continue
		}
		r.screen.SetContent(constants.PanelX+i, y, constants.TrackRune, nil, trackStyle)
	}

	// Marker is hidden until it enters the track
	if snap.Marker.Position < 0 || snap.State == minigame.StateComplete {
		return
	}
	markerStyle := defaultStyle.Foreground(RgbMarker)
	if snap.State == minigame.StateRoundResolved && len(snap.Results) > 0 {
		if snap.Results[len(snap.Results)-1] {
			markerStyle = defaultStyle.Foreground(RgbSuccess)
		} else {
			markerStyle = defaultStyle.Foreground(RgbDestroy)
		}
	}
	col := TrackColumn(snap.Marker.Position, snap.TrackEnd, width)
	r.screen.SetContent(constants.PanelX+col, y, constants.MarkerRune, nil, markerStyle)
}

func (r *TerminalRenderer) drawMessage(width int, defaultStyle tcell.Style) {
	y := constants.PanelY + rowMessage
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, defaultStyle)
	}
	if r.message == "" {
		return
	}
	r.drawText(constants.PanelX, y, r.message, defaultStyle.Foreground(TagColor(r.messageTag)))
}

func (r *TerminalRenderer) drawStatusBar(stats session.Stats, width, height int, defaultStyle tcell.Style) {
	statusY := height - 1
	if statusY <= constants.PanelY+rowMessage {
		return
	}

	statusStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, statusStyle)
	}

	text := fmt.Sprintf(" ANVIL  attempts %d  success %d  fail %d  destroy %d  best +%d ",
		stats.Attempts, stats.Successes, stats.Fails, stats.Destroys, stats.BestLevel)
	x := r.drawText(0, statusY, text, statusStyle)
	if r.muted {
		r.drawText(x+1, statusY, " MUTED ", defaultStyle.Foreground(RgbStatusText).Background(RgbMutedBg))
	}
}

// trackWidth fits the track to the screen within the layout bounds
func (r *TerminalRenderer) trackWidth(screenWidth int) int {
	w := screenWidth - 2*constants.PanelX
	if w > constants.MaxTrackWidth {
		w = constants.MaxTrackWidth
	}
	if w < constants.MinTrackWidth {
		w = constants.MinTrackWidth
	}
	return w
}

// TrackColumn maps a track position to a column in [0, width)
func TrackColumn(pos, end float64, width int) int {
	if width <= 0 || end <= 0 {
		return 0
	}
	col := int(pos / end * float64(width))
	if col < 0 {
		return 0
	}
	if col >= width {
		return width - 1
	}
	return col
}
