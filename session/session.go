// Package session owns the item and the minigame and is the only mutator of either
package session

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lixenwraith/anvil/core"
	"github.com/lixenwraith/anvil/engine"
	"github.com/lixenwraith/anvil/enhance"
	"github.com/lixenwraith/anvil/input"
	"github.com/lixenwraith/anvil/minigame"
	"github.com/lixenwraith/anvil/status"
)

// Renderer draws the current state
type Renderer interface {
	Render(v View)
}

// Messenger shows the transient status line
type Messenger interface {
	Message(text string, tag core.ColorTag)
}

// CuePlayer fires audio feedback
type CuePlayer interface {
	Play(cue core.Cue)
}

// Stats are the running totals shown in the status bar
type Stats struct {
	Attempts  int64
	Successes int64
	Fails     int64
	Destroys  int64
	BestLevel int64
}

// View is everything a renderer needs for one frame
type View struct {
	Item       enhance.Item
	Odds       enhance.Probabilities
	Minigame   minigame.Snapshot
	Busy       bool
	Message    string
	MessageTag core.ColorTag
	Stats      Stats
}

// Deps are the optional collaborators; nil members become no-ops
type Deps struct {
	Renderer  Renderer
	Messenger Messenger
	Cues      CuePlayer
	Registry  *status.Registry
	RNG       enhance.RandomSource
}

// Session wires the enhancement model to the minigame
// Not safe for concurrent use: drive it from the loop that advances the clock
type Session struct {
	item    *enhance.Item
	game    *minigame.Machine
	trigger *input.Trigger

	renderer  Renderer
	messenger Messenger
	cues      CuePlayer
	registry  *status.Registry
	rng       enhance.RandomSource

	busy       bool
	runID      string
	message    string
	messageTag core.ColorTag
	last       *enhance.Result
}

// New creates a session around item using clock for timed transitions
func New(item *enhance.Item, clock engine.Clock, cfg minigame.Config, deps Deps) *Session {
	s := &Session{
		item:      item,
		trigger:   input.NewTrigger(),
		renderer:  deps.Renderer,
		messenger: deps.Messenger,
		cues:      deps.Cues,
		registry:  deps.Registry,
		rng:       deps.RNG,
	}
	if s.renderer == nil {
		s.renderer = nopRenderer{}
	}
	if s.messenger == nil {
		s.messenger = nopMessenger{}
	}
	if s.cues == nil {
		s.cues = nopCues{}
	}
	if s.registry == nil {
		s.registry = status.NewRegistry()
	}
	if s.rng == nil {
		s.rng = enhance.DefaultRNG()
	}

	s.game = minigame.NewMachine(cfg, clock, s.trigger, func() int { return s.item.Level }, listener{s})
	s.registry.StoreMax(status.KeyBestLevel, int64(item.Level))
	return s
}

// Busy reports whether a run or its resolution is in flight
func (s *Session) Busy() bool {
	return s.busy
}

// Item returns a copy of the item state
func (s *Session) Item() enhance.Item {
	return *s.item
}

// LastResult returns the most recent attempt, if any
func (s *Session) LastResult() (enhance.Result, bool) {
	if s.last == nil {
		return enhance.Result{}, false
	}
	return *s.last, true
}

// Enhance requests an attempt; refused while busy or at max level
// Returns true when a minigame run was started
func (s *Session) Enhance() bool {
	if s.busy {
		return false
	}
	if s.item.AtMax() {
		s.say("Maximum level reached!", core.ColorYellow)
		s.render()
		return false
	}

	s.busy = true
	s.runID = uuid.NewString()
	s.registry.Ints.Get(status.KeyRuns).Add(1)
	log.Printf("run %s: start %s %s +%d", s.runID, s.item.Name, s.item.Tier.Key, s.item.Level)

	s.game.Start(s.resolve)
	s.render()
	return true
}

// Stop forwards a stop event to the round trigger, false when it is not armed
func (s *Session) Stop() bool {
	return s.trigger.Fire()
}

// Tick advances the marker by one animation step
func (s *Session) Tick() {
	if !s.game.Active() {
		return
	}
	s.game.Tick()
	s.render()
}

// View builds the current frame description
func (s *Session) View() View {
	ints := s.registry.Ints
	return View{
		Item:       *s.item,
		Odds:       s.item.Probabilities(),
		Minigame:   s.game.Snapshot(),
		Busy:       s.busy,
		Message:    s.message,
		MessageTag: s.messageTag,
		Stats: Stats{
			Attempts:  ints.Get(status.KeyAttempts).Load(),
			Successes: ints.Get(status.KeySuccess).Load(),
			Fails:     ints.Get(status.KeyFail).Load(),
			Destroys:  ints.Get(status.KeyDestroy).Load(),
			BestLevel: ints.Get(status.KeyBestLevel).Load(),
		},
	}
}

// resolve applies the attempt once the minigame hands over its bonus
func (s *Session) resolve(bonus float64) {
	res := s.item.Attempt(bonus, enhance.Draw(s.rng))
	s.last = &res

	ints := s.registry.Ints
	ints.Get(status.KeyAttempts).Add(1)
	s.registry.Strings.Get(status.KeyLastOutcome).Store(res.Outcome.String())

	switch res.Outcome {
	case enhance.OutcomeSuccess:
		ints.Get(status.KeySuccess).Add(1)
		s.registry.StoreMax(status.KeyBestLevel, int64(res.Level))
		s.say(fmt.Sprintf("Enhancement succeeded! (+%d)", res.Level), core.ColorLime)
		s.cues.Play(core.CueUse)
	case enhance.OutcomeFail:
		ints.Get(status.KeyFail).Add(1)
		detail := "no change"
		if res.PreviousLevel > 0 {
			detail = "level dropped"
		}
		s.say(fmt.Sprintf("Enhancement failed... (%s)", detail), core.ColorOrange)
		s.cues.Play(core.CueBreak)
	case enhance.OutcomeDestroy:
		ints.Get(status.KeyDestroy).Add(1)
		s.say("The item was destroyed...", core.ColorRed)
		s.cues.Play(core.CueBreak)
	}

	log.Printf("run %s: %s +%d -> +%d (bonus %.0f, draw %.2f, odds %.2f/%.2f/%.2f)",
		s.runID, res.Outcome, res.PreviousLevel, res.Level, res.Bonus, res.Draw,
		res.Odds.Success, res.Odds.Fail, res.Odds.Destroy)

	s.busy = false
	s.runID = ""
	s.render()
}

func (s *Session) say(text string, tag core.ColorTag) {
	s.message = text
	s.messageTag = tag
	s.messenger.Message(text, tag)
}

func (s *Session) render() {
	s.renderer.Render(s.View())
}

// listener adapts minigame notifications without exporting them on Session
type listener struct{ s *Session }

func (l listener) RoundStarted(round, total int) {
	l.s.say(fmt.Sprintf("Bar %d/%d", round+1, total), core.ColorCyan)
	l.s.render()
}

func (l listener) RoundResolved(round int, position float64, hit bool) {
	log.Printf("run %s: round %d stop at %.2f hit=%v", l.s.runID, round+1, position, hit)
	if hit {
		l.s.registry.Ints.Get(status.KeyStops).Add(1)
		l.s.cues.Play(core.CueLand)
	}
	l.s.render()
}

func (l listener) Completed(stops int, bonus float64) {
	l.s.registry.Floats.Get(status.KeyLastBonus).Set(bonus)
	l.s.say(fmt.Sprintf("Minigame: %d hit(s)! (success chance +%.0f%%)", stops, bonus), core.ColorCyan)
	l.s.render()
}

type nopRenderer struct{}

func (nopRenderer) Render(View) {}

type nopMessenger struct{}

func (nopMessenger) Message(string, core.ColorTag) {}

type nopCues struct{}

func (nopCues) Play(core.Cue) {}
