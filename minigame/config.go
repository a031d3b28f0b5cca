package minigame

import (
	"time"

	"github.com/lixenwraith/anvil/constants"
)

// Config holds track geometry and round timing
type Config struct {
	Rounds        int
	StartPosition float64
	TrackEnd      float64
	TargetLeft    float64
	TargetWidth   float64
	BaseSpeed     float64
	SpeedPerLevel float64
	BonusPerStop  float64

	ArmDelay      time.Duration
	RoundPause    time.Duration
	CompletePause time.Duration
}

// DefaultConfig returns the standard three-round setup
func DefaultConfig() Config {
	return Config{
		Rounds:        constants.MinigameRounds,
		StartPosition: constants.MarkerStartPosition,
		TrackEnd:      constants.TrackEnd,
		TargetLeft:    constants.TargetLeft,
		TargetWidth:   constants.TargetWidth,
		BaseSpeed:     constants.MarkerBaseSpeed,
		SpeedPerLevel: constants.MarkerSpeedPerLevel,
		BonusPerStop:  constants.BonusPerStop,
		ArmDelay:      constants.TriggerArmDelay,
		RoundPause:    constants.RoundResolvePause,
		CompletePause: constants.CompletionPause,
	}
}

// InWindow reports whether a stop position lands in the target, edges inclusive
func (c Config) InWindow(position float64) bool {
	return position >= c.TargetLeft && position <= c.TargetLeft+c.TargetWidth
}

// Speed returns the marker speed for a round started at the given item level
func (c Config) Speed(level int) float64 {
	return c.BaseSpeed + float64(level)*c.SpeedPerLevel
}

// Bonus converts a stop tally into a success bonus
func (c Config) Bonus(stops int) float64 {
	return float64(stops) * c.BonusPerStop
}
