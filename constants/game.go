package constants

import "time"

// Item Levels
const (
	// MaxLevel is the terminal level; attempts are refused once reached
	MaxLevel = 20

	// DestroyFromLevel is the first level at which destruction is possible
	DestroyFromLevel = 5
)

// Probability Curve (percent units)
const (
	SuccessFloor        = 10.0
	SuccessDropPerLevel = 2.5
	DestroyPerLevel     = 1.2
	DestroyCap          = 40.0
)

// Minigame Track (percent of track width)
const (
	MinigameRounds      = 3
	MarkerStartPosition = -5.0
	TrackEnd            = 100.0
	TargetLeft          = 70.0
	TargetWidth         = 10.0
	MarkerBaseSpeed     = 1.0
	MarkerSpeedPerLevel = 0.15

	// BonusPerStop is the success bonus granted per marker stopped in the window
	BonusPerStop = 5.0
)

// Minigame Timing
const (
	// TriggerArmDelay keeps the action that started a round from stopping it
	TriggerArmDelay = 50 * time.Millisecond

	// RoundResolvePause is shown between a stop and the next round
	RoundResolvePause = 300 * time.Millisecond

	// CompletionPause is shown between the tally and the attempt resolution
	CompletionPause = 1500 * time.Millisecond
)

// Monte Carlo defaults
const (
	SimulationTrials      = 10000
	SimulationMaxAttempts = 100000
)
