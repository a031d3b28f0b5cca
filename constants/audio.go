package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Use Sound Timing (anvil strike on success)
const (
	UseSoundDuration = 450 * time.Millisecond
	UseSoundAttack   = 2 * time.Millisecond
	UseSoundRelease  = 400 * time.Millisecond
)

// Land Sound Timing (marker stopped in window)
const (
	LandSoundNote1Duration = 70 * time.Millisecond
	LandSoundNote2Duration = 180 * time.Millisecond
	LandSoundAttack        = 3 * time.Millisecond
	LandSoundNote1Release  = 30 * time.Millisecond
	LandSoundNote2Release  = 150 * time.Millisecond
)

// Break Sound Timing (fail or destroy)
const (
	BreakSoundDuration = 350 * time.Millisecond
)

// Break Sound Envelope
const (
	BreakSoundAttack  = 4 * time.Millisecond
	BreakSoundRelease = 300 * time.Millisecond
)
