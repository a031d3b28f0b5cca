package audio

import (
	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[core.Cue]float64
}

// DefaultAudioConfig returns the built-in playback settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[core.Cue]float64{
			core.CueUse:   1.0,
			core.CueLand:  0.6,
			core.CueBreak: 0.8,
		},
	}
}

// NewAudioConfig builds settings from loaded values; volume is clamped to [0, 1]
func NewAudioConfig(enabled bool, masterVolume float64, sampleRate int) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = masterVolume
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	return cfg
}

// effectVolume is the final gain for a cue
func (c *AudioConfig) effectVolume(cue core.Cue) float64 {
	v, ok := c.EffectVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
