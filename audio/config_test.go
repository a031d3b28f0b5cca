package audio

import (
	"testing"

	"github.com/lixenwraith/anvil/core"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[core.Cue]float64{
		core.CueUse:   1.0,
		core.CueLand:  0.6,
		core.CueBreak: 0.8,
	}
	for cue, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[cue]; !ok {
			t.Errorf("Expected volume for cue %v to be set", cue)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for cue %v, got %f", expectedVol, cue, vol)
		}
	}
}

// TestNewAudioConfig verifies loaded values are applied and clamped
func TestNewAudioConfig(t *testing.T) {
	tests := []struct {
		name       string
		volume     float64
		rate       int
		wantVolume float64
		wantRate   int
	}{
		{"in range", 0.3, 44100, 0.3, 44100},
		{"negative volume", -1, 44100, 0, 44100},
		{"loud volume", 2.5, 44100, 1, 44100},
		{"zero rate keeps default", 0.5, 0, 0.5, 48000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewAudioConfig(false, tt.volume, tt.rate)
			if cfg.Enabled {
				t.Error("Enabled flag not applied")
			}
			if cfg.MasterVolume != tt.wantVolume {
				t.Errorf("MasterVolume = %f, want %f", cfg.MasterVolume, tt.wantVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, tt.wantRate)
			}
		})
	}
}

// TestEffectVolume verifies master volume scaling
func TestEffectVolume(t *testing.T) {
	cfg := NewAudioConfig(true, 0.5, 0)
	if got := cfg.effectVolume(core.CueBreak); got != 0.4 {
		t.Errorf("break volume = %f, want 0.4", got)
	}
	if got := cfg.effectVolume(core.CueCount); got != 0.5 {
		t.Errorf("unknown cue volume = %f, want master volume", got)
	}
}
