// Package config loads game settings from defaults, an optional YAML file and ANVIL_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/enhance"
	"github.com/lixenwraith/anvil/minigame"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "ANVIL_"

// ErrInvalidConfig reports a value outside its allowed range
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full game configuration
type Config struct {
	Item     ItemConfig     `yaml:"item" envPrefix:"ITEM_"`
	Minigame MinigameConfig `yaml:"minigame" envPrefix:"MINIGAME_"`
	Audio    AudioConfig    `yaml:"audio" envPrefix:"AUDIO_"`

	// Seed selects a reproducible RNG; 0 uses the crypto source
	Seed          uint64        `yaml:"seed" env:"SEED"`
	FrameInterval time.Duration `yaml:"frame_interval" env:"FRAME_INTERVAL"`
}

// ItemConfig selects the starting item
type ItemConfig struct {
	Name string `yaml:"name" env:"NAME"`
	Tier string `yaml:"tier" env:"TIER"`
}

// MinigameConfig holds the timed transition pauses
type MinigameConfig struct {
	ArmDelay      time.Duration `yaml:"arm_delay" env:"ARM_DELAY"`
	RoundPause    time.Duration `yaml:"round_pause" env:"ROUND_PAUSE"`
	CompletePause time.Duration `yaml:"complete_pause" env:"COMPLETE_PAUSE"`
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	MasterVolume float64 `yaml:"master_volume" env:"MASTER_VOLUME"`
	SampleRate   int     `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Item: ItemConfig{
			Name: constants.DefaultItemName,
			Tier: constants.DefaultTierKey,
		},
		Minigame: MinigameConfig{
			ArmDelay:      constants.TriggerArmDelay,
			RoundPause:    constants.RoundResolvePause,
			CompletePause: constants.CompletionPause,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
		},
		FrameInterval: constants.FrameUpdateInterval,
	}
}

// Load layers defaults, the YAML file at path (optional, may be missing) and the environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readYAML overlays file values onto cfg; a missing file leaves cfg untouched
func readYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and that the tier names a fixed preset
func (c Config) Validate() error {
	if c.Item.Name == "" {
		return fmt.Errorf("%w: item name is empty", ErrInvalidConfig)
	}
	if _, ok := enhance.TierByKey(c.Item.Tier); !ok {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidConfig, c.Item.Tier)
	}
	if c.Minigame.ArmDelay < 0 || c.Minigame.RoundPause < 0 || c.Minigame.CompletePause < 0 {
		return fmt.Errorf("%w: minigame pauses must not be negative", ErrInvalidConfig)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalidConfig)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %.2f outside [0,1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	return nil
}

// Tier resolves the configured preset; call after Validate
func (c Config) Tier() enhance.Tier {
	tier, ok := enhance.TierByKey(c.Item.Tier)
	if !ok {
		return enhance.TierNormal
	}
	return tier
}

// MachineConfig returns the minigame configuration with configured pauses
func (c Config) MachineConfig() minigame.Config {
	mc := minigame.DefaultConfig()
	mc.ArmDelay = c.Minigame.ArmDelay
	mc.RoundPause = c.Minigame.RoundPause
	mc.CompletePause = c.Minigame.CompletePause
	return mc
}
