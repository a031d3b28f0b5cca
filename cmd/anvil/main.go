package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/anvil/audio"
	"github.com/lixenwraith/anvil/config"
	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/core"
	"github.com/lixenwraith/anvil/engine"
	"github.com/lixenwraith/anvil/enhance"
	"github.com/lixenwraith/anvil/input"
	"github.com/lixenwraith/anvil/render"
	"github.com/lixenwraith/anvil/session"
	"github.com/lixenwraith/anvil/status"
)

var (
	configFlag   = flag.String("config", "anvil.yaml", "Path to YAML config file, a missing file uses defaults")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to logs/anvil.log")
	tierFlag     = flag.String("tier", "", "Tier preset: normal, rare, epic, legendary")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 draws from crypto/rand")
	muteFlag     = flag.Bool("mute", false, "Start with effects muted")
	simulateFlag = flag.Bool("simulate", false, "Run a Monte Carlo simulation and exit")
	trialsFlag   = flag.Int("trials", constants.SimulationTrials, "Trials for -simulate")
	startFlag    = flag.Int("start", 0, "Starting level for -simulate")
	targetFlag   = flag.Int("target", 10, "Target level for -simulate")
	stopsFlag    = flag.Int("stops", 0, "Minigame hits per attempt for -simulate (0-3)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rng := enhance.DefaultRNG()
	if cfg.Seed != 0 {
		rng = enhance.NewSeededRNG(cfg.Seed)
	}

	if *simulateFlag {
		params := enhance.SimParams{
			Tier:        cfg.Tier(),
			StartLevel:  *startFlag,
			TargetLevel: *targetFlag,
			Stops:       *stopsFlag,
			Trials:      *trialsFlag,
			MaxAttempts: constants.SimulationMaxAttempts,
		}
		if err := runSimulation(os.Stdout, params, rng); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, rng); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the loaded configuration
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.Config{}, err
	}
	if *tierFlag != "" {
		cfg.Item.Tier = strings.ToUpper(*tierFlag)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cfg config.Config, rng enhance.RandomSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetTerminalReset(screen.Fini)

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText))
	screen.Clear()

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume, cfg.Audio.SampleRate))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.ToggleMute()
	}

	renderer := render.NewTerminalRenderer(screen)
	renderer.SetMuted(sound.IsMuted())

	registry := status.NewRegistry()
	scheduler := engine.NewClockScheduler(engine.NewMonotonicTimeProvider())
	item := enhance.NewItem(cfg.Item.Name, cfg.Tier())

	sess := session.New(item, scheduler, cfg.MachineConfig(), session.Deps{
		Renderer:  renderer,
		Messenger: renderer,
		Cues:      sound,
		Registry:  registry,
		RNG:       rng,
	})
	renderer.Render(sess.View())
	log.Printf("session start: %s [%s] +%d seed=%d", item.Name, item.Tier.Key, item.Level, cfg.Seed)

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	machine := input.NewMachine()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Parse(ev, sess.Busy())
			switch intent {
			case input.IntentQuit:
				logSummary(registry)
				return nil
			case input.IntentEnhance:
				sess.Enhance()
			case input.IntentStop:
				sess.Stop()
			case input.IntentToggleEffectMute:
				renderer.SetMuted(sound.ToggleMute())
				renderer.Render(sess.View())
			case input.IntentResize:
				screen.Sync()
				renderer.Render(sess.View())
			}

		case <-frameTicker.C:
			scheduler.Advance()
			sess.Tick()
		}
	}
}

func logSummary(registry *status.Registry) {
	log.Printf("summary: %d metrics", registry.TotalCount())
	for _, line := range registry.Lines() {
		log.Printf("summary %s", line)
	}
}
