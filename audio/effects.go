package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator is a fixed-length mono source duplicated to both channels
type oscillator struct {
	wave      WaveType
	step      float64 // Phase increment per sample
	phase     float64 // In [0, 1)
	remaining int
}

// NewOscillator creates a wave source of the given length; noise ignores freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*o.phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(o.phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && o.remaining > 0 {
		v := o.sample()
		samples[n][0], samples[n][1] = v, v

		_, o.phase = math.Modf(o.phase + o.step)
		o.remaining--
		n++
	}
	return n, o.remaining > 0 || n > 0
}

func (o *oscillator) Err() error { return nil }

// envelope scales a source by a gain curve over a fixed length
type envelope struct {
	src   beep.Streamer
	gain  func(pos int) float64
	pos   int
	total int
}

// NewEnvelope shapes s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		src:   s,
		total: total,
		gain: func(pos int) float64 {
			switch {
			case pos < att:
				return float64(pos) / float64(att)
			case rel > 0 && pos >= total-rel:
				return float64(total-pos) / float64(rel)
			default:
				return 1
			}
		},
	}
}

// NewDecay shapes s with a linear attack followed by an exponential ring-out
// tau is the time for the level to fall to 1/e
func NewDecay(s beep.Streamer, duration, attack, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	att := rate.N(attack)
	tauSamples := float64(max(rate.N(tau), 1))

	return &envelope{
		src:   s,
		total: rate.N(duration),
		gain: func(pos int) float64 {
			if pos < att {
				return float64(pos) / float64(att)
			}
			return math.Exp(-float64(pos-att) / tauSamples)
		},
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if left := e.total - e.pos; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, _ = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, n > 0
}

func (e *envelope) Err() error { return e.src.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators

// CreateUseSound generates a bright metallic strike for a successful enhancement
func CreateUseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.UseSoundDuration

	// Inharmonic partials give the anvil ring; higher partials die out faster
	partials := []struct {
		freq, gain float64
		tau        time.Duration
	}{
		{1046.5, 0.5, constants.UseSoundRelease / 3},
		{2886.0, 0.3, constants.UseSoundRelease / 6},
		{5650.0, 0.2, constants.UseSoundRelease / 12},
	}

	voices := make([]beep.Streamer, 0, len(partials)+1)
	for _, p := range partials {
		osc := NewOscillator(p.freq, d, WaveSine, rate)
		voices = append(voices, newVolume(NewDecay(osc, d, constants.UseSoundAttack, p.tau, rate), p.gain))
	}

	// Hammer transient
	click := NewOscillator(0, 20*time.Millisecond, WaveNoise, rate)
	voices = append(voices, newVolume(NewEnvelope(click, 20*time.Millisecond, 0, 18*time.Millisecond, rate), 0.3))

	return newVolume(beep.Mix(voices...), cfg.effectVolume(core.CueUse)*0.75)
}

// CreateLandSound generates a short two-note tick for a stop inside the window
func CreateLandSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.LandSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.LandSoundNote1Duration, constants.LandSoundAttack, constants.LandSoundNote1Release, rate)

	// Second note (B5)
	n2 := NewOscillator(987.77, constants.LandSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.LandSoundNote2Duration, constants.LandSoundAttack, constants.LandSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, cfg.effectVolume(core.CueLand))
}

// CreateBreakSound generates a crunching low thud for a failed or destroyed item
func CreateBreakSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BreakSoundDuration

	noise := NewOscillator(0, d, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, d, constants.BreakSoundAttack, constants.BreakSoundRelease, rate)

	thud := NewOscillator(90.0, d, WaveTriangle, rate)
	thudShaped := NewEnvelope(thud, d, constants.BreakSoundAttack, constants.BreakSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(thudShaped, 0.5),
	)
	return newVolume(mixed, cfg.effectVolume(core.CueBreak))
}

// GetSoundEffect returns the streamer for the given cue, nil for unknown cues
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueUse:
		return CreateUseSound(cfg)
	case core.CueLand:
		return CreateLandSound(cfg)
	case core.CueBreak:
		return CreateBreakSound(cfg)
	default:
		return nil
	}
}
