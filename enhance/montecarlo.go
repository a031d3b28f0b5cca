package enhance

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/anvil/constants"
)

// ErrInvalidParams reports simulation parameters outside their domain
var ErrInvalidParams = errors.New("invalid simulation parameters")

// SimParams describes one Monte Carlo run
type SimParams struct {
	Tier        Tier
	StartLevel  int
	TargetLevel int // Trial ends when this level is reached
	Stops       int // Minigame stops assumed for every attempt
	Trials      int // Number of independent trials
	MaxAttempts int // Per-trial attempt cap; <=0 uses the default
}

// SimStats summarizes attempts-to-target across trials
type SimStats struct {
	Trials      int
	Reached     int // Trials that hit the target before the cap
	MeanDestroy float64
	Mean        float64
	StdDev      float64
	P50         float64
	P90         float64
	P99         float64
}

// ReachRate returns the share of trials that reached the target
func (s SimStats) ReachRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Reached) / float64(s.Trials)
}

func (p SimParams) validate() error {
	if p.Tier.BaseSuccess <= 0 {
		return fmt.Errorf("%w: tier %q has no base success", ErrInvalidParams, p.Tier.Key)
	}
	if p.StartLevel < 0 || p.StartLevel >= constants.MaxLevel {
		return fmt.Errorf("%w: start level %d outside [0,%d)", ErrInvalidParams, p.StartLevel, constants.MaxLevel)
	}
	if p.TargetLevel <= p.StartLevel || p.TargetLevel > constants.MaxLevel {
		return fmt.Errorf("%w: target level %d outside (%d,%d]", ErrInvalidParams, p.TargetLevel, p.StartLevel, constants.MaxLevel)
	}
	if p.Stops < 0 || p.Stops > constants.MinigameRounds {
		return fmt.Errorf("%w: stops %d outside [0,%d]", ErrInvalidParams, p.Stops, constants.MinigameRounds)
	}
	if p.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive", ErrInvalidParams)
	}
	return nil
}

// Simulate repeats enhancement trials with a fixed minigame bonus
func Simulate(p SimParams, rng RandomSource) (SimStats, error) {
	if err := p.validate(); err != nil {
		return SimStats{}, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constants.SimulationMaxAttempts
	}
	bonus := float64(p.Stops) * constants.BonusPerStop

	samples := make([]int, p.Trials)
	stats := SimStats{Trials: p.Trials}
	destroys := 0

	for i := range samples {
		item := &Item{Tier: p.Tier, Level: p.StartLevel}
		attempts := 0
		for item.Level < p.TargetLevel && attempts < maxAttempts {
			attempts++
			if item.Attempt(bonus, Draw(rng)).Outcome == OutcomeDestroy {
				destroys++
			}
		}
		if item.Level >= p.TargetLevel {
			stats.Reached++
		}
		samples[i] = attempts
	}

	summarize(&stats, samples)
	stats.MeanDestroy = float64(destroys) / float64(p.Trials)
	return stats, nil
}

// summarize fills mean, deviation and percentiles from integer samples
func summarize(s *SimStats, xs []int) {
	n := len(xs)
	if n == 0 {
		return
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(cp[n-1])
		}
		f := pos - float64(i)
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	s.Mean = mean
	s.StdDev = math.Sqrt(acc / float64(n))
	s.P50 = percentile(0.50)
	s.P90 = percentile(0.90)
	s.P99 = percentile(0.99)
}
