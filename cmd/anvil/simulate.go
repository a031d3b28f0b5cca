package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lixenwraith/anvil/constants"
	"github.com/lixenwraith/anvil/enhance"
)

// runSimulation prints the odds from the start level and the attempts-to-target statistics
func runSimulation(w io.Writer, p enhance.SimParams, rng enhance.RandomSource) error {
	stats, err := enhance.Simulate(p, rng)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	bonus := float64(p.Stops) * constants.BonusPerStop
	fmt.Fprintf(w, "%s tier, +%d -> +%d, %d stop(s) per attempt (+%.0f%%)\n\n", p.Tier.Label, p.StartLevel, p.TargetLevel, p.Stops, bonus)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "level\tsuccess\tfail\tdestroy\t")
	for level := p.StartLevel; level < p.TargetLevel; level++ {
		odds := enhance.Boosted(level, p.Tier.BaseSuccess, bonus)
		fmt.Fprintf(tw, "+%d\t%.2f\t%.2f\t%.2f\t\n", level, odds.Success, odds.Fail, odds.Destroy)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "trials\t%d\n", stats.Trials)
	fmt.Fprintf(tw, "reached\t%d (%.2f%%)\n", stats.Reached, stats.ReachRate()*100)
	fmt.Fprintf(tw, "attempts mean\t%.2f\n", stats.Mean)
	fmt.Fprintf(tw, "attempts stddev\t%.2f\n", stats.StdDev)
	fmt.Fprintf(tw, "attempts p50/p90/p99\t%.0f / %.0f / %.0f\n", stats.P50, stats.P90, stats.P99)
	fmt.Fprintf(tw, "destroys mean\t%.2f\n", stats.MeanDestroy)
	return tw.Flush()
}
