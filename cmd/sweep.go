package cmd

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	sim "github.com/backoff-sim/backoff-sim/sim"
)

var replications int // Independent runs per strategy in a sweep

// sweepResult holds the per-strategy utilization samples from one sweep.
type sweepResult struct {
	strategy     sim.Strategy
	utilizations []float64
}

// runSweep runs every strategy for the given number of replications.
// Each cell gets its own Simulator and its own RNG stream derived from
// the master key, so cells are independent and the whole sweep is
// reproducible from the seed alone.
func runSweep(cfg sim.Config, key sim.SimulationKey, replications int) []sweepResult {
	results := make([]sweepResult, 0, 5)
	for s := sim.StrategyBinaryExponential; s <= sim.StrategyExponentialDecrease; s++ {
		results = append(results, sweepResult{
			strategy:     s,
			utilizations: make([]float64, replications),
		})
	}

	var wg sync.WaitGroup
	for i := range results {
		cellCfg := cfg
		cellCfg.Strategy = results[i].strategy
		for r := 0; r < replications; r++ {
			wg.Add(1)
			go func(res *sweepResult, cfg sim.Config, rep int) {
				defer wg.Done()
				label := fmt.Sprintf("strategy_%d_rep_%d", cfg.Strategy, rep)
				runKey := sim.NewSimulationKey(key.Derive(label))
				util, _ := sim.NewSimulator(cfg, runKey).Run()
				res.utilizations[rep] = util
			}(&results[i], cellCfg, r)
		}
	}
	wg.Wait()
	return results
}

// sweepCmd compares all five strategies under identical channel conditions.
// Declared here and assigned in init to avoid an initialization cycle
// through flagChanged.
var sweepCmd *cobra.Command

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Compare all five backoff strategies over replicated runs",
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()

			// Strategy is swept, not flag-selected; validate with a placeholder.
			strategyID = int(sim.StrategyBinaryExponential)
			cfg := buildConfig()

			if replications <= 0 {
				logrus.Fatalf("Replications must be > 0, got %d", replications)
			}

			logrus.Infof("Starting sweep: %d nodes, %dB packets, %.0fms, %d replications, seed=%d",
				cfg.NumNodes, cfg.PacketSizeBytes, durationMs, replications, seed)

			results := runSweep(cfg, sim.NewSimulationKey(seed), replications)

			fmt.Println("=== Strategy Sweep ===")
			fmt.Printf("%-22s %12s %12s\n", "strategy", "mean util", "stddev")
			for _, res := range results {
				mean := stat.Mean(res.utilizations, nil)
				stddev := stat.StdDev(res.utilizations, nil)
				fmt.Printf("%-22s %12.4f %12.4f\n", res.strategy, mean, stddev)
			}
		},
	}
}
