package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/backoff-sim/backoff-sim/sim"
)

var (
	// CLI flags shared by the run and sweep subcommands
	seed       int64  // Seed for reproducible backoff draws
	logLevel   string // Log verbosity level
	numNodes   int    // Number of contending nodes
	packetSize int64  // Packet size in bytes
	durationMs float64
	strategyID int // Backoff strategy id (1-5)

	// Channel parameters; preset values from channels.yaml unless overridden
	channelName  string  // Named preset in the channels file
	channelsFile string  // Path to the channel presets file
	dataRate     float64 // Channel data rate in bits per second
	slotSeconds  float64 // Backoff slot duration in seconds
	minWindow    int64   // Minimum contention window in slots
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "backoff-sim",
	Short: "Discrete-event simulator for shared-medium backoff strategies",
}

// buildConfig assembles and validates the simulation config from CLI
// flags and the selected channel preset. Any validation failure is fatal
// before simulation state exists.
func buildConfig() sim.Config {
	if channelName != "" {
		preset := LookupChannel(channelsFile, channelName)
		if !flagChanged("data-rate") {
			dataRate = preset.DataRateBps
		}
		if !flagChanged("slot") {
			slotSeconds = preset.SlotSeconds
		}
		if !flagChanged("min-window") {
			minWindow = preset.MinWindow
		}
	}

	cfg := sim.Config{
		NumNodes:        numNodes,
		PacketSizeBytes: packetSize,
		Duration:        durationMs / 1000,
		Strategy:        sim.Strategy(strategyID),
		DataRateBps:     dataRate,
		SlotDuration:    slotSeconds,
		MinWindow:       minWindow,
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Refusing to run: %v", err)
	}
	return cfg
}

func flagChanged(name string) bool {
	if f := runCmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := sweepCmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes a single simulation using parameters from CLI flags.
// Declared here and assigned in init to avoid an initialization cycle
// through flagChanged.
var runCmd *cobra.Command

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one backoff simulation",
		Run: func(cmd *cobra.Command, args []string) {
			setupLogging()
			cfg := buildConfig()

			logrus.Infof("Starting simulation: %d nodes, %dB packets, %.0fms, strategy=%s, seed=%d",
				cfg.NumNodes, cfg.PacketSizeBytes, durationMs, cfg.Strategy, seed)

			s := sim.NewSimulator(cfg, sim.NewSimulationKey(seed))
			util, stats := s.Run()

			stats.Print()
			fmt.Println(stats.Summary(cfg.NumNodes, cfg.PacketSizeBytes, cfg.Duration, cfg.Strategy))
			logrus.Infof("Simulation complete, utilization=%.4f", util)
		},
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for reproducible backoff draws")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	cmd.Flags().IntVar(&numNodes, "nodes", 4, "Number of contending nodes")
	cmd.Flags().Int64Var(&packetSize, "packet-bytes", 1000, "Packet size in bytes")
	cmd.Flags().Float64Var(&durationMs, "duration-ms", 100, "Simulated duration in milliseconds")

	cmd.Flags().StringVar(&channelName, "channel", "", "Channel preset name from the channels file")
	cmd.Flags().StringVar(&channelsFile, "channels-file", "channels.yaml", "Path to the channel presets file")
	cmd.Flags().Float64Var(&dataRate, "data-rate", 6e6, "Channel data rate in bits per second")
	cmd.Flags().Float64Var(&slotSeconds, "slot", 9e-6, "Backoff slot duration in seconds")
	cmd.Flags().Int64Var(&minWindow, "min-window", 15, "Minimum contention window in slots")
}

// init sets up CLI flags and subcommands
func init() {
	runCmd = newRunCmd()
	sweepCmd = newSweepCmd()

	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&strategyID, "strategy", 1, "Backoff strategy (1=BEB, 2=linear, 3=exp-reset, 4=linear-decrease, 5=exp-decrease)")

	addSimFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&replications, "replications", 10, "Independent runs per strategy")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
