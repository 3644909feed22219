package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pipeline-sim/pipeline-sim/sim"
)

var (
	// CLI flags for the run command
	seed         int64   // Master seed for the stage RNGs; 0 derives one from the wall clock
	quantumUS    int64   // Clock step in microseconds
	capFactor    float64 // Jitter ceiling for capdelay processes
	verbose      bool    // Per-second progress lines
	logLevel     string  // Log verbosity level
	scenarioFile string  // YAML scenario file replacing positional arguments
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pipeline-sim",
	Short: "Discrete-time simulator of an admission-controlled request pipeline",
}

const runArgsUsage = "<duration-seconds> <producer-process> <producer-rate> <dispatcher-process> <consumer-process> <consumer-rate> [latency-goal-us] [goal-factor]"

// runCmd executes one simulation from positional arguments or a scenario file
var runCmd = &cobra.Command{
	Use:   "run " + runArgsUsage,
	Short: "Run the pipeline simulation and print the latency report",
	Args: func(cmd *cobra.Command, args []string) error {
		if scenarioFile != "" {
			if len(args) > 0 {
				return fmt.Errorf("positional arguments cannot be combined with --config")
			}
			return nil
		}
		if len(args) < 6 {
			return fmt.Errorf("requires at least 6 positional arguments: %s", runArgsUsage)
		}
		if len(args) > 8 {
			return fmt.Errorf("accepts at most 8 positional arguments: %s", runArgsUsage)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig(args)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Simulation setup failed: %v", err)
		}

		report := s.Run()
		report.Print(os.Stdout)
	},
}

// buildConfig turns the positional arguments, or the scenario file named by
// --config, into a run configuration.
func buildConfig(args []string) (sim.Config, error) {
	if scenarioFile != "" {
		cfg, err := sim.LoadScenario(scenarioFile)
		if err != nil {
			return sim.Config{}, err
		}
		if verbose {
			cfg.Verbose = true
		}
		return cfg, nil
	}

	cfg := sim.Config{
		ProducerProcess:   args[1],
		DispatcherProcess: args[3],
		ConsumerProcess:   args[4],
		CapFactor:         capFactor,
		QuantumTicks:      quantumUS,
		Seed:              seed,
		Verbose:           verbose,
	}

	var err error
	if cfg.HorizonSeconds, err = parseFloatArg("duration-seconds", args[0]); err != nil {
		return sim.Config{}, err
	}
	if cfg.ProducerRate, err = parseFloatArg("producer-rate", args[2]); err != nil {
		return sim.Config{}, err
	}
	if cfg.ConsumerRate, err = parseFloatArg("consumer-rate", args[5]); err != nil {
		return sim.Config{}, err
	}
	if len(args) > 6 {
		if cfg.LatencyGoalTicks, err = parseIntArg("latency-goal-us", args[6]); err != nil {
			return sim.Config{}, err
		}
	}
	if len(args) > 7 {
		if cfg.GoalFactor, err = parseFloatArg("goal-factor", args[7]); err != nil {
			return sim.Config{}, err
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

func parseFloatArg(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %q is not a number", name, raw)
	}
	return v, nil
}

func parseIntArg(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %q is not an integer", name, raw)
	}
	return v, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed for the stage RNGs (0 = derive from the clock)")
	runCmd.Flags().Int64Var(&quantumUS, "quantum-us", sim.DefaultQuantumTicks, "Clock step in microseconds")
	runCmd.Flags().Float64Var(&capFactor, "cap-factor", sim.DefaultCapFactor, "Jitter ceiling for capdelay processes")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a progress line every simulated second")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "config", "", "YAML scenario file (replaces positional arguments)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
