package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edsim/edsim/display"
	"github.com/edsim/edsim/export"
	"github.com/edsim/edsim/sim"
	"github.com/edsim/edsim/sim/trace"
)

// runOptions holds the flags shared by run and generate.
type runOptions struct {
	configPath  string
	seed        int64
	arrivalRate float64
	serviceRate float64
	duration    int
	tickPeriod  time.Duration
	displayMode string
	traceLevel  string
	outputPath  string
	interactive bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the arrival generator in real time",
		Long: "Generates patients for the configured duration, one coin flip per second,\n" +
			"redrawing the arrival table each tick and printing the priority order at the end.",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := opts.resolveConfig(cmd.Flags().Changed)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			if opts.interactive {
				if err := promptConfig(&cfg); err != nil {
					logrus.Fatalf("%v", err)
				}
			}
			if err := opts.execute(cmd, cfg); err != nil {
				logrus.Fatalf("%v", err)
			}
		},
	}
	opts.register(cmd, string(display.ModeLive))
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Collect arrival rate, service rate and duration from a form before starting")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a full run instantly and print both tables",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := opts.resolveConfig(cmd.Flags().Changed)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			cfg.TickPeriod = 0
			if err := opts.execute(cmd, cfg); err != nil {
				logrus.Fatalf("%v", err)
			}
		},
	}
	opts.register(cmd, string(display.ModeFinal))
	return cmd
}

func (o *runOptions) register(cmd *cobra.Command, defaultDisplay string) {
	defaults := sim.DefaultConfig()
	cmd.Flags().StringVar(&o.configPath, "config", "", "YAML file with arrival_rate, service_rate, duration, seed, tick_period")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Seed for random patient generation (drawn per run when unset)")
	cmd.Flags().Float64Var(&o.arrivalRate, "arrival-rate", defaults.ArrivalRate, "Arrival rate λ (>= 0.1; informational)")
	cmd.Flags().Float64Var(&o.serviceRate, "service-rate", defaults.ServiceRate, "Service rate μ (>= 0.1; informational)")
	cmd.Flags().IntVar(&o.duration, "duration", defaults.Duration, "Simulation duration in seconds (>= 1)")
	cmd.Flags().DurationVar(&o.tickPeriod, "tick", defaults.TickPeriod, "Wall-clock time per simulated second")
	cmd.Flags().StringVar(&o.displayMode, "display", defaultDisplay, "Display mode (live, progress, final, quiet)")
	cmd.Flags().StringVar(&o.traceLevel, "trace-level", string(trace.TraceLevelNone), "Tick trace level (none, ticks)")
	cmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Export the finished run (.json, .csv or .xlsx)")
}

// resolveConfig loads --config when given, then applies every flag the
// user set explicitly. Flags left at their defaults never override the file.
// With neither --seed nor a seed key in the file, the seed drawn by
// sim.DefaultConfig is kept.
func (o *runOptions) resolveConfig(changed func(string) bool) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	if o.configPath != "" {
		loaded, err := sim.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logrus.Infof("Loaded config from %s", o.configPath)
	}
	if changed("seed") {
		cfg.Seed = o.seed
	}
	if changed("arrival-rate") {
		cfg.ArrivalRate = o.arrivalRate
	}
	if changed("service-rate") {
		cfg.ServiceRate = o.serviceRate
	}
	if changed("duration") {
		cfg.Duration = o.duration
	}
	if changed("tick") {
		cfg.TickPeriod = o.tickPeriod
	}
	return cfg, nil
}

// execute validates cfg, runs one simulation and exports it when asked.
func (o *runOptions) execute(cmd *cobra.Command, cfg sim.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	mode, err := display.ParseMode(o.displayMode)
	if err != nil {
		return err
	}
	if !trace.IsValidTraceLevel(o.traceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, ticks", o.traceLevel)
	}
	if o.outputPath != "" {
		if _, err := export.FormatFromPath(o.outputPath); err != nil {
			return err
		}
	}

	observer, err := display.NewObserver(mode, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	driver, err := sim.NewDriver(cfg, sim.NewSimulationState(), observer,
		sim.WithTraceLevel(trace.TraceLevel(o.traceLevel)))
	if err != nil {
		return err
	}

	result := driver.Start()
	if result.Trace != nil {
		ts := trace.Summarize(result.Trace)
		logrus.WithField("run_id", result.RunID).Infof("Tick trace: %d/%d ticks produced a patient, longest idle stretch %d ticks",
			ts.GeneratedCount, ts.TotalTicks, ts.LongestIdleRun)
	}

	if o.outputPath != "" {
		if err := export.WriteFile(o.outputPath, result); err != nil {
			return fmt.Errorf("exporting run: %w", err)
		}
	}
	return nil
}
