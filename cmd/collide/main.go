package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/collide/internal/analysis"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/gui"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/rng"
	"github.com/san-kum/collide/internal/sim"
	"github.com/san-kum/collide/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	logLevel   string
	// viewport and ball overrides
	width     int
	height    int
	minBalls  int
	maxBalls  int
	minRadius int
	maxRadius int
	maxSpeed  int
	// physics
	speedLimit float64
	// headless runs
	dt     float64
	frames int
	plot   bool
	chaos  bool
	// gui
	audio bool
	// config command
	savePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "collide",
		Short:         "elastic ball collision demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "raylib trace log level")
	pf.IntVar(&width, "width", config.DefaultWidth, "viewport width")
	pf.IntVar(&height, "height", config.DefaultHeight, "viewport height")
	pf.IntVar(&minBalls, "min-balls", physics.DefaultMinBalls, "minimum ball count")
	pf.IntVar(&maxBalls, "max-balls", physics.DefaultMaxBalls, "maximum ball count")
	pf.IntVar(&minRadius, "min-radius", physics.DefaultMinRadius, "minimum ball radius")
	pf.IntVar(&maxRadius, "max-radius", physics.DefaultMaxRadius, "maximum ball radius")
	pf.IntVar(&maxSpeed, "max-speed", physics.DefaultMaxInitialSpeed, "maximum initial speed per axis")
	pf.Float64Var(&speedLimit, "speed-limit", physics.DefaultSpeedLimit, "upper clamp on each velocity component")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&audio, "audio", false, "play a click on each collision")
	rootCmd.Flags().AddFlagSet(guiCmd.Flags())

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a fixed-step headless simulation and report metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot kinetic energy and contacts")
	runCmd.Flags().BoolVar(&chaos, "lyapunov", false, "estimate the largest lyapunov exponent of the layout")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the physics step",
		RunE:  runBench,
	}
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	benchCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames per preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBALLS\tRADIUS\tSPEED")
			for _, name := range config.ListPresets() {
				b := config.GetPreset(name).Balls
				fmt.Fprintf(w, "%s\t%d-%d\t%d-%d\t%d\n", name, b.Min, b.Max, b.MinRadius, b.MaxRadius, b.MaxInitialSpeed)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if savePath != "" {
				if err := config.Save(savePath, cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", savePath)
				return nil
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the configuration to a file instead")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, benchCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("min-balls") {
		cfg.Balls.Min = minBalls
	}
	if flags.Changed("max-balls") {
		cfg.Balls.Max = maxBalls
	}
	if flags.Changed("min-radius") {
		cfg.Balls.MinRadius = minRadius
	}
	if flags.Changed("max-radius") {
		cfg.Balls.MaxRadius = maxRadius
	}
	if flags.Changed("max-speed") {
		cfg.Balls.MaxInitialSpeed = maxSpeed
	}
	if flags.Changed("speed-limit") {
		cfg.Physics.SpeedLimit = speedLimit
	}
	if flags.Changed("dt") {
		cfg.Run.Dt = dt
	}
	if flags.Changed("frames") {
		cfg.Run.Frames = frames
	}
	if flags.Changed("audio") {
		cfg.Audio = audio
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cmd.Context(), cfg, cmd.OutOrStdout())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cmd.Context(), cfg, cmd.OutOrStdout())
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	src := rng.New(cfg.Seed)
	bodies, err := physics.Place(src, cfg.Placement())
	if err != nil {
		return fmt.Errorf("place bodies (seed %d): %w", src.Seed(), err)
	}
	world := physics.NewWorld(bodies, cfg.Bounds(), cfg.Options())

	s := sim.New(world)
	s.AddMetric(metrics.NewKineticEnergy())
	s.AddMetric(metrics.NewEnergyDrift())
	s.AddMetric(metrics.NewContainment(cfg.Bounds()))
	s.AddMetric(metrics.NewOverlap())

	simCfg := cfg.SimConfig()
	if chaos {
		lambda := analysis.LyapunovExponent(world, simCfg.Dt, simCfg.Frames, 1e-6, 1e-3)
		fmt.Fprintf(out, "lyapunov exponent: %.4f /s\n", lambda)
	}
	fmt.Fprintf(out, "running %d bodies for %d frames (dt=%.4f, seed %d)...\n", len(bodies), simCfg.Frames, simCfg.Dt, src.Seed())
	start := time.Now()

	result, err := s.Run(cmd.Context(), simCfg)
	if result == nil {
		return err
	}
	reportResult(out, result, simCfg.Dt, time.Since(start))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func reportResult(out io.Writer, result *sim.Result, dt float64, elapsed time.Duration) {
	fmt.Fprintf(out, "completed %d frames in %v\n", result.Frames, elapsed)
	fmt.Fprintf(out, "wall hits: %d  contacts: %d  degenerate: %d  peak approach: %.2f\n",
		result.Totals.WallHits, result.Totals.Contacts, result.Totals.Degenerate, result.Totals.PeakApproach)

	fmt.Fprintln(out, "\nmetrics:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range []string{"kinetic_energy", "energy_drift", "containment", "residual_overlap"} {
		if v, ok := result.Metrics[name]; ok {
			fmt.Fprintf(w, "  %s\t%.6f\n", name, v)
		}
	}
	w.Flush()

	contacts := analysis.Ints(result.Contacts)
	fmt.Fprintf(out, "\ncontacts/frame: mean %.3f  stddev %.3f\n", analysis.Mean(contacts), analysis.StdDev(contacts))
	if period, ok := analysis.DominantPeriod(contacts, dt); ok {
		fmt.Fprintf(out, "dominant contact period: %.3f s\n", period)
	}

	if plot && len(result.Energy) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(result.Energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy"),
		))
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(contacts,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("contacts per frame"),
		))
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	simCfg := base.SimConfig()
	simCfg.ValidateState = false

	fmt.Fprintf(out, "benchmarking %d frames per preset\n\n", simCfg.Frames)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODIES\tFRAMES\tTIME\tFRAMES/SEC\tCONTACTS")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		cfg.Seed = base.Seed
		if cfg.Seed == 0 {
			cfg.Seed = 42
		}
		bodies, err := physics.Place(rng.New(cfg.Seed), cfg.Placement())
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t%v\n", name, err)
			continue
		}
		world := physics.NewWorld(bodies, cfg.Bounds(), cfg.Options())

		n, contacts := 0, 0
		start := time.Now()
		err = sim.New(world).RunWithCallback(cmd.Context(), simCfg, func(_ []dynamo.Body, stats dynamo.FrameStats, _ float64) bool {
			n++
			contacts += stats.Contacts
			return true
		})
		elapsed := time.Since(start)
		if err != nil {
			w.Flush()
			return err
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\t%d\n",
			name, len(bodies), n, elapsed, float64(n)/elapsed.Seconds(), contacts)
	}

	return w.Flush()
}
