package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/logging"
)

var (
	configFile string
	preset     string
	logLevel   string

	secondsPerStep float64
	stepsPerFrame  int
	frames         int
	days           float64
	metricsAddr    string
	plot           bool

	frameRate     int
	focus         string
	scale         float64
	highlight     bool
	startPaused   bool
	screenshotDir string
	logFile       string

	outFile string
)

// main registers the commands and runs the live view when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "orbitsim",
		Short:        "n-body simulation of the Kerbol system",
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	addViewFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addStepFlags(runCmd)
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot energy drift per frame")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with live terminal visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addStepFlags(liveCmd)
	addViewFlags(liveCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "simulate headless and save the final frame as svg",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	addStepFlags(renderCmd)
	renderCmd.Flags().StringVar(&focus, "focus", config.DefaultFocus, "body at the centre of the view")
	renderCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "zoom in dots per metre")
	renderCmd.Flags().BoolVar(&highlight, "highlight", false, "ring bodies smaller than a dot")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "orbitsim.svg", "output file")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies and their orbital elements",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure integrator throughput",
		Args:  cobra.NoArgs,
		RunE:  benchSteps,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 100, "frames per measurement")

	compareCmd := &cobra.Command{
		Use:   "compare [seconds-per-step] ...",
		Short: "compare energy drift across step sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareStepSizes,
	}
	compareCmd.Flags().Float64Var(&days, "days", 1, "simulated days per member")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, renderCmd, bodiesCmd, benchCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addStepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&secondsPerStep, "dt", config.DefaultSecondsPerStep, "seconds per integrator step")
	cmd.Flags().IntVar(&stepsPerFrame, "steps", config.DefaultStepsPerFrame, "integrator steps per frame")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to run")
	cmd.Flags().Float64Var(&days, "days", 0, "simulated days to run (overrides --frames)")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&focus, "focus", config.DefaultFocus, "body at the centre of the view")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "zoom in dots per metre")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "ring bodies smaller than a dot")
	cmd.Flags().BoolVar(&startPaused, "paused", true, "start paused")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", ".", "directory for svg screenshots")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write log output to this file instead of discarding it")
}

// loadConfig resolves defaults, then the preset, then the config file,
// then any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.SecondsPerStep = secondsPerStep
	}
	if flags.Changed("steps") {
		cfg.StepsPerFrame = stepsPerFrame
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("focus") {
		cfg.Focus = focus
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("highlight") {
		cfg.Highlight = highlight
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddr
	}

	if flags.Changed("days") {
		per := cfg.Sim().DaysPerFrame()
		if per <= 0 || days <= 0 {
			return nil, fmt.Errorf("--days must be positive")
		}
		cfg.Frames = int(days/per + 0.5)
		if cfg.Frames == 0 {
			cfg.Frames = 1
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*log.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel)
}
