package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/system"
	"github.com/san-kum/orbitsim/internal/vec"
)

// boundRadius is well outside Eeloo's apoapsis.
const boundRadius = 2e11

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	bodies, err := system.Default()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reporters := nbody.Reporters{nbody.LogReporter{Logger: logger}}
	var exporter *metrics.Exporter
	if cfg.MetricsAddr != "" {
		exporter = metrics.NewExporter(nbody.G)
		reporters = append(reporters, exporter)
	}

	s, err := sim.New(bodies, cfg.Sim(), reporters)
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	drift := metrics.NewEnergyDrift(nbody.G)
	approach := metrics.NewClosestApproach()
	s.AddMetric(drift)
	s.AddMetric(metrics.NewMomentumDrift())
	s.AddMetric(metrics.NewBound(boundRadius))
	s.AddMetric(approach)

	if exporter != nil {
		s.AddObserver(exporter)
		go func() {
			if err := exporter.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
		logger.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	fmt.Printf("running %d frames (%.2f days)...\n", cfg.Frames, cfg.SimulatedDays())
	start := time.Now()

	result, err := s.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		fmt.Println("interrupted")
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("simulated: %.2f days\n", result.Time/sim.SecondsPerDay)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for _, m := range []string{"energy_drift", "momentum_drift", "bound", "closest_approach"} {
		fmt.Printf("  %s: %.6g\n", m, result.Metrics[m])
	}
	if a, b := approach.Pair(); a != "" {
		fmt.Printf("  closest pair: %s / %s\n", a, b)
	}

	if plot && len(result.Drift) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Drift,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("relative energy drift per frame")))
	}

	fmt.Println()
	return printBodies(result.Bodies)
}

func printBodies(bodies []nbody.Celestial) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "BODY\tX (km)\tY (km)\tZ (km)\tSPEED (m/s)\t")
	for _, b := range bodies {
		p := b.Orbit.Position
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.1f\t\n", b.Name, p.X/1e3, p.Y/1e3, p.Z/1e3, vec.Magnitude(b.Orbit.Velocity))
	}
	return w.Flush()
}

func benchSteps(cmd *cobra.Command, args []string) error {
	bodies, err := system.Default()
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive")
	}

	dts := []float64{0.5, 1, 5, 30}

	fmt.Printf("benchmarking %d bodies\n\n", len(bodies))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tTIME\tSTEPS/SEC\tENERGY DRIFT")

	for _, dt := range dts {
		cfg := sim.Config{SecondsPerStep: dt, StepsPerFrame: sim.DefaultStepsPerFrame, Frames: frames}
		s, err := sim.New(nbody.Clone(bodies), cfg, nil)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := s.Run(cmd.Context())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		stepsPerSec := float64(result.Steps) / elapsed.Seconds()
		fmt.Fprintf(w, "%.1fs\t%d\t%v\t%.0f\t%.3e\n", dt, result.Steps, elapsed, stepsPerSec, result.EnergyDrift)
	}

	return w.Flush()
}

func compareStepSizes(cmd *cobra.Command, args []string) error {
	if days <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	bodies, err := system.Default()
	if err != nil {
		return err
	}

	configs := make([]sim.Config, 0, len(args))
	for _, arg := range args {
		dt, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid step size %q: %w", arg, err)
		}
		cfg := sim.Config{SecondsPerStep: dt, StepsPerFrame: sim.DefaultStepsPerFrame}
		if err := cfg.Validate(); err != nil {
			return err
		}
		cfg.Frames = max(1, int(days/cfg.DaysPerFrame()+0.5))
		configs = append(configs, cfg)
	}

	ensemble := sim.NewEnsemble(bodies, configs, func() []sim.Metric {
		return []sim.Metric{metrics.NewMomentumDrift(), metrics.NewClosestApproach()}
	})

	fmt.Printf("comparing %d step sizes over %.2f days\n\n", len(configs), days)
	start := time.Now()
	results, err := ensemble.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tENERGY DRIFT\tMOMENTUM DRIFT\tCLOSEST GAP (km)")
	for i, r := range results {
		fmt.Fprintf(w, "%gs\t%d\t%.3e\t%.3e\t%.0f\n",
			configs[i].SecondsPerStep, r.Steps, r.EnergyDrift, r.Metrics["momentum_drift"], r.Metrics["closest_approach"]/1e3)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", time.Since(start))
	return nil
}
