package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/system"
	"github.com/san-kum/orbitsim/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the view, so logs go to a file or nowhere.
	logger := logging.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = logging.New(f, cfg.LogLevel); err != nil {
			return err
		}
	}

	bodies, err := system.Default()
	if err != nil {
		return err
	}

	simCfg := cfg.Sim()
	simCfg.Frames = 0
	s, err := sim.New(bodies, simCfg, nbody.LogReporter{Logger: logger})
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	return viz.Run(viz.NewModel(s, viz.Options{
		Focus:         cfg.Focus,
		Scale:         cfg.Scale,
		Highlight:     cfg.Highlight,
		FPS:           cfg.FPS,
		Paused:        startPaused,
		ScreenshotDir: screenshotDir,
	}))
}

func renderFrame(cmd *cobra.Command, args []string) error {
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
	s, err := sim.New(bodies, cfg.Sim(), nbody.LogReporter{Logger: logger})
	if err != nil {
		return err
	}
	s.SetLogger(logger)

	if cfg.Frames > 0 {
		if _, err := s.Run(cmd.Context()); err != nil {
			return err
		}
	}

	final := s.Snapshot()
	f := nbody.Index(final, cfg.Focus)
	if f < 0 {
		return fmt.Errorf("unknown body: %s", cfg.Focus)
	}

	canvas := viz.NewCanvas(120, 40)
	viz.Scene{Focus: f, Scale: cfg.Scale, Highlight: cfg.Highlight}.Draw(canvas, final)

	if err := os.WriteFile(outFile, []byte(viz.CanvasToSVG(canvas, 4)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (day %d)\n", outFile, s.Info().Day)
	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	rows := system.Kerbolar()
	bodies, err := system.Build(rows)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPARENT\tMASS (kg)\tRADIUS (km)\tSMA (km)\tECC\tINC (deg)\tPERIOD (d)")
	for i, row := range rows {
		if row.Parent == "" {
			fmt.Fprintf(w, "%s\t-\t%.4e\t%.0f\t-\t-\t-\t-\n", row.Name, row.Mass, row.Radius/1e3)
			continue
		}
		parent := bodies[nbody.Index(bodies, row.Parent)]
		period := orbit.Period(nbody.G*parent.Mass, row.Elements.SemiMajorAxis) / sim.SecondsPerDay
		fmt.Fprintf(w, "%s\t%s\t%.4e\t%.0f\t%.0f\t%.3f\t%.3f\t%.2f\n",
			bodies[i].Name, row.Parent, row.Mass, row.Radius/1e3,
			row.Elements.SemiMajorAxis/1e3, row.Elements.Eccentricity, row.Elements.Inclination, period)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tDT\tSTEPS\tFRAMES\tDAYS\tFOCUS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%gs\t%d\t%d\t%.1f\t%s\n", name, p.SecondsPerStep, p.StepsPerFrame, p.Frames, p.SimulatedDays(), p.Focus)
	}
	return w.Flush()
}
