package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/olivier-w/simumotion/internal/config"
	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/kinematics"
	"github.com/olivier-w/simumotion/internal/ui"
	"github.com/olivier-w/simumotion/internal/util"
	"github.com/olivier-w/simumotion/internal/visualizer"
	"github.com/olivier-w/simumotion/internal/window"
)

// prepare computes every trajectory up front, echoes the run parameters to
// out and returns an idle driver ready for a display backend.
func prepare(cfg config.Config, out io.Writer, log zerolog.Logger) (*frames.Driver, error) {
	grid, err := kinematics.NewTimeGrid(cfg.Sim.Duration, cfg.Sim.Slices)
	if err != nil {
		return nil, err
	}
	ps := kinematics.Simulate(cfg.Launches(), cfg.Acceleration(), grid)
	echoParameters(out, cfg, ps)

	for _, p := range ps {
		ev := log.Debug().Float64("angle", p.Launch.AngleDeg)
		if t, ok := kinematics.ApexTime(p.Launch, p.Accel); ok {
			ev = ev.Float64("apexTime", t)
		}
		if i, top := kinematics.Apex(p.Path); i >= 0 {
			ev = ev.Float64("sampledApexTime", p.Path.Time(i)).Float64("apexHeight", top.Y)
		}
		if t, ok := kinematics.GroundTime(p.Launch, p.Accel); ok {
			ev = ev.Float64("landing", t)
		}
		if i := kinematics.GroundIndex(p.Path); i >= 0 {
			ev = ev.Int("firstBelowGround", i)
		}
		ev.Msg("trajectory computed")
	}

	anim, err := frames.NewAnimator(ps, cfg.TraceMode(), cfg.View.TimeTemplate)
	if err != nil {
		return nil, err
	}
	pb := frames.NewPlayback(anim.Frames(), cfg.Repeat(), cfg.Interval())
	log.Info().
		Int("projectiles", len(ps)).
		Int("frames", anim.Frames()).
		Str("backend", cfg.Backend).
		Msg("simulation ready")
	return frames.NewDriver(anim, pb), nil
}

// echoParameters prints the launch angles, the flight time of each angle and
// the number of samples.
func echoParameters(out io.Writer, cfg config.Config, ps []kinematics.Projectile) {
	times := make([]float64, len(ps))
	for i, p := range ps {
		times[i] = kinematics.FlightTime(p.Launch, cfg.Sim.Gravity)
	}
	fmt.Fprintf(out, "angles %s\n", util.FormatValues(cfg.Launch.Angles, -1))
	fmt.Fprintf(out, "flight times %s\n", util.FormatValues(times, 3))
	fmt.Fprintf(out, "samples %d\n", cfg.Sim.Slices)
}

func viewport(cfg config.Config) visualizer.Viewport {
	return visualizer.Viewport{
		XMin: cfg.View.XMin, XMax: cfg.View.XMax,
		YMin: cfg.View.YMin, YMax: cfg.View.YMax,
	}
}

// play hands the driver to the configured display backend and blocks until
// the display is closed.
func play(cfg config.Config, d *frames.Driver, log zerolog.Logger) error {
	switch cfg.Backend {
	case config.BackendWindow:
		return window.Run(window.New(d, window.Options{
			Title:  cfg.View.Title,
			XLabel: cfg.View.XLabel,
			YLabel: cfg.View.YLabel,
			View:   viewport(cfg),
		}, log))
	default:
		return ui.Run(ui.New(d, ui.Options{
			Title:  cfg.View.Title,
			XLabel: cfg.View.XLabel,
			YLabel: cfg.View.YLabel,
			View:   viewport(cfg),
		}, log), os.Stdout)
	}
}
