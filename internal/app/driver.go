// Package app drives a day/night simulator from a frame loop and keeps the
// host's lighting environment in step with it.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-daycycle/internal/daynight"
	"github.com/Faultbox/midgard-daycycle/internal/engine/lighting"
)

// Driver ticks a simulator once per frame and applies the result to an
// Environment. Like the simulator it is meant for a single goroutine.
type Driver struct {
	sim *daynight.Simulator
	env *lighting.Environment
	log *zap.Logger

	paused   bool
	frames   uint64
	lastHour int
	lastArc  daynight.Arc
}

// NewDriver wraps sim. The environment starts out describing sim's current frame.
func NewDriver(sim *daynight.Simulator, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Driver{
		sim: sim,
		env: lighting.NewEnvironment(),
		log: log,
	}
	f := sim.Last()
	d.env.Apply(f)
	d.lastHour = hourOf(f)
	d.lastArc = f.Arc
	return d
}

// Step advances the simulation by dt real seconds. While paused the clock
// receives zero elapsed time but the frame is still recomputed.
func (d *Driver) Step(dt float64) daynight.Frame {
	if d.paused {
		dt = 0
	}
	f := d.sim.Tick(dt)
	d.env.Apply(f)
	d.observe(f)
	d.frames++
	return f
}

func (d *Driver) observe(f daynight.Frame) {
	if f.Arc != d.lastArc {
		event := "sunset"
		if f.Arc == daynight.DayArc {
			event = "sunrise"
		}
		d.log.Info(event,
			zap.String("clock", f.Clock),
			zap.Float64("angle", f.SunAngle),
		)
		d.lastArc = f.Arc
	}

	if h := hourOf(f); h != d.lastHour {
		d.log.Debug("hour",
			zap.String("clock", f.Clock),
			zap.Stringer("arc", f.Arc),
			zap.Float64("angle", f.SunAngle),
			zap.Float64("sun", f.SunIntensity),
			zap.Float64("moon", f.MoonIntensity),
		)
		d.lastHour = h
	}
}

func hourOf(f daynight.Frame) int {
	return int(f.TimeOfDay.Duration() / time.Hour)
}

// TogglePause flips the pause state and returns the new state.
func (d *Driver) TogglePause() bool {
	d.paused = !d.paused
	d.log.Info("pause toggled", zap.Bool("paused", d.paused))
	return d.paused
}

// Paused reports whether the clock is held.
func (d *Driver) Paused() bool {
	return d.paused
}

// Title renders the clock readout shown in the window title, for example
// "Midgard - 13:00 (paused)".
func (d *Driver) Title(base string) string {
	title := base + " - " + d.env.Clock
	if d.paused {
		title += " (paused)"
	}
	return title
}

// Environment returns the lighting state updated by Step.
func (d *Driver) Environment() *lighting.Environment {
	return d.env
}

// Frames returns how many steps have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// HeadlessOptions controls RunHeadless.
type HeadlessOptions struct {
	Frames   int           // 0 runs until ctx is done
	Step     time.Duration // real time per frame
	Realtime bool          // wait Step between frames instead of running flat out
}

// RunHeadless steps the simulation without a window. It returns nil when
// the frame budget is spent or ctx is cancelled.
func (d *Driver) RunHeadless(ctx context.Context, opts HeadlessOptions) error {
	if opts.Step <= 0 {
		opts.Step = time.Second / 60
	}

	var tick <-chan time.Time
	if opts.Realtime {
		ticker := time.NewTicker(opts.Step)
		defer ticker.Stop()
		tick = ticker.C
	}

	d.log.Info("headless run started",
		zap.Int("frames", opts.Frames),
		zap.Duration("step", opts.Step),
		zap.String("clock", d.env.Clock),
	)

	for i := 0; opts.Frames == 0 || i < opts.Frames; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return d.finish()
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return d.finish()
		}
		d.Step(opts.Step.Seconds())
	}
	return d.finish()
}

func (d *Driver) finish() error {
	f := d.sim.Last()
	d.log.Info("headless run finished",
		zap.Uint64("frames", d.frames),
		zap.String("clock", f.Clock),
		zap.Float64("angle", f.SunAngle),
	)
	return nil
}
