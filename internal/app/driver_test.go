package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/midgard-daycycle/internal/daynight"
)

func newTestDriver(t *testing.T, mutate func(*daynight.Settings)) (*Driver, *observer.ObservedLogs) {
	t.Helper()
	s := daynight.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	sim, err := daynight.New(s)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	return NewDriver(sim, zap.New(core)), logs
}

func TestDriverStepAppliesEnvironment(t *testing.T) {
	d, _ := newTestDriver(t, func(s *daynight.Settings) { s.TimeMultiplier = 3600 })

	assert.Equal(t, "12:00", d.Environment().Clock)

	f := d.Step(1)
	assert.Equal(t, "13:00", f.Clock)
	assert.Equal(t, "13:00", d.Environment().Clock)
	assert.Equal(t, float32(f.SunIntensity), d.Environment().Sun.Intensity)
	assert.Equal(t, f.Ambient, d.Environment().Ambient)
	assert.Equal(t, uint64(1), d.Frames())
}

func TestDriverPause(t *testing.T) {
	d, logs := newTestDriver(t, func(s *daynight.Settings) { s.TimeMultiplier = 3600 })

	assert.True(t, d.TogglePause())
	assert.True(t, d.Paused())
	f := d.Step(5)
	assert.Equal(t, "12:00", f.Clock)
	assert.Equal(t, 1, logs.FilterMessage("pause toggled").Len())

	assert.False(t, d.TogglePause())
	f = d.Step(1)
	assert.Equal(t, "13:00", f.Clock)
}

func TestDriverTitle(t *testing.T) {
	d, _ := newTestDriver(t, func(s *daynight.Settings) { s.TimeMultiplier = 3600 })

	assert.Equal(t, "Midgard - 12:00", d.Title("Midgard"))
	d.Step(1)
	d.TogglePause()
	assert.Equal(t, "Midgard - 13:00 (paused)", d.Title("Midgard"))
}

func TestDriverLogsTransitions(t *testing.T) {
	d, logs := newTestDriver(t, func(s *daynight.Settings) {
		s.TimeMultiplier = 3600
		s.StartHour = 20
	})

	// 20:00 -> 21:00 crosses the 20:30 sunset.
	d.Step(1)
	sunset := logs.FilterMessage("sunset").All()
	require.Len(t, sunset, 1)
	assert.Equal(t, "21:00", sunset[0].ContextMap()["clock"])

	// 21:00 -> 08:00 crosses the 07:00 sunrise.
	d.Step(11)
	assert.Equal(t, 1, logs.FilterMessage("sunrise").Len())
	assert.Equal(t, 2, logs.FilterMessage("hour").Len())
}

func TestRunHeadlessFrameBudget(t *testing.T) {
	d, logs := newTestDriver(t, func(s *daynight.Settings) { s.TimeMultiplier = 60 })

	err := d.RunHeadless(context.Background(), HeadlessOptions{Frames: 40, Step: 50 * time.Millisecond})
	require.NoError(t, err)

	assert.Equal(t, uint64(40), d.Frames())
	// 2 real seconds at 60x is two simulated minutes.
	assert.Equal(t, "12:02", d.Environment().Clock)
	assert.Equal(t, 1, logs.FilterMessage("headless run finished").Len())
}

func TestRunHeadlessCancelled(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, d.RunHeadless(ctx, HeadlessOptions{}))
	assert.Equal(t, uint64(0), d.Frames())
}

func TestRunHeadlessRealtime(t *testing.T) {
	d, _ := newTestDriver(t, nil)

	err := d.RunHeadless(context.Background(), HeadlessOptions{
		Frames:   3,
		Step:     time.Millisecond,
		Realtime: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), d.Frames())
}
