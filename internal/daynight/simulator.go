package daynight

import (
	"fmt"

	"github.com/Faultbox/midgard-daycycle/pkg/math"
)

// Settings configures a Simulator. They are fixed once the simulator exists.
type Settings struct {
	TimeMultiplier float64 // simulated seconds per real second
	StartHour      float64
	SunriseHour    float64
	SunsetHour     float64

	MaxSunLightIntensity  float64
	MaxMoonLightIntensity float64
	DayAmbientColor       math.Color
	NightAmbientColor     math.Color

	// Curve shapes the light transition. Nil means clamp01(dot).
	Curve Curve
}

// DefaultSettings returns the stock cycle: noon start, sunrise 07:00,
// sunset 20:30 and a 2000x clock.
func DefaultSettings() Settings {
	return Settings{
		TimeMultiplier:        2000,
		StartHour:             12,
		SunriseHour:           7,
		SunsetHour:            20.5,
		MaxSunLightIntensity:  1,
		MaxMoonLightIntensity: 0.5,
		DayAmbientColor:       math.Color{R: 0.5607843, G: 0.6039216, B: 0.682353},
		NightAmbientColor:     math.Color{R: 0.1568628, G: 0.3137255, B: 0.3921569},
		Curve:                 DefaultCurve(),
	}
}

// Validate reports the first setting that would make the cycle undefined.
func (s Settings) Validate() error {
	if !finite(s.TimeMultiplier) {
		return fmt.Errorf("%w: time multiplier %v is not finite", ErrInvalidConfiguration, s.TimeMultiplier)
	}
	hours := []struct {
		name  string
		value float64
	}{
		{"start", s.StartHour},
		{"sunrise", s.SunriseHour},
		{"sunset", s.SunsetHour},
	}
	for _, h := range hours {
		if !finite(h.value) || h.value < 0 || h.value >= 24 {
			return fmt.Errorf("%w: %s hour %v outside [0, 24)", ErrInvalidConfiguration, h.name, h.value)
		}
	}
	// Compare at clock resolution: hours closer than a nanosecond collapse to
	// the same instant and leave an empty day arc.
	if FromHours(s.SunriseHour) >= FromHours(s.SunsetHour) {
		return fmt.Errorf("%w: sunrise hour %v must be before sunset hour %v", ErrInvalidConfiguration, s.SunriseHour, s.SunsetHour)
	}
	if !finite(s.MaxSunLightIntensity) || s.MaxSunLightIntensity < 0 {
		return fmt.Errorf("%w: max sun intensity %v", ErrInvalidConfiguration, s.MaxSunLightIntensity)
	}
	if !finite(s.MaxMoonLightIntensity) || s.MaxMoonLightIntensity < 0 {
		return fmt.Errorf("%w: max moon intensity %v", ErrInvalidConfiguration, s.MaxMoonLightIntensity)
	}
	for name, c := range map[string]math.Color{"day": s.DayAmbientColor, "night": s.NightAmbientColor} {
		if !finite(float64(c.R)) || !finite(float64(c.G)) || !finite(float64(c.B)) {
			return fmt.Errorf("%w: %s ambient color %v is not finite", ErrInvalidConfiguration, name, c)
		}
	}
	return nil
}

// Frame is everything one tick produces for the host.
type Frame struct {
	TimeOfDay   TimeOfDay
	Clock       string // "HH:MM"
	Arc         Arc
	SunAngle    float64 // degrees in [0, 360)
	SunAxis     math.Vec3
	SunRotation math.Quat
	SunForward  math.Vec3
	Lighting
}

// Simulator advances a virtual clock and derives sun and ambient lighting.
// It is not safe for concurrent use; the host calls Tick once per frame.
type Simulator struct {
	settings Settings
	clock    *Clock
	sunrise  TimeOfDay
	sunset   TimeOfDay
	last     Frame
}

// New validates settings and starts the clock at StartHour.
func New(settings Settings) (*Simulator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		settings: settings,
		clock:    NewClock(settings.StartHour, settings.TimeMultiplier),
		sunrise:  FromHours(settings.SunriseHour),
		sunset:   FromHours(settings.SunsetHour),
	}
	s.last = s.derive(s.clock.Now())
	return s, nil
}

// Tick advances the clock by elapsed real seconds and recomputes the frame.
func (s *Simulator) Tick(elapsedSeconds float64) Frame {
	s.last = s.derive(s.clock.Advance(elapsedSeconds))
	return s.last
}

func (s *Simulator) derive(tod TimeOfDay) Frame {
	angle := RotationAngle(tod, s.sunrise, s.sunset)
	st := s.settings
	return Frame{
		TimeOfDay:   tod,
		Clock:       tod.HHMM(),
		Arc:         ArcOf(tod, s.sunrise, s.sunset),
		SunAngle:    angle,
		SunAxis:     math.Right,
		SunRotation: SunRotation(angle),
		SunForward:  SunForward(angle),
		Lighting: Mix(angle, st.Curve,
			st.MaxSunLightIntensity, st.MaxMoonLightIntensity,
			st.DayAmbientColor, st.NightAmbientColor),
	}
}

// Last returns the most recent frame. Before the first Tick it describes StartHour.
func (s *Simulator) Last() Frame {
	return s.last
}

// TimeOfDay returns the current simulated time.
func (s *Simulator) TimeOfDay() TimeOfDay {
	return s.clock.Now()
}

// IsDay reports whether the current time is strictly between sunrise and sunset.
func (s *Simulator) IsDay() bool {
	return ArcOf(s.clock.Now(), s.sunrise, s.sunset) == DayArc
}

// Settings returns the settings the simulator was built with.
func (s *Simulator) Settings() Settings {
	return s.settings
}
