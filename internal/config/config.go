// Package config handles day/night cycle configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/midgard-daycycle/internal/daynight"
	"github.com/Faultbox/midgard-daycycle/pkg/math"
)

// Config holds all settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds clock and sun timing settings. Hours are fractional.
type SimulationConfig struct {
	TimeMultiplier float64 `yaml:"time_multiplier"`
	StartHour      float64 `yaml:"start_hour"`
	SunriseHour    float64 `yaml:"sunrise_hour"`
	SunsetHour     float64 `yaml:"sunset_hour"`
}

// LightingConfig holds light intensity and ambient settings.
type LightingConfig struct {
	MaxSunIntensity  float64     `yaml:"max_sun_intensity"`
	MaxMoonIntensity float64     `yaml:"max_moon_intensity"`
	DayAmbient       ColorConfig `yaml:"day_ambient"`
	NightAmbient     ColorConfig `yaml:"night_ambient"`
	Curve            CurveConfig `yaml:"curve"`
}

// ColorConfig is an RGB color with channels in [0, 1].
type ColorConfig struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// CurveConfig describes the light response curve.
// An empty key list disables the curve and the weight becomes clamp01(dot).
type CurveConfig struct {
	Mode string     `yaml:"mode"` // linear or smooth
	Keys []CurveKey `yaml:"keys"`
}

// CurveKey is one curve sample.
type CurveKey struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Headless   bool `yaml:"headless"`
	Frames     int  `yaml:"frames"` // headless frame count, 0 = run until interrupted
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	sim := daynight.DefaultSettings()
	curve := daynight.DefaultCurve()

	keys := make([]CurveKey, 0, len(curve.Keys()))
	for _, k := range curve.Keys() {
		keys = append(keys, CurveKey{Time: k.Time, Value: k.Value})
	}

	return &Config{
		Simulation: SimulationConfig{
			TimeMultiplier: sim.TimeMultiplier,
			StartHour:      sim.StartHour,
			SunriseHour:    sim.SunriseHour,
			SunsetHour:     sim.SunsetHour,
		},
		Lighting: LightingConfig{
			MaxSunIntensity:  sim.MaxSunLightIntensity,
			MaxMoonIntensity: sim.MaxMoonLightIntensity,
			DayAmbient:       colorConfig(sim.DayAmbientColor),
			NightAmbient:     colorConfig(sim.NightAmbientColor),
			Curve: CurveConfig{
				Mode: curve.Mode().String(),
				Keys: keys,
			},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Headless:   false,
			Frames:     0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the config into simulator settings.
// Range checks are left to daynight.Settings.Validate.
func (c *Config) Settings() (daynight.Settings, error) {
	s := daynight.Settings{
		TimeMultiplier:        c.Simulation.TimeMultiplier,
		StartHour:             c.Simulation.StartHour,
		SunriseHour:           c.Simulation.SunriseHour,
		SunsetHour:            c.Simulation.SunsetHour,
		MaxSunLightIntensity:  c.Lighting.MaxSunIntensity,
		MaxMoonLightIntensity: c.Lighting.MaxMoonIntensity,
		DayAmbientColor:       c.Lighting.DayAmbient.Color(),
		NightAmbientColor:     c.Lighting.NightAmbient.Color(),
	}

	if len(c.Lighting.Curve.Keys) > 0 {
		mode, err := daynight.ParseInterpolation(c.Lighting.Curve.Mode)
		if err != nil {
			return daynight.Settings{}, fmt.Errorf("lighting.curve: %w", err)
		}
		keys := make([]daynight.Keyframe, len(c.Lighting.Curve.Keys))
		for i, k := range c.Lighting.Curve.Keys {
			keys[i] = daynight.Keyframe{Time: k.Time, Value: k.Value}
		}
		curve, err := daynight.NewKeyframeCurve(mode, keys...)
		if err != nil {
			return daynight.Settings{}, fmt.Errorf("lighting.curve: %w", err)
		}
		s.Curve = curve
	}

	return s, nil
}

// Color converts to the math color type.
func (c ColorConfig) Color() math.Color {
	return math.Color{R: c.R, G: c.G, B: c.B}
}

func colorConfig(c math.Color) ColorConfig {
	return ColorConfig{R: c.R, G: c.G, B: c.B}
}
