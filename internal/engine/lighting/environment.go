// Package lighting holds the scene's directional and ambient light state.
//
// Nothing here is global: the host owns an Environment, applies each
// simulator frame to it and hands it to whatever renders the scene.
package lighting

import (
	"github.com/Faultbox/midgard-daycycle/internal/daynight"
	"github.com/Faultbox/midgard-daycycle/pkg/math"
)

// DirectionalLight is a light at infinity such as the sun or moon.
type DirectionalLight struct {
	Direction math.Vec3 // direction the light travels, unit length
	Color     math.Color
	Intensity float32
}

// Radiance returns color * intensity.
func (l DirectionalLight) Radiance() math.Color {
	return l.Color.Scale(l.Intensity)
}

// Environment is the lighting a renderer consumes each frame.
type Environment struct {
	Sun     DirectionalLight
	Moon    DirectionalLight
	Ambient math.Color
	Clock   string // "HH:MM" of the frame last applied
}

// NewEnvironment returns a warm sun and a cool moon, both off until a frame is applied.
func NewEnvironment() *Environment {
	return &Environment{
		Sun: DirectionalLight{
			Direction: math.Down,
			Color:     math.Color{R: 1.0, G: 0.95, B: 0.85},
		},
		Moon: DirectionalLight{
			Direction: math.Up,
			Color:     math.Color{R: 0.55, G: 0.65, B: 0.9},
		},
	}
}

// Apply copies a simulator frame into the environment. The sun's rotation
// angle doubles as its elevation along the SunAzimuth path; the moon sits
// opposite the sun.
func (e *Environment) Apply(f daynight.Frame) {
	toSun := SunDirection(f.SunAngle, SunAzimuth)
	e.Sun.Direction = toSun.Negate()
	e.Sun.Intensity = float32(f.SunIntensity)
	e.Moon.Direction = toSun
	e.Moon.Intensity = float32(f.MoonIntensity)
	e.Ambient = f.Ambient
	e.Clock = f.Clock
}

// Irradiance is the Lambert lighting arriving at a surface with the given
// normal: ambient plus each light's contribution from above the surface.
func (e *Environment) Irradiance(normal math.Vec3) math.Color {
	out := e.Ambient
	for _, l := range []DirectionalLight{e.Sun, e.Moon} {
		ndotl := normal.Dot(l.Direction.Negate())
		if ndotl <= 0 {
			continue
		}
		r := l.Radiance().Scale(ndotl)
		out = math.Color{R: out.R + r.R, G: out.G + r.G, B: out.B + r.B}
	}
	return out
}

// SkyColor is the clear color for the current light: ambient brightened by
// the sun and tinted by the moon.
func (e *Environment) SkyColor() math.Color {
	sun := math.Clamp01(e.Sun.Intensity)
	moon := math.Clamp01(e.Moon.Intensity)
	sky := e.Ambient.Scale(0.35 + 0.65*sun)
	return sky.Lerp(e.Moon.Color.Scale(0.25), 0.2*moon*(1-sun))
}

// ToSun is the unit vector from the scene towards the sun.
func (e *Environment) ToSun() math.Vec3 {
	return e.Sun.Direction.Negate()
}
