package daynight

import "github.com/Faultbox/midgard-daycycle/pkg/math"

// Lighting is the light state derived from one sun angle.
type Lighting struct {
	Dot           float64 // dot(sun forward, down)
	Weight        float64 // response curve output
	SunIntensity  float64
	MoonIntensity float64
	Ambient       math.Color
}

// Mix derives sun and moon intensity and the ambient color from the sun's
// rotation. With a nil curve the weight is clamp01(dot). The weight is not
// clamped otherwise, so a curve leaving [0, 1] extrapolates the outputs.
func Mix(angle float64, curve Curve, maxSun, maxMoon float64, dayAmbient, nightAmbient math.Color) Lighting {
	t := Elevation(angle)
	w := Weight(t, curve)
	return Lighting{
		Dot:           t,
		Weight:        w,
		SunIntensity:  lerp(0, maxSun, w),
		MoonIntensity: lerp(maxMoon, 0, w),
		Ambient:       nightAmbient.Lerp(dayAmbient, float32(w)),
	}
}

// Weight runs t through curve, falling back to clamp01 when curve is nil.
func Weight(t float64, curve Curve) float64 {
	if curve == nil {
		return clamp01(t)
	}
	return curve.Evaluate(t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
