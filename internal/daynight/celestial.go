package daynight

import (
	"time"

	"github.com/Faultbox/midgard-daycycle/pkg/math"
)

// Arc is one of the two intervals between sunrise and sunset.
type Arc int

const (
	NightArc Arc = iota
	DayArc
)

func (a Arc) String() string {
	if a == DayArc {
		return "day"
	}
	return "night"
}

// TimeDiff returns the forward duration from one time of day to another,
// crossing midnight when needed. The result is in [0, 24h).
func TimeDiff(from, to TimeOfDay) time.Duration {
	d := time.Duration(to - from)
	if d < 0 {
		d += Day
	}
	return d
}

// ArcOf reports which arc tod falls in. Only times strictly between sunrise
// and sunset are day; the sunrise and sunset instants are night.
func ArcOf(tod, sunrise, sunset TimeOfDay) Arc {
	if tod > sunrise && tod < sunset {
		return DayArc
	}
	return NightArc
}

// RotationAngle maps tod to the sun's rotation in degrees, in [0, 360).
// The day arc covers [0, 180] and the night arc [180, 360].
func RotationAngle(tod, sunrise, sunset TimeOfDay) float64 {
	start, end := sunset, sunrise
	from, to := 180.0, 360.0
	if ArcOf(tod, sunrise, sunset) == DayArc {
		start, end = sunrise, sunset
		from, to = 0, 180
	}

	var fraction float64
	if total := TimeDiff(start, end); total > 0 {
		fraction = float64(TimeDiff(start, tod)) / float64(total)
	}
	fraction = clamp01(fraction)

	angle := from + (to-from)*fraction
	if angle >= 360 {
		angle -= 360
	}
	return angle
}

// SunRotation is the rotation of the sun light: angle degrees about the right axis.
func SunRotation(angle float64) math.Quat {
	return math.QuatFromAxisDegrees(math.Right, angle)
}

// SunForward is the direction the sun light points for a rotation angle.
// At 0 it is horizontal, at 90 it points straight down.
func SunForward(angle float64) math.Vec3 {
	return SunRotation(angle).Rotate(math.Forward)
}

// Elevation is dot(forward, down): 1 with the sun overhead, negative below the horizon.
func Elevation(angle float64) float64 {
	return float64(SunForward(angle).Dot(math.Down))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
