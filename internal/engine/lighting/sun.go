package lighting

import (
	gomath "math"

	"github.com/Faultbox/midgard-daycycle/pkg/math"
)

// SunAzimuth is the azimuth of the sun's path. The sun rises towards -Z
// and sets towards +Z, crossing overhead at 90 degrees of elevation.
const SunAzimuth = 180.0

// SunDirection converts elevation and azimuth angles (degrees) to a unit
// vector pointing towards the sun. Azimuth is rotation around Y measured
// from +Z, elevation is the angle above the horizon. Elevations past 90
// continue over the top, so a full 0..360 sweep traces the whole circle.
func SunDirection(elevationDeg, azimuthDeg float64) math.Vec3 {
	el := elevationDeg * gomath.Pi / 180.0
	az := azimuthDeg * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}
