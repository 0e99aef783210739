package math

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
