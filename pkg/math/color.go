package math

// Color is a linear RGB color.
type Color struct {
	R, G, B float32
}

// Lerp blends c towards other by t per channel. t is not clamped.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: Lerp(c.R, other.R, t),
		G: Lerp(c.G, other.G, t),
		B: Lerp(c.B, other.B, t),
	}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}
