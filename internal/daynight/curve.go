package daynight

import (
	"cmp"
	"fmt"
	gomath "math"
	"slices"
	"sort"
	"strings"
)

// Curve maps the sun's elevation to a blend weight, normally in [0, 1].
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

// Evaluate calls f(t).
func (f CurveFunc) Evaluate(t float64) float64 {
	return f(t)
}

// Interpolation selects how a KeyframeCurve blends between neighbouring keys.
type Interpolation int

const (
	Linear Interpolation = iota
	Smooth
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// ParseInterpolation parses "linear" or "smooth". Empty means linear.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "smooth":
		return Smooth, nil
	default:
		return Linear, fmt.Errorf("%w: unknown curve mode %q", ErrInvalidConfiguration, s)
	}
}

// Keyframe is one sample of a KeyframeCurve.
type Keyframe struct {
	Time  float64
	Value float64
}

// KeyframeCurve is a piecewise curve through user keyframes. Inputs before
// the first key or after the last one take that key's value.
type KeyframeCurve struct {
	keys []Keyframe
	mode Interpolation
}

// NewKeyframeCurve builds a curve from keys in any order.
func NewKeyframeCurve(mode Interpolation, keys ...Keyframe) (*KeyframeCurve, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: response curve has no keys", ErrInvalidConfiguration)
	}
	if mode != Linear && mode != Smooth {
		return nil, fmt.Errorf("%w: unknown curve mode %v", ErrInvalidConfiguration, mode)
	}
	for i, k := range keys {
		if !finite(k.Time) || !finite(k.Value) {
			return nil, fmt.Errorf("%w: curve key %d (%v, %v) is not finite", ErrInvalidConfiguration, i, k.Time, k.Value)
		}
	}

	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b Keyframe) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return &KeyframeCurve{keys: sorted, mode: mode}, nil
}

// DefaultCurve is dark below the horizon and ramps to full light as the sun
// climbs a quarter of the way up.
func DefaultCurve() *KeyframeCurve {
	return &KeyframeCurve{
		keys: []Keyframe{
			{Time: -1, Value: 0},
			{Time: -0.05, Value: 0},
			{Time: 0.25, Value: 1},
			{Time: 1, Value: 1},
		},
		mode: Smooth,
	}
}

// Evaluate samples the curve at t. A nil or empty curve acts as clamp01.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	if c == nil || len(c.keys) == 0 {
		return clamp01(t)
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if gomath.IsNaN(t) || t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	// First key strictly after t; always in [1, len-1] here.
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]

	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	u := (t - a.Time) / span
	if c.mode == Smooth {
		u = u * u * (3 - 2*u)
	}
	return a.Value + (b.Value-a.Value)*u
}

// Keys returns a copy of the sorted keys.
func (c *KeyframeCurve) Keys() []Keyframe {
	return slices.Clone(c.keys)
}

// Mode returns the interpolation mode.
func (c *KeyframeCurve) Mode() Interpolation {
	return c.mode
}

func finite(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}
