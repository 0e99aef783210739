package daynight

import (
	"fmt"
	gomath "math"
	"time"
)

// Day is the length of one simulated day.
const Day = 24 * time.Hour

// TimeOfDay is simulated time since local midnight, always in [0, 24h).
type TimeOfDay time.Duration

// FromHours builds a TimeOfDay from fractional hours, wrapping into range.
func FromHours(hours float64) TimeOfDay {
	return wrap(time.Duration(gomath.Round(hours * float64(time.Hour))))
}

// FromClock builds a TimeOfDay from hours, minutes and seconds.
func FromClock(h, m, s int) TimeOfDay {
	return wrap(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

func wrap(d time.Duration) TimeOfDay {
	d %= Day
	if d < 0 {
		d += Day
	}
	return TimeOfDay(d)
}

// Duration returns the value as a time.Duration since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

// Hours returns fractional hours since midnight.
func (t TimeOfDay) Hours() float64 {
	return time.Duration(t).Hours()
}

// HHMM formats the time as a 24-hour "HH:MM" string.
func (t TimeOfDay) HHMM() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", d/time.Hour, (d%time.Hour)/time.Minute)
}

// String formats the time as "HH:MM:SS".
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d", d/time.Hour, (d%time.Hour)/time.Minute, (d%time.Minute)/time.Second)
}

// Advance moves current forward by elapsedRealSeconds * multiplier seconds
// of simulated time and wraps the result into [0, 24h).
//
// A zero multiplier freezes time and a negative one runs it backward.
// Non-positive or NaN elapsed values leave the time unchanged.
func Advance(current TimeOfDay, elapsedRealSeconds, multiplier float64) TimeOfDay {
	if !(elapsedRealSeconds > 0) || multiplier == 0 {
		return current
	}
	delta := elapsedRealSeconds * multiplier * float64(time.Second)
	if gomath.IsNaN(delta) || gomath.IsInf(delta, 0) {
		return current
	}
	// Whole days are dropped before converting so huge steps cannot overflow.
	delta = gomath.Mod(delta, float64(Day))
	return wrap(time.Duration(current) + time.Duration(gomath.Round(delta)))
}

// Clock is the simulator's time-of-day state.
type Clock struct {
	now        TimeOfDay
	multiplier float64
}

// NewClock starts a clock at startHour running multiplier times faster than real time.
func NewClock(startHour, multiplier float64) *Clock {
	return &Clock{
		now:        FromHours(startHour),
		multiplier: multiplier,
	}
}

// Advance steps the clock by elapsed real seconds and returns the new time.
func (c *Clock) Advance(elapsedRealSeconds float64) TimeOfDay {
	c.now = Advance(c.now, elapsedRealSeconds, c.multiplier)
	return c.now
}

// Now returns the current time of day.
func (c *Clock) Now() TimeOfDay {
	return c.now
}
