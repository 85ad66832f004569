// Package clock implements the convention-local day+time value type used by
// the schedule parser and conflict detector. A NumericTime flattens to a
// single float ("hours since the start of the first convention day") for
// comparison and arithmetic.
package clock

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for all time comparisons.
const Epsilon = 0.001

// NumericTime is an absolute point in convention-local time. The zero value
// is the Bogus sentinel: it never matches anything in overlap tests.
// Values are immutable; arithmetic returns new instances.
type NumericTime struct {
	day   int
	hours float64
	valid bool
}

// New builds a NumericTime from a convention day index and an hour-of-day.
// The value is normalized so that excess hours carry into the day.
func New(day int, hours float64) NumericTime {
	return FromNumeric(24*float64(day) + hours)
}

// FromNumeric reconstructs a NumericTime from its scalar form.
func FromNumeric(f float64) NumericTime {
	d := dayNumber(f)
	return NumericTime{day: d, hours: f - 24*float64(d), valid: true}
}

// Bogus returns the uninitialized sentinel.
func Bogus() NumericTime { return NumericTime{} }

// dayNumber computes the day index of a scalar time. The small offset keeps
// hour 24 (midnight, end-of-day) in the day it closes rather than the day it
// opens.
func dayNumber(f float64) int {
	return int(math.Floor((f - 0.01) / 24))
}

// Numeric returns the canonical comparable scalar 24*day + hours.
func (t NumericTime) Numeric() float64 { return 24*float64(t.day) + t.hours }

// Day returns the convention day index.
func (t NumericTime) Day() int { return t.day }

// Hours returns the hour-of-day component. It is in [0, 24); midnight is the
// one exception and reads as 24 so that it sorts after the day's events.
func (t NumericTime) Hours() float64 { return t.hours }

// IsBogus reports whether t is the uninitialized sentinel.
func (t NumericTime) IsBogus() bool { return !t.valid }

// Add returns the time h hours later.
func (t NumericTime) Add(h float64) NumericTime { return FromNumeric(t.Numeric() + h) }

// Sub returns the time h hours earlier.
func (t NumericTime) Sub(h float64) NumericTime { return FromNumeric(t.Numeric() - h) }

// Since returns the duration in hours from o to t. It may be negative.
func (t NumericTime) Since(o NumericTime) float64 { return t.Numeric() - o.Numeric() }

// Equal reports whether the two times coincide within Epsilon.
func (t NumericTime) Equal(o NumericTime) bool {
	return t.valid && o.valid && math.Abs(t.Numeric()-o.Numeric()) < Epsilon
}

// Before reports whether t is strictly earlier than o.
func (t NumericTime) Before(o NumericTime) bool {
	return t.Numeric() < o.Numeric()-Epsilon
}

// After reports whether t is strictly later than o.
func (t NumericTime) After(o NumericTime) bool { return o.Before(t) }

// String renders the scalar for debugging; human-facing rendering goes
// through WeekConfig.DayTimeString.
func (t NumericTime) String() string {
	if t.IsBogus() {
		return "bogus"
	}
	return fmt.Sprintf("%d+%.2fh", t.day, t.hours)
}
