package desirability

import (
	"fmt"
	"math"
)

//////
// Const, vars, types.
//////

// Interval represents the value bounds of a target. It is an immutable value
// type: both ends are fixed at construction and never change.
//
// Classification:
//   - Finite: both ends are finite numbers (a "bounded" target)
//   - Unbounded: both ends are infinite (no bounds at all)
//   - Half-bounded: exactly one finite end — representable, but rejected by
//     target construction because the desirability scheme cannot normalize
//     a half-open range
//
// The zero value is the degenerate interval [0, 0]; use IntervalAll or
// NewInterval to obtain a meaningful instance.
type Interval struct {
	// lower is the lower end of the interval. math.Inf(-1) means unbounded
	// below.
	lower float64

	// upper is the upper end of the interval. math.Inf(1) means unbounded
	// above.
	upper float64
}

//////
// Exported functionalities.
//////

// IntervalAll returns the fully unbounded interval (-Inf, +Inf).
func IntervalAll() Interval {
	return Interval{lower: math.Inf(-1), upper: math.Inf(1)}
}

// NewInterval creates an interval from the given ends.
//
// Parameters:
// - lower: Lower end; math.Inf(-1) for unbounded below
// - upper: Upper end; math.Inf(1) for unbounded above
//
// Returns:
// - Interval: The constructed interval
// - error: ErrConfiguration if an end is NaN or if lower >= upper
//
// Equal ends are rejected: a degenerate interval has no usable range to
// normalize over.
func NewInterval(lower, upper float64) (Interval, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Interval{}, fmt.Errorf(
			"%w: interval ends must not be NaN, got [%v, %v]",
			ErrConfiguration, lower, upper,
		)
	}

	if lower >= upper {
		return Interval{}, fmt.Errorf(
			"%w: interval lower end must be strictly below the upper end, got [%v, %v]",
			ErrConfiguration, lower, upper,
		)
	}

	return Interval{lower: lower, upper: upper}, nil
}

//////
// Methods.
//////

// Lower returns the lower end of the interval.
func (i Interval) Lower() float64 { return i.lower }

// Upper returns the upper end of the interval.
func (i Interval) Upper() float64 { return i.upper }

// IsFinite reports whether both ends of the interval are finite.
func (i Interval) IsFinite() bool {
	return !math.IsInf(i.lower, 0) && !math.IsInf(i.upper, 0)
}

// IsBounded reports whether at least one end of the interval is finite.
func (i Interval) IsBounded() bool {
	return !math.IsInf(i.lower, 0) || !math.IsInf(i.upper, 0)
}

// IsHalfBounded reports whether exactly one end of the interval is finite.
// Half-bounded intervals are rejected by target construction.
func (i Interval) IsHalfBounded() bool {
	return i.IsBounded() && !i.IsFinite()
}

// Center returns the midpoint of the interval. Only meaningful for finite
// intervals.
func (i Interval) Center() float64 {
	return (i.lower + i.upper) / 2
}

// String returns a human-readable representation of the interval.
func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.lower, i.upper)
}
