package desirability

import (
	"math"

	"golang.org/x/exp/constraints"
)

//////
// Available bound transform functions.
// Each function maps a sequence of raw values into [0, 1] relative to a pair
// of finite bounds with lower < upper. They are pure, deterministic, and
// allocate a fresh output slice; the input is never modified. NaN values
// propagate unchanged so that missing measurements stay missing instead of
// being silently dropped or defaulted.
//
// Bounds validation (finiteness, lower < upper) happens once at target
// construction, not on every call.
//////

// BoundLinear maps values linearly onto [0, 1] between the given bounds.
//
// Direction:
//   - descending=false: lower maps to 0, upper maps to 1 (used for MAX mode)
//   - descending=true: lower maps to 1, upper maps to 0 (used for MIN mode)
//
// Values outside [lower, upper] are clipped to the nearest bound before
// scaling, so the output never extrapolates beyond [0, 1].
//
// Type Parameter:
//   - T: The floating-point type of the values (float32 or float64)
//
// Parameters:
// - values: Raw values to transform
// - lower, upper: Finite bounds with lower < upper
// - descending: Orientation of the mapping
//
// Returns:
// - []T: A new slice of the same length with values in [0, 1]
//
// Usage example:
//
//	scores := BoundLinear([]float64{0, 5, 10, 20}, 0, 10, false)
//	// scores == []float64{0, 0.5, 1, 1}
func BoundLinear[T constraints.Float](values []T, lower, upper T, descending bool) []T {
	lo := float64(lower)
	hi := float64(upper)
	span := hi - lo

	out := make([]T, len(values))

	for i, v := range values {
		x := float64(v)

		var d float64
		if descending {
			d = (hi - x) / span
		} else {
			d = (x - lo) / span
		}

		// Clip to [0, 1]. NaN fails both comparisons and flows through.
		if d < 0 {
			d = 0
		} else if d > 1 {
			d = 1
		}

		out[i] = T(d)
	}

	return out
}

// BoundTriangular maps values onto a piecewise-linear tent between the given
// bounds: the output rises linearly from 0 at the lower bound to 1 at the
// center (lower+upper)/2, then falls linearly back to 0 at the upper bound.
// Values at or outside the bounds map to 0.
//
// Used for MATCH mode, where the center of the bounds is the set point.
//
// Type Parameter:
//   - T: The floating-point type of the values (float32 or float64)
//
// Parameters:
// - values: Raw values to transform
// - lower, upper: Finite bounds with lower < upper
//
// Returns:
// - []T: A new slice of the same length with values in [0, 1]
//
// Usage example:
//
//	scores := BoundTriangular([]float64{0, 25, 50, 75, 100}, 0, 100)
//	// scores == []float64{0, 0.5, 1, 0.5, 0}
func BoundTriangular[T constraints.Float](values []T, lower, upper T) []T {
	lo := float64(lower)
	hi := float64(upper)
	center := (lo + hi) / 2

	out := make([]T, len(values))

	for i, v := range values {
		x := float64(v)

		var d float64

		switch {
		case x <= lo || x >= hi:
			// Zero at and beyond both ends. NaN fails both comparisons and
			// falls through to the arithmetic below, which propagates it.
			d = 0
		case x <= center:
			d = (x - lo) / (center - lo)
		default:
			d = (hi - x) / (hi - center)
		}

		out[i] = T(d)
	}

	return out
}

// BoundBell maps values onto a Gaussian bell centered between the given
// bounds:
//
//	d(x) = exp(-(x - center)^2 / (2 * sigma^2))
//
// with center = (lower+upper)/2 and sigma = (upper-lower)/6, placing the
// bounds at three standard deviations from the center. The output is 1 at
// the center, strictly unimodal, and ~= 0.011 at either bound.
//
// Used for MATCH mode when a smooth desirability curve is preferred over the
// triangular tent.
//
// Type Parameter:
//   - T: The floating-point type of the values (float32 or float64)
//
// Parameters:
// - values: Raw values to transform
// - lower, upper: Finite bounds with lower < upper
//
// Returns:
// - []T: A new slice of the same length with values in (0, 1]
func BoundBell[T constraints.Float](values []T, lower, upper T) []T {
	lo := float64(lower)
	hi := float64(upper)
	center := (lo + hi) / 2
	sigma := (hi - lo) / 6

	out := make([]T, len(values))

	for i, v := range values {
		x := float64(v)

		diff := x - center

		out[i] = T(math.Exp(-(diff * diff) / (2 * sigma * sigma)))
	}

	return out
}
