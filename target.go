package desirability

import (
	"fmt"
	"math"
)

//////
// Const, vars, types.
//////

// NumericalTarget is a single measured quantity with an optimization mode,
// optional value bounds, and a bound transform. It converts raw measurements
// into a normalized, direction-consistent scale.
//
// Targets are immutable once constructed: all validation happens in
// NewNumericalTarget, and Transform is a pure read operation. A target may
// therefore be shared between goroutines without coordination.
type NumericalTarget struct {
	// name identifies the target; unique within an objective. It selects
	// the target's column from input tables.
	name string

	// mode is the optimization direction.
	mode TargetMode

	// bounds is the value range of the target. Either both ends are finite
	// or both are infinite; half-bounded targets are rejected.
	bounds Interval

	// transform is the bound transform applied when bounds are finite.
	// TransformNone for unbounded targets.
	transform TransformKind
}

// TargetOption customizes target construction.
type TargetOption func(*targetSettings)

// targetSettings collects the optional construction parameters before
// validation.
type targetSettings struct {
	lower     float64
	upper     float64
	transform TransformKind
}

//////
// Exported functionalities.
//////

// WithBounds sets the value bounds of the target.
//
// Parameters:
// - lower, upper: The bounds; use math.Inf for an unbounded end, though a
//   target must end up with both ends finite or both infinite
func WithBounds(lower, upper float64) TargetOption {
	return func(s *targetSettings) {
		s.lower = lower
		s.upper = upper
	}
}

// WithTransform sets the bound transform of the target explicitly. Without
// this option, a bounded target gets the default transform of its mode
// (linear for MIN/MAX, triangular for MATCH).
func WithTransform(kind TransformKind) TargetOption {
	return func(s *targetSettings) {
		s.transform = kind
	}
}

// NewNumericalTarget creates a validated, immutable target.
//
// Parameters:
// - name: Non-empty identifier; selects the target's column in input tables
// - mode: Optimization direction (MAX, MIN, or MATCH)
// - opts: Optional bounds and transform
//
// Returns:
// - *NumericalTarget: The constructed target
// - error: ErrConfiguration for any invalid combination
//
// Validation rules, all enforced here and never re-checked at transform
// time:
//   - name must be non-empty, mode must be a known mode
//   - bounds must be finite on both ends or infinite on both ends
//   - finite bounds require lower < upper
//   - MATCH mode requires finite bounds
//   - the transform must be compatible with the mode (MIN/MAX: LINEAR;
//     MATCH: TRIANGULAR or BELL) and requires finite bounds
//
// Usage example:
//
//	yield, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 100))
//	purity, err := NewNumericalTarget(
//	    "purity",
//	    ModeMatch,
//	    WithBounds(95, 105),
//	    WithTransform(TransformBell),
//	)
func NewNumericalTarget(name string, mode TargetMode, opts ...TargetOption) (*NumericalTarget, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: target name must not be empty", ErrConfiguration)
	}

	if err := mode.Validate(); err != nil {
		return nil, err
	}

	settings := targetSettings{
		lower:     math.Inf(-1),
		upper:     math.Inf(1),
		transform: TransformNone,
	}

	for _, opt := range opts {
		opt(&settings)
	}

	bounds, err := NewInterval(settings.lower, settings.upper)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", name, err)
	}

	if bounds.IsHalfBounded() {
		return nil, fmt.Errorf(
			"%w: target %q bounds must be finite or infinite on *both* ends, got %s",
			ErrConfiguration, name, bounds,
		)
	}

	if mode == ModeMatch && !bounds.IsFinite() {
		return nil, fmt.Errorf(
			"%w: target %q is in MATCH mode, which requires finite bounds",
			ErrConfiguration, name,
		)
	}

	transform := settings.transform

	if err := transform.Validate(); err != nil {
		return nil, fmt.Errorf("target %q: %w", name, err)
	}

	if !transform.CompatibleWith(mode) {
		return nil, fmt.Errorf(
			"%w: target %q transform %q is not compatible with mode %q, must be one of %v",
			ErrConfiguration, name, transform, mode, validTransforms[mode],
		)
	}

	if transform != TransformNone && !bounds.IsFinite() {
		return nil, fmt.Errorf(
			"%w: target %q specifies transform %q but has no finite bounds",
			ErrConfiguration, name, transform,
		)
	}

	// Bounded targets without an explicit transform get the default for
	// their mode.
	if transform == TransformNone && bounds.IsFinite() {
		transform = defaultTransform(mode)
	}

	return &NumericalTarget{
		name:      name,
		mode:      mode,
		bounds:    bounds,
		transform: transform,
	}, nil
}

//////
// Methods.
//////

// Name returns the target's identifier.
func (t *NumericalTarget) Name() string { return t.name }

// Mode returns the target's optimization direction.
func (t *NumericalTarget) Mode() TargetMode { return t.mode }

// Bounds returns the target's value bounds.
func (t *NumericalTarget) Bounds() Interval { return t.bounds }

// TransformKind returns the bound transform selected for the target,
// including one chosen by default. TransformNone for unbounded targets.
func (t *NumericalTarget) TransformKind() TransformKind { return t.transform }

// IsNormalized reports whether the target's transformed values are
// guaranteed to live in [0, 1], which requires finite bounds and a bound
// transform. Objectives that aggregate across targets require every member
// to be normalized so that all columns share a common scale.
func (t *NumericalTarget) IsNormalized() bool {
	return t.bounds.IsFinite() && t.transform != TransformNone
}

// Transform converts a column of raw measurements into the target's
// normalized, direction-consistent representation.
//
// Behavior:
//   - Finite bounds: applies the target's bound transform, oriented by the
//     mode (MAX ascending, MIN descending, MATCH peaked at the center);
//     output lives in [0, 1]
//   - Unbounded: MAX passes values through unchanged; MIN negates them so
//     that "larger is better" holds uniformly downstream (MATCH cannot be
//     unbounded, construction already rejects it)
//
// NaN values propagate unchanged; the transform never drops rows. The input
// slice is not modified.
//
// Returns:
// - []float64: A new slice of the same length as the input
func (t *NumericalTarget) Transform(values []float64) []float64 {
	if t.bounds.IsFinite() {
		lower := t.bounds.Lower()
		upper := t.bounds.Upper()

		switch t.transform {
		case TransformTriangular:
			return BoundTriangular(values, lower, upper)
		case TransformBell:
			return BoundBell(values, lower, upper)
		default:
			return BoundLinear(values, lower, upper, t.mode == ModeMin)
		}
	}

	out := make([]float64, len(values))

	if t.mode == ModeMin {
		for i, v := range values {
			out[i] = -v
		}

		return out
	}

	copy(out, values)

	return out
}
