package desirability

import "fmt"

//////
// Const, vars, types.
//////

// TargetMode defines the optimization direction of a target.
//
// The set of modes is closed by design: targets are either maximized,
// minimized, or matched against a set point. The string values are the
// stable wire contract used by the configuration layer; they must not be
// changed without migrating persisted configurations.
//
// Mode semantics:
//   - ModeMax: larger measured values are better
//   - ModeMin: smaller measured values are better
//   - ModeMatch: values closest to the center of the bounds are better
//
// Usage example:
//
//	target, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 100))
type TargetMode string

const (
	// ModeMax optimizes for larger values.
	ModeMax TargetMode = "MAX"

	// ModeMin optimizes for smaller values.
	ModeMin TargetMode = "MIN"

	// ModeMatch optimizes for values close to the center of the bounds.
	ModeMatch TargetMode = "MATCH"
)

// TransformKind defines the bound transform applied to a target's raw values
// when the target has finite bounds.
//
// Compatibility with TargetMode is restricted (see ValidTransforms):
//   - ModeMax, ModeMin: TransformLinear (or TransformNone for a default)
//   - ModeMatch: TransformTriangular or TransformBell
//
// The string values are part of the stable wire contract.
type TransformKind string

const (
	// TransformNone leaves the transform unspecified. For targets with
	// finite bounds, construction replaces it with the default transform of
	// the target's mode (linear for MIN/MAX, triangular for MATCH). For
	// unbounded targets it is the only valid value.
	TransformNone TransformKind = "NONE"

	// TransformLinear maps the bounds linearly onto [0, 1], clipping values
	// outside the bounds. Direction follows the target mode.
	TransformLinear TransformKind = "LINEAR"

	// TransformTriangular maps values onto a piecewise-linear tent peaking
	// at the center of the bounds.
	TransformTriangular TransformKind = "TRIANGULAR"

	// TransformBell maps values onto a Gaussian bell centered between the
	// bounds.
	TransformBell TransformKind = "BELL"
)

// Scalarization defines the mechanism used to combine the weighted,
// normalized scores of all targets into a single desirability value.
//
// The string values are part of the stable wire contract.
type Scalarization string

const (
	// ScalarizationMean combines scores via the weighted arithmetic mean.
	ScalarizationMean Scalarization = "MEAN"

	// ScalarizationGeomMean combines scores via the weighted geometric
	// mean. Any score of exactly zero forces the combined value to zero.
	ScalarizationGeomMean Scalarization = "GEOM_MEAN"
)

// validTransforms maps each target mode to its compatible bound transforms.
// The first entry per mode is the default selected when a bounded target is
// constructed without an explicit transform.
var validTransforms = map[TargetMode][]TransformKind{
	ModeMax:   {TransformLinear},
	ModeMin:   {TransformLinear},
	ModeMatch: {TransformTriangular, TransformBell},
}

//////
// Exported functionalities.
//////

// ParseTargetMode converts a wire string into a TargetMode.
//
// Returns:
// - TargetMode: The parsed mode
// - error: ErrConfiguration if the string is not a known mode
func ParseTargetMode(s string) (TargetMode, error) {
	switch m := TargetMode(s); m {
	case ModeMax, ModeMin, ModeMatch:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown target mode %q", ErrConfiguration, s)
	}
}

// ParseTransformKind converts a wire string into a TransformKind. The empty
// string parses as TransformNone so that configurations may omit the field.
//
// Returns:
// - TransformKind: The parsed transform kind
// - error: ErrConfiguration if the string is not a known transform
func ParseTransformKind(s string) (TransformKind, error) {
	if s == "" {
		return TransformNone, nil
	}

	switch k := TransformKind(s); k {
	case TransformNone, TransformLinear, TransformTriangular, TransformBell:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown transform kind %q", ErrConfiguration, s)
	}
}

// ParseScalarization converts a wire string into a Scalarization. The empty
// string parses as ScalarizationGeomMean, the default mechanism.
//
// Returns:
// - Scalarization: The parsed scalarization mechanism
// - error: ErrConfiguration if the string is not a known mechanism
func ParseScalarization(s string) (Scalarization, error) {
	if s == "" {
		return ScalarizationGeomMean, nil
	}

	switch sc := Scalarization(s); sc {
	case ScalarizationMean, ScalarizationGeomMean:
		return sc, nil
	default:
		return "", fmt.Errorf("%w: unknown scalarization %q", ErrConfiguration, s)
	}
}

//////
// Methods.
//////

// String returns the wire representation of the mode.
func (m TargetMode) String() string { return string(m) }

// String returns the wire representation of the transform kind.
func (k TransformKind) String() string { return string(k) }

// String returns the wire representation of the scalarization mechanism.
func (s Scalarization) String() string { return string(s) }

// Validate checks that the mode is a member of the closed mode set.
func (m TargetMode) Validate() error {
	_, err := ParseTargetMode(string(m))

	return err
}

// Validate checks that the transform kind is a member of the closed set.
func (k TransformKind) Validate() error {
	_, err := ParseTransformKind(string(k))

	return err
}

// Validate checks that the scalarization is a member of the closed set.
func (s Scalarization) Validate() error {
	_, err := ParseScalarization(string(s))

	return err
}

// CompatibleWith reports whether the transform kind may be used with the
// given target mode. TransformNone is compatible with every mode because it
// stands for "use the mode's default".
func (k TransformKind) CompatibleWith(mode TargetMode) bool {
	if k == TransformNone {
		return true
	}

	for _, valid := range validTransforms[mode] {
		if k == valid {
			return true
		}
	}

	return false
}

// defaultTransform returns the transform selected for a bounded target of
// the given mode when none was specified.
func defaultTransform(mode TargetMode) TransformKind {
	return validTransforms[mode][0]
}
