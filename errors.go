package desirability

import "errors"

//////
// Error taxonomy.
//////

// Package errors follow a small, closed taxonomy. Every error returned by the
// package wraps exactly one of these sentinels, so callers can classify
// failures with errors.Is without parsing messages:
//
//   - ErrConfiguration: an invalid mode/bounds/transform/weight combination,
//     detected eagerly at construction time. A successfully constructed
//     Target or Objective can never fail validation later.
//   - ErrNotImplemented: a scalarization mechanism with no defined
//     implementation was requested.
//   - ErrMissingColumn: the input table handed to Transform lacks a column
//     required by one of the objective's targets.
//
// There is no retry semantic: all operations are deterministic pure
// computations, so retrying without changing the input is meaningless.
// Callers are expected to treat ErrConfiguration as fatal at setup time and
// ErrMissingColumn as fatal per call.
var (
	// ErrConfiguration indicates an invalid construction-time configuration.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrNotImplemented indicates a requested mechanism has no implementation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingColumn indicates a required column is absent from the input.
	ErrMissingColumn = errors.New("missing column")
)
