package desirability

import "fmt"

//////
// Const, vars, types.
//////

// DesirabilityColumn is the name of the single column produced by
// DesirabilityObjective.Transform. Part of the stable contract with the
// optimizer layer that consumes the result.
const DesirabilityColumn = "Desirability"

// Objective is the top-level contract consumed by the optimizer: it turns a
// table of raw measurements into a derived table whose values the optimizer
// treats as the fitness to maximize. Implementations are immutable and their
// Transform methods are pure, so a single instance may serve concurrent
// callers without coordination.
type Objective interface {
	// Targets returns the targets considered by the objective.
	Targets() []*NumericalTarget

	// Transform converts raw measurements into the objective's
	// computational representation. The input table must contain one column
	// per target; extra columns are ignored. The input is never modified.
	Transform(data *DataTable) (*DataTable, error)
}

// DesirabilityObjective scalarizes multiple targets into a single
// desirability value per observation: each target's column is normalized
// into [0, 1] by the target's own transform, and the resulting columns are
// combined via the configured scalarization mechanism under the objective's
// weights.
//
// All construction-time invariants are validated eagerly in
// NewDesirabilityObjective; Transform performs no validation beyond
// requiring the target columns to exist in the input.
type DesirabilityObjective struct {
	// targets are the member targets, all normalized, with unique names.
	targets []*NumericalTarget

	// weights balance the targets; strictly positive, summing to 1.
	weights []float64

	// scalarization combines the weighted target scores per row.
	scalarization Scalarization
}

// SingleTargetObjective adapts exactly one target to the Objective contract.
// Its Transform returns the target's transformed column under the target's
// own name; no weighting or scalarization is involved.
type SingleTargetObjective struct {
	target *NumericalTarget
}

//////
// Exported functionalities.
//////

// NewDesirabilityObjective creates a validated, immutable desirability
// objective.
//
// Parameters:
//   - scalarization: The mechanism combining target scores per row; the
//     empty string selects ScalarizationGeomMean
//   - weights: One weight per target, strictly positive; they are
//     normalized to sum to 1. A nil slice means all targets are equally
//     important
//   - targets: Two or more targets with unique names, each normalized
//     (finite bounds plus a bound transform)
//
// Returns:
// - *DesirabilityObjective: The constructed objective
// - error: ErrConfiguration for any invalid combination
//
// Validation rules, all enforced here so Transform can never fail
// validation later:
//   - at least 2 targets, none nil, names unique
//   - every target normalized: the desirability scheme aggregates columns
//     on a common bounded scale, so unbounded raw differences are not
//     combinable
//   - weight count matches target count; every weight strictly positive
//
// Usage example:
//
//	objective, err := NewDesirabilityObjective(
//	    ScalarizationGeomMean,
//	    nil, // equal weights
//	    yield, impurity,
//	)
func NewDesirabilityObjective(
	scalarization Scalarization,
	weights []float64,
	targets ...*NumericalTarget,
) (*DesirabilityObjective, error) {
	scalarization, err := ParseScalarization(string(scalarization))
	if err != nil {
		return nil, err
	}

	if len(targets) < 2 {
		return nil, fmt.Errorf(
			"%w: a desirability objective requires at least 2 targets, got %d",
			ErrConfiguration, len(targets),
		)
	}

	seen := make(map[string]struct{}, len(targets))

	for i, target := range targets {
		if target == nil {
			return nil, fmt.Errorf("%w: target at position %d is nil", ErrConfiguration, i)
		}

		if _, ok := seen[target.Name()]; ok {
			return nil, fmt.Errorf(
				"%w: duplicate target name %q", ErrConfiguration, target.Name(),
			)
		}

		seen[target.Name()] = struct{}{}

		if !target.IsNormalized() {
			return nil, fmt.Errorf(
				"%w: target %q is not normalized; all targets must have finite "+
					"bounds and a bound transform",
				ErrConfiguration, target.Name(),
			)
		}
	}

	var normalized []float64

	if weights == nil {
		normalized = uniformWeights(len(targets))
	} else {
		if len(weights) != len(targets) {
			return nil, fmt.Errorf(
				"%w: %d weights were specified for %d targets; there must be one per target",
				ErrConfiguration, len(weights), len(targets),
			)
		}

		if normalized, err = NormalizeWeights(weights); err != nil {
			return nil, err
		}
	}

	return &DesirabilityObjective{
		targets:       append([]*NumericalTarget(nil), targets...),
		weights:       normalized,
		scalarization: scalarization,
	}, nil
}

// NewSingleTargetObjective creates an objective around exactly one target.
//
// Returns:
// - *SingleTargetObjective: The constructed objective
// - error: ErrConfiguration if the target is nil
func NewSingleTargetObjective(target *NumericalTarget) (*SingleTargetObjective, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: a target is required", ErrConfiguration)
	}

	return &SingleTargetObjective{target: target}, nil
}

//////
// Methods.
//////

// Targets returns the objective's targets in their configured order.
func (o *DesirabilityObjective) Targets() []*NumericalTarget {
	return append([]*NumericalTarget(nil), o.targets...)
}

// Weights returns the objective's normalized weights, one per target.
func (o *DesirabilityObjective) Weights() []float64 {
	return append([]float64(nil), o.weights...)
}

// Scalarization returns the objective's scalarization mechanism.
func (o *DesirabilityObjective) Scalarization() Scalarization {
	return o.scalarization
}

// Transform converts a table of raw measurements into a single-column table
// of desirability values.
//
// Steps:
//  1. Select the columns named by the objective's targets; other columns
//     are ignored and need not be absent
//  2. Apply each target's Transform to its own column, producing one
//     normalized [0, 1] column per target with row order preserved
//  3. Scalarize the resulting matrix with the objective's weights
//  4. Return a table with the single column "Desirability", indexed
//     identically to the input
//
// Returns:
// - *DataTable: A new single-column table; the input is never modified
// - error: ErrMissingColumn if a target column is absent from the input
//
// The operation is deterministic: transforming the same input twice yields
// bit-identical results.
func (o *DesirabilityObjective) Transform(data *DataTable) (*DataTable, error) {
	columns := make([][]float64, len(o.targets))

	for i, target := range o.targets {
		raw, err := data.Column(target.Name())
		if err != nil {
			return nil, err
		}

		columns[i] = target.Transform(raw)
	}

	// Reassemble the per-target columns into rows for scalarization.
	rows := make([][]float64, data.Len())

	for r := range rows {
		row := make([]float64, len(columns))

		for c := range columns {
			row[c] = columns[c][r]
		}

		rows[r] = row
	}

	values, err := Scalarize(rows, o.scalarization, o.weights)
	if err != nil {
		return nil, err
	}

	return NewDataTableWithIndex(data.Index(), Column{
		Name:   DesirabilityColumn,
		Values: values,
	})
}

// Targets returns the objective's single target.
func (o *SingleTargetObjective) Targets() []*NumericalTarget {
	return []*NumericalTarget{o.target}
}

// Transform converts a table of raw measurements into a single-column table
// holding the target's transformed values under the target's name.
//
// Returns:
// - *DataTable: A new single-column table indexed identically to the input
// - error: ErrMissingColumn if the target column is absent from the input
func (o *SingleTargetObjective) Transform(data *DataTable) (*DataTable, error) {
	raw, err := data.Column(o.target.Name())
	if err != nil {
		return nil, err
	}

	return NewDataTableWithIndex(data.Index(), Column{
		Name:   o.target.Name(),
		Values: o.target.Transform(raw),
	})
}
