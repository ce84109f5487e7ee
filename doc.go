// Package desirability turns raw experimental measurements into a single
// scalar objective for sequential (Bayesian) experimental-design
// optimization. Multiple measured targets, each with its own optimization
// direction and bounds, are normalized per target, weighted, and scalarized
// into one well-behaved desirability value per observation that a
// downstream acquisition-optimization routine can maximize.
//
// # Features
//
// The package includes the following key features:
//
//   - Targets: Measured quantities with a direction (maximize, minimize,
//     match a set point) and optional bounds, validated eagerly at
//     construction
//   - Bound Transforms: Linear, triangular, and bell-shaped desirability
//     curves mapping a raw value range into [0, 1], generic over float
//     types
//   - Weighted Scalarization: Weighted geometric or arithmetic mean
//     aggregation of per-target scores into one value per observation
//   - Wire Contract: Structured key-value (JSON) construction and export of
//     targets and objectives with stable field names and enum values
//   - Purely Functional Core: Immutable objects and deterministic
//     transforms, safe for concurrent callers without coordination
//   - NaN Propagation: Missing measurements flow through every stage
//     unchanged instead of being dropped or defaulted
//
// # Usage
//
// Define one target per measured quantity, combine them into an objective,
// and hand batches of measurements to Transform:
//
//	yield, _ := desirability.NewNumericalTarget(
//	    "yield", desirability.ModeMax, desirability.WithBounds(0, 10),
//	)
//	impurity, _ := desirability.NewNumericalTarget(
//	    "impurity", desirability.ModeMin, desirability.WithBounds(0, 100),
//	)
//
//	objective, _ := desirability.NewDesirabilityObjective(
//	    desirability.ScalarizationGeomMean,
//	    nil, // equal weights
//	    yield, impurity,
//	)
//
//	measurements, _ := desirability.NewDataTable(
//	    desirability.Column{Name: "yield", Values: []float64{5}},
//	    desirability.Column{Name: "impurity", Values: []float64{50}},
//	)
//
//	result, _ := objective.Transform(measurements)
//	scores, _ := result.Column(desirability.DesirabilityColumn)
//	// scores == []float64{0.5}
//
// The optimizer layer consuming the result treats the "Desirability" column
// as the fitness to maximize; it never needs access to target or weight
// internals.
//
// # Validation
//
// All configuration errors surface at construction time: invalid
// mode/bounds/transform combinations, non-positive weights, weight-count
// mismatches, fewer than two targets, or unbounded targets in a scheme that
// requires bounds. A successfully constructed objective can only fail at
// transform time when the input table lacks a required target column.
//
// # Thread Safety
//
// The core is purely functional: targets, objectives, and tables are
// immutable after construction, and Transform allocates fresh output.
// A single instance may serve any number of concurrent callers.
//
// # Scope
//
// Candidate generation, surrogate modeling, and acquisition optimization
// are external collaborators; this package only defines how raw
// measurements become the scalar fitness those components consume.
package desirability
