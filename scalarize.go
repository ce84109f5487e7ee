package desirability

import (
	"fmt"
	"math"
)

//////
// Const, vars, types.
//////

// scalarizationFunc aggregates one row of per-target scores into a single
// value. The weights are normalized to sum to 1 before dispatch.
type scalarizationFunc func(row, weights []float64) float64

// scalarizationFuncs maps each scalarization mechanism to its row
// aggregator. The mechanism set is closed by design; adding a new one means
// adding an entry here rather than subclassing.
var scalarizationFuncs = map[Scalarization]scalarizationFunc{
	ScalarizationMean:     weightedMean,
	ScalarizationGeomMean: weightedGeomMean,
}

//////
// Exported functionalities.
//////

// Scalarize aggregates a 2-D matrix of per-target normalized scores into one
// value per row.
//
// Parameters:
//   - values: Matrix with one row per observation and one column per target;
//     entries are expected to live in [0, 1]
//   - scalarization: The aggregation mechanism
//   - weights: Column weights, normalized to sum to 1, one per column
//
// Returns:
// - []float64: One aggregated value per input row
// - error: ErrNotImplemented for an unknown mechanism; ErrConfiguration if a
//   row length does not match the weight count
//
// Behavior notes:
//   - Geometric mean: a value of exactly 0 in any column forces the row
//     result to exactly 0; ln(0) is never computed.
//   - NaN anywhere in a row yields NaN for that row, so missing measurements
//     stay visible in the output.
func Scalarize(values [][]float64, scalarization Scalarization, weights []float64) ([]float64, error) {
	combine, ok := scalarizationFuncs[scalarization]
	if !ok {
		return nil, fmt.Errorf(
			"%w: no scalarization mechanism defined for %q",
			ErrNotImplemented, scalarization,
		)
	}

	out := make([]float64, len(values))

	for r, row := range values {
		if len(row) != len(weights) {
			return nil, fmt.Errorf(
				"%w: row %d has %d values but %d weights were given",
				ErrConfiguration, r, len(row), len(weights),
			)
		}

		out[r] = combine(row, weights)
	}

	return out, nil
}

//////
// Helper functions.
//////

// weightedMean computes the weighted arithmetic mean of a row. The weights
// already sum to 1, so no denominator is needed.
func weightedMean(row, weights []float64) float64 {
	var sum float64

	for i, v := range row {
		sum += weights[i] * v
	}

	return sum
}

// weightedGeomMean computes the weighted geometric mean of a row via
// exp(sum(w_i * ln(x_i))).
//
// Edge cases, in order of precedence:
//   - NaN in any column: the row result is NaN (missing stays missing)
//   - 0 in any column: the row result is exactly 0, short-circuited before
//     any logarithm is taken
func weightedGeomMean(row, weights []float64) float64 {
	for _, v := range row {
		if math.IsNaN(v) {
			return math.NaN()
		}
	}

	var sum float64

	for i, v := range row {
		if v == 0 {
			return 0
		}

		sum += weights[i] * math.Log(v)
	}

	return math.Exp(sum)
}
