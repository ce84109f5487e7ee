package desirability

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

//////
// Exported functionalities.
//////

// NormalizeWeights rescales a collection of weights so that they sum to 1,
// preserving the relative ratios between entries.
//
// Type Parameter:
//   - T: The numeric type of the raw weights (any integer or float type)
//
// Parameters:
// - weights: The un-normalized weights; every entry must be strictly positive
//
// Returns:
// - []float64: A new slice with entries summing to 1 (up to rounding)
// - error: ErrConfiguration if the slice is empty or any entry is not
//   strictly positive (zero, negative, or NaN)
//
// Usage example:
//
//	normalized, err := NormalizeWeights([]int{1, 3})
//	// normalized == []float64{0.25, 0.75}
func NormalizeWeights[T constraints.Integer | constraints.Float](weights []T) ([]float64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: at least one weight is required", ErrConfiguration)
	}

	out := make([]float64, len(weights))

	var sum float64

	for i, w := range weights {
		v := float64(w)

		if math.IsNaN(v) || v <= 0 {
			return nil, fmt.Errorf(
				"%w: all weights must be strictly positive, got %v at position %d",
				ErrConfiguration, v, i,
			)
		}

		out[i] = v
		sum += v
	}

	for i := range out {
		out[i] /= sum
	}

	return out, nil
}

//////
// Helper functions.
//////

// uniformWeights returns n equal weights of 1/n. Used as the default when an
// objective is constructed without explicit weights.
func uniformWeights(n int) []float64 {
	out := make([]float64, n)

	for i := range out {
		out[i] = 1 / float64(n)
	}

	return out
}
