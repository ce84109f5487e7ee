package desirability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumericalTargetDefaults(t *testing.T) {
	target, err := NewNumericalTarget("yield", ModeMax)
	require.NoError(t, err)

	assert.Equal(t, "yield", target.Name())
	assert.Equal(t, ModeMax, target.Mode())
	assert.False(t, target.Bounds().IsBounded())
	assert.Equal(t, TransformNone, target.TransformKind())
	assert.False(t, target.IsNormalized())
}

func TestNewNumericalTargetDefaultTransformSelection(t *testing.T) {
	// A bounded target without an explicit transform gets the first valid
	// transform for its mode.
	target, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 10))
	require.NoError(t, err)
	assert.Equal(t, TransformLinear, target.TransformKind())
	assert.True(t, target.IsNormalized())

	target, err = NewNumericalTarget("temp", ModeMatch, WithBounds(0, 10))
	require.NoError(t, err)
	assert.Equal(t, TransformTriangular, target.TransformKind())
}

func TestNewNumericalTargetValidation(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (*NumericalTarget, error)
	}{
		{
			"empty name",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("", ModeMax)
			},
		},
		{
			"unknown mode",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", TargetMode("MAXIMIZE"))
			},
		},
		{
			"half-bounded",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", ModeMax, WithBounds(0, math.Inf(1)))
			},
		},
		{
			"degenerate bounds",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", ModeMax, WithBounds(5, 5))
			},
		},
		{
			"inverted bounds",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", ModeMax, WithBounds(10, 0))
			},
		},
		{
			"match without bounds",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", ModeMatch)
			},
		},
		{
			"triangular with max mode",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget(
					"t", ModeMax, WithBounds(0, 10), WithTransform(TransformTriangular),
				)
			},
		},
		{
			"linear with match mode",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget(
					"t", ModeMatch, WithBounds(0, 10), WithTransform(TransformLinear),
				)
			},
		},
		{
			"transform without bounds",
			func() (*NumericalTarget, error) {
				return NewNumericalTarget("t", ModeMin, WithTransform(TransformLinear))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()

			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestTargetTransformBoundedMax(t *testing.T) {
	target, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 10))
	require.NoError(t, err)

	out := target.Transform([]float64{0, 5, 10, 15})

	assert.Equal(t, []float64{0, 0.5, 1, 1}, out)
}

func TestTargetTransformBoundedMin(t *testing.T) {
	target, err := NewNumericalTarget("impurity", ModeMin, WithBounds(0, 100))
	require.NoError(t, err)

	out := target.Transform([]float64{0, 50, 100})

	assert.Equal(t, []float64{1, 0.5, 0}, out)
}

func TestTargetTransformMatchBell(t *testing.T) {
	target, err := NewNumericalTarget(
		"temp", ModeMatch, WithBounds(0, 100), WithTransform(TransformBell),
	)
	require.NoError(t, err)

	out := target.Transform([]float64{0, 50, 100})

	assert.InDelta(t, math.Exp(-4.5), out[0], 1e-12)
	assert.Equal(t, 1.0, out[1])
	assert.InDelta(t, math.Exp(-4.5), out[2], 1e-12)
}

func TestTargetTransformUnbounded(t *testing.T) {
	// MAX passes through unchanged, MIN negates so that "larger is better"
	// holds uniformly downstream.
	maxTarget, err := NewNumericalTarget("up", ModeMax)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 2.5}, maxTarget.Transform([]float64{-1, 0, 2.5}))

	minTarget, err := NewNumericalTarget("down", ModeMin)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -2.5}, minTarget.Transform([]float64{-1, 0, 2.5}))
}

func TestTargetTransformPropagatesNaN(t *testing.T) {
	target, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 10))
	require.NoError(t, err)

	out := target.Transform([]float64{5, math.NaN()})

	assert.Equal(t, 0.5, out[0])
	assert.True(t, math.IsNaN(out[1]))
}

func TestTargetTransformDoesNotModifyInput(t *testing.T) {
	target, err := NewNumericalTarget("down", ModeMin)
	require.NoError(t, err)

	in := []float64{1, 2}
	target.Transform(in)

	assert.Equal(t, []float64{1, 2}, in)
}
