package desirability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewTargetFromConfig(t *testing.T) {
	target, err := NewTargetFromConfig(TargetConfig{
		Name:  "yield",
		Mode:  "MAX",
		Lower: floatPtr(0),
		Upper: floatPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "yield", target.Name())
	assert.Equal(t, ModeMax, target.Mode())
	assert.Equal(t, TransformLinear, target.TransformKind())
}

func TestNewTargetFromConfigUnbounded(t *testing.T) {
	target, err := NewTargetFromConfig(TargetConfig{Name: "loss", Mode: "MIN"})
	require.NoError(t, err)

	assert.False(t, target.Bounds().IsBounded())
	assert.Equal(t, TransformNone, target.TransformKind())
}

func TestNewTargetFromConfigValidation(t *testing.T) {
	// Unknown enum strings are rejected by the syntactic layer before any
	// semantic construction runs.
	_, err := NewTargetFromConfig(TargetConfig{Name: "t", Mode: "MAXIMIZE"})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewTargetFromConfig(TargetConfig{
		Name:      "t",
		Mode:      "MAX",
		Lower:     floatPtr(0),
		Upper:     floatPtr(10),
		Transform: "SIGMOID",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	// Missing required fields.
	_, err = NewTargetFromConfig(TargetConfig{Mode: "MAX"})
	assert.ErrorIs(t, err, ErrConfiguration)

	// Half-bounded configuration.
	_, err = NewTargetFromConfig(TargetConfig{Name: "t", Mode: "MAX", Lower: floatPtr(0)})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTargetConfigRoundTrip(t *testing.T) {
	original, err := NewNumericalTarget(
		"temp", ModeMatch, WithBounds(95, 105), WithTransform(TransformBell),
	)
	require.NoError(t, err)

	data, err := original.Config().JSON()
	require.NoError(t, err)

	restored, err := NewTargetFromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, original, restored)
}

func TestTargetConfigWireValues(t *testing.T) {
	target, err := NewNumericalTarget("yield", ModeMax, WithBounds(0, 10))
	require.NoError(t, err)

	data, err := target.Config().JSON()
	require.NoError(t, err)

	// Field names and enum values are the stable wire contract.
	assert.JSONEq(
		t,
		`{"name":"yield","mode":"MAX","lower":0,"upper":10,"transform":"LINEAR"}`,
		string(data),
	)
}

func TestObjectiveConfigRoundTrip(t *testing.T) {
	config := ObjectiveConfig{
		Type:          "DESIRABILITY",
		Scalarization: "MEAN",
		Weights:       []float64{1, 3},
		Targets: []TargetConfig{
			{Name: "yield", Mode: "MAX", Lower: floatPtr(0), Upper: floatPtr(10)},
			{Name: "impurity", Mode: "MIN", Lower: floatPtr(0), Upper: floatPtr(100)},
		},
	}

	objective, err := NewObjectiveFromConfig(config)
	require.NoError(t, err)

	desirability, ok := objective.(*DesirabilityObjective)
	require.True(t, ok)

	// Export, serialize, restore.
	data, err := desirability.Config().JSON()
	require.NoError(t, err)

	restored, err := NewObjectiveFromJSON(data)
	require.NoError(t, err)

	// The restored objective must transform identically.
	table, err := NewDataTable(
		Column{Name: "yield", Values: []float64{10}},
		Column{Name: "impurity", Values: []float64{0}},
	)
	require.NoError(t, err)

	first, err := objective.Transform(table)
	require.NoError(t, err)
	second, err := restored.Transform(table)
	require.NoError(t, err)

	firstValues, err := first.Column(DesirabilityColumn)
	require.NoError(t, err)
	secondValues, err := second.Column(DesirabilityColumn)
	require.NoError(t, err)

	assert.Equal(t, firstValues, secondValues)
	assert.Equal(t, 1.0, firstValues[0])
}

func TestObjectiveConfigNormalizesWeights(t *testing.T) {
	objective, err := NewObjectiveFromConfig(ObjectiveConfig{
		Type:    "DESIRABILITY",
		Weights: []float64{1, 3},
		Targets: []TargetConfig{
			{Name: "a", Mode: "MAX", Lower: floatPtr(0), Upper: floatPtr(1)},
			{Name: "b", Mode: "MIN", Lower: floatPtr(0), Upper: floatPtr(1)},
		},
	})
	require.NoError(t, err)

	desirability, ok := objective.(*DesirabilityObjective)
	require.True(t, ok)

	assert.Equal(t, []float64{0.25, 0.75}, desirability.Weights())
	assert.Equal(t, ScalarizationGeomMean, desirability.Scalarization())
}

func TestObjectiveConfigSingle(t *testing.T) {
	objective, err := NewObjectiveFromConfig(ObjectiveConfig{
		Type:    "SINGLE",
		Targets: []TargetConfig{{Name: "loss", Mode: "MIN"}},
	})
	require.NoError(t, err)

	single, ok := objective.(*SingleTargetObjective)
	require.True(t, ok)

	config := single.Config()
	assert.Equal(t, "SINGLE", config.Type)
	require.Len(t, config.Targets, 1)
	assert.Equal(t, "loss", config.Targets[0].Name)
	assert.Nil(t, config.Targets[0].Lower)
	assert.Nil(t, config.Targets[0].Upper)
}

func TestObjectiveConfigValidation(t *testing.T) {
	// Unknown type discriminator.
	_, err := NewObjectiveFromConfig(ObjectiveConfig{
		Type:    "PARETO",
		Targets: []TargetConfig{{Name: "a", Mode: "MAX"}},
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	// SINGLE with more than one target.
	_, err = NewObjectiveFromConfig(ObjectiveConfig{
		Type: "SINGLE",
		Targets: []TargetConfig{
			{Name: "a", Mode: "MAX"},
			{Name: "b", Mode: "MAX"},
		},
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	// No targets at all.
	_, err = NewObjectiveFromConfig(ObjectiveConfig{Type: "DESIRABILITY"})
	assert.ErrorIs(t, err, ErrConfiguration)

	// Unknown scalarization string.
	_, err = NewObjectiveFromConfig(ObjectiveConfig{
		Type:          "DESIRABILITY",
		Scalarization: "MEDIAN",
		Targets: []TargetConfig{
			{Name: "a", Mode: "MAX", Lower: floatPtr(0), Upper: floatPtr(1)},
			{Name: "b", Mode: "MIN", Lower: floatPtr(0), Upper: floatPtr(1)},
		},
	})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewObjectiveFromJSONMalformed(t *testing.T) {
	_, err := NewObjectiveFromJSON([]byte(`{"type":`))

	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTargetConfigOmitsInfiniteBounds(t *testing.T) {
	target, err := NewNumericalTarget("free", ModeMax)
	require.NoError(t, err)

	config := target.Config()
	assert.Nil(t, config.Lower)
	assert.Nil(t, config.Upper)

	data, err := json.Marshal(config)
	require.NoError(t, err)

	// Infinite bounds never reach the wire; JSON has no representation for
	// them.
	assert.JSONEq(t, `{"name":"free","mode":"MAX"}`, string(data))
}
