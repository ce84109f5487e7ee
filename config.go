package desirability

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

//////
// Const, vars, types.
//////

// Objective type discriminators used on the wire.
const (
	// ObjectiveTypeSingle identifies a single-target objective.
	ObjectiveTypeSingle = "SINGLE"

	// ObjectiveTypeDesirability identifies a desirability objective.
	ObjectiveTypeDesirability = "DESIRABILITY"
)

// validate performs the syntactic layer of configuration checking (required
// fields, enum membership). Semantic rules (mode/bounds/transform
// compatibility, weight positivity) stay in the constructors so that they
// hold no matter how an object is built.
var validate = validator.New(validator.WithRequiredStructEnabled())

// TargetConfig is the structured key-value representation of a target, used
// to persist and restore configurations. Field names and enum string values
// are the stable wire contract other tooling depends on.
type TargetConfig struct {
	// Name identifies the target.
	Name string `json:"name" validate:"required"`

	// Mode is the optimization direction: "MIN", "MAX", or "MATCH".
	Mode string `json:"mode" validate:"required,oneof=MIN MAX MATCH"`

	// Lower is the lower bound; nil means unbounded below.
	Lower *float64 `json:"lower,omitempty"`

	// Upper is the upper bound; nil means unbounded above.
	Upper *float64 `json:"upper,omitempty"`

	// Transform is the bound transform: "LINEAR", "TRIANGULAR", or "BELL".
	// Empty lets construction pick the default for the mode.
	Transform string `json:"transform,omitempty" validate:"omitempty,oneof=NONE LINEAR TRIANGULAR BELL"`
}

// ObjectiveConfig is the structured key-value representation of an
// objective.
type ObjectiveConfig struct {
	// Type discriminates the objective kind: "SINGLE" or "DESIRABILITY".
	Type string `json:"type" validate:"required,oneof=SINGLE DESIRABILITY"`

	// Scalarization is the combination mechanism: "MEAN" or "GEOM_MEAN".
	// Empty selects "GEOM_MEAN". Ignored for single-target objectives.
	Scalarization string `json:"scalarization,omitempty" validate:"omitempty,oneof=MEAN GEOM_MEAN"`

	// Weights balance the targets, one per target; nil means equal
	// importance. Ignored for single-target objectives.
	Weights []float64 `json:"weights,omitempty"`

	// Targets are the member target configurations.
	Targets []TargetConfig `json:"targets" validate:"required,min=1,dive"`
}

//////
// Exported functionalities.
//////

// NewTargetFromConfig constructs a validated target from its wire
// representation.
//
// Returns:
// - *NumericalTarget: The constructed target
// - error: ErrConfiguration for syntactic or semantic failures
func NewTargetFromConfig(config TargetConfig) (*NumericalTarget, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	mode, err := ParseTargetMode(config.Mode)
	if err != nil {
		return nil, err
	}

	transform, err := ParseTransformKind(config.Transform)
	if err != nil {
		return nil, err
	}

	opts := []TargetOption{}

	if config.Lower != nil || config.Upper != nil {
		lower := math.Inf(-1)
		if config.Lower != nil {
			lower = *config.Lower
		}

		upper := math.Inf(1)
		if config.Upper != nil {
			upper = *config.Upper
		}

		opts = append(opts, WithBounds(lower, upper))
	}

	if transform != TransformNone {
		opts = append(opts, WithTransform(transform))
	}

	return NewNumericalTarget(config.Name, mode, opts...)
}

// NewTargetFromJSON constructs a validated target from its JSON
// representation.
func NewTargetFromJSON(data []byte) (*NumericalTarget, error) {
	var config TargetConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return NewTargetFromConfig(config)
}

// NewObjectiveFromConfig constructs a validated objective from its wire
// representation. The concrete type is selected by the Type discriminator.
//
// Returns:
// - Objective: A *SingleTargetObjective or *DesirabilityObjective
// - error: ErrConfiguration for syntactic or semantic failures
func NewObjectiveFromConfig(config ObjectiveConfig) (Objective, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	targets := make([]*NumericalTarget, len(config.Targets))

	for i, tc := range config.Targets {
		target, err := NewTargetFromConfig(tc)
		if err != nil {
			return nil, err
		}

		targets[i] = target
	}

	switch config.Type {
	case ObjectiveTypeSingle:
		if len(targets) != 1 {
			return nil, fmt.Errorf(
				"%w: objective type %q requires exactly one target, got %d",
				ErrConfiguration, ObjectiveTypeSingle, len(targets),
			)
		}

		return NewSingleTargetObjective(targets[0])
	default:
		scalarization, err := ParseScalarization(config.Scalarization)
		if err != nil {
			return nil, err
		}

		return NewDesirabilityObjective(scalarization, config.Weights, targets...)
	}
}

// NewObjectiveFromJSON constructs a validated objective from its JSON
// representation.
func NewObjectiveFromJSON(data []byte) (Objective, error) {
	var config ObjectiveConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return NewObjectiveFromConfig(config)
}

//////
// Methods.
//////

// Validate checks the syntactic layer of the target configuration.
func (c TargetConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return nil
}

// Validate checks the syntactic layer of the objective configuration.
func (c ObjectiveConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return nil
}

// JSON returns the JSON representation of the target configuration.
func (c TargetConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// JSON returns the JSON representation of the objective configuration.
func (c ObjectiveConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// Config exports the target's wire representation. Infinite bounds are
// exported as nil pointers; a transform selected by default is exported
// explicitly so that the configuration is self-contained.
func (t *NumericalTarget) Config() TargetConfig {
	config := TargetConfig{
		Name: t.name,
		Mode: t.mode.String(),
	}

	if t.bounds.IsFinite() {
		lower := t.bounds.Lower()
		upper := t.bounds.Upper()
		config.Lower = &lower
		config.Upper = &upper
	}

	if t.transform != TransformNone {
		config.Transform = t.transform.String()
	}

	return config
}

// Config exports the objective's wire representation. Weights are exported
// in their normalized form, matching the values the objective computes
// with.
func (o *DesirabilityObjective) Config() ObjectiveConfig {
	targets := make([]TargetConfig, len(o.targets))

	for i, target := range o.targets {
		targets[i] = target.Config()
	}

	return ObjectiveConfig{
		Type:          ObjectiveTypeDesirability,
		Scalarization: o.scalarization.String(),
		Weights:       o.Weights(),
		Targets:       targets,
	}
}

// Config exports the objective's wire representation.
func (o *SingleTargetObjective) Config() ObjectiveConfig {
	return ObjectiveConfig{
		Type:    ObjectiveTypeSingle,
		Targets: []TargetConfig{o.target.Config()},
	}
}
