package engine

import (
	"context"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

type engine struct {
	excludedTroops []equipment.Troop
}

// Config configures the engine
type Config struct {
	// ExcludedTroops are left out of the per-kind totals unless a request names its own
	ExcludedTroops []equipment.Troop
}

// Validate ensures the configuration is usable
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	for _, t := range cfg.ExcludedTroops {
		if !t.IsValid() {
			vb.Fieldf("ExcludedTroops", "is not recognized: %s", t)
		}
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{excludedTroops: cfg.ExcludedTroops}, nil
}

// Evaluate computes buffs, debuffs, materials and the optional refine estimate
func (e *engine) Evaluate(_ context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil || input.General == nil {
		return nil, errors.InvalidArgument("general is required")
	}
	if !input.Scenario.IsValid() {
		return nil, errors.InvalidArgumentf("unknown scenario: %s", input.Scenario)
	}
	if !input.Starring.IsValid() {
		return nil, errors.InvalidArgumentf("unknown starring mode: %s", input.Starring)
	}

	out := &EvaluateOutput{
		Buffs:     ComputeBuffs(input.General, input.Scenario, input.Starring),
		Debuffs:   ComputeDebuffs(input.General, input.Starring),
		Materials: ComputeMaterials(input.General, input.IncludeBase),
		Key:       input.General.StringKey(true, input.Starring),
	}

	if input.Refine != nil {
		if !input.Refine.Troop.IsValid() {
			return nil, errors.InvalidArgumentf("unknown refine troop: %s", input.Refine.Troop)
		}
		out.Refine = RefineBuffs(input.General, input.Refine.Troop, input.Refine.Percent)
	}

	out.Total = out.Buffs.Buffs.Merge(out.Refine)
	excluded := input.ExcludedTroops
	if len(excluded) == 0 {
		excluded = e.excludedTroops
	}
	out.Totals = TotalsOf(out.Total, excluded...)
	return out, nil
}
