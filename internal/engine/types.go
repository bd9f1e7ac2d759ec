package engine

import (
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// RefineOptions selects the troop type and slider value of the refine estimate
type RefineOptions struct {
	Troop   equipment.Troop
	Percent int
}

// EvaluateInput is a build and the assumptions to evaluate it under
type EvaluateInput struct {
	General     *entities.General
	Scenario    entities.Scenario
	Starring    entities.StarringMode
	IncludeBase bool
	Refine      *RefineOptions
	// ExcludedTroops are left out of Totals
	ExcludedTroops []equipment.Troop
}

// EvaluateOutput holds every computed figure of a build
type EvaluateOutput struct {
	Buffs     *Result
	Debuffs   *Result
	Materials Materials
	// Refine is zero unless refine options were given
	Refine entities.BuffVector
	// Total is buffs plus refine
	Total  entities.BuffVector
	Totals Totals
	Key    string
}
