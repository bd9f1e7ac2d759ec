package engine

import (
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// SourceKind tells item attributes apart from set bonuses
type SourceKind string

// Source kinds
const (
	SourceItem SourceKind = "item"
	SourceSet  SourceKind = "set"
)

// Source is where a candidate attribute comes from. Slot is only set for items.
type Source struct {
	Kind SourceKind
	Slot equipment.Slot
	Name string
}

// Contribution is one source's share of a buff field
type Contribution struct {
	Name  string     `json:"name"`
	Value float64    `json:"value"`
	Kind  SourceKind `json:"type"`
}

// Diagnostics lists, per field, the contributions in collection order
type Diagnostics map[entities.BuffKey][]Contribution

// Sum adds up the contributions of a field
func (d Diagnostics) Sum(k entities.BuffKey) float64 {
	var sum float64
	for _, c := range d[k] {
		sum += c.Value
	}
	return sum
}

// Result is the output of a buff or debuff computation
type Result struct {
	Buffs       entities.BuffVector
	Diagnostics Diagnostics
}

type candidate struct {
	source     Source
	conditions []equipment.Condition
	troops     []equipment.Troop
	kind       equipment.AttrKind
	value      float64
	rate       float64
}

type setTally struct {
	set   *equipment.Set
	count int
}

// ComputeBuffs evaluates every positive attribute of the build that applies in the scenario
func ComputeBuffs(g *entities.General, scenario entities.Scenario, starring entities.StarringMode) *Result {
	return compute(g, scenario, starring)
}

// ComputeDebuffs evaluates every negative attribute of the build. Conditions are not checked.
func ComputeDebuffs(g *entities.General, starring entities.StarringMode) *Result {
	return compute(g, entities.ScenarioDebuffing, starring)
}

func compute(g *entities.General, scenario entities.Scenario, starring entities.StarringMode) *Result {
	result := &Result{Diagnostics: make(Diagnostics)}
	if g == nil {
		return result
	}

	isDebuff := scenario == entities.ScenarioDebuffing
	for _, c := range collect(g) {
		if !c.kind.IsCombat() {
			continue
		}

		value := c.value
		switch {
		case value == 0:
			continue
		case isDebuff && value > 0:
			continue
		case !isDebuff && value < 0:
			continue
		}

		if !isDebuff && !conditionsMet(c.conditions, scenario, g.Animal()) {
			continue
		}

		if c.source.Kind == SourceItem && starring != entities.StarringMin {
			value += c.rate * float64(starCount(g, c.source.Slot, starring))
		}

		for _, troop := range c.troops {
			key, ok := entities.BuffKeyFor(troop, c.kind)
			if !ok {
				continue
			}
			result.Buffs.Add(key, value)
			result.Diagnostics[key] = append(result.Diagnostics[key], Contribution{
				Name:  c.source.Name,
				Value: value,
				Kind:  c.source.Kind,
			})
		}
	}
	return result
}

// collect lists item attributes in slot order followed by the active set bonuses
// in the order their sets were first seen.
func collect(g *entities.General) []candidate {
	var (
		candidates []candidate
		tallies    []*setTally
	)

	for i, item := range g.Equipments() {
		if item == nil {
			continue
		}
		slot, _ := equipment.SlotFromIndex(i)

		if item.Set != nil {
			var tally *setTally
			for _, t := range tallies {
				if t.set == item.Set {
					tally = t
					break
				}
			}
			if tally == nil {
				tally = &setTally{set: item.Set}
				tallies = append(tallies, tally)
			}
			tally.count++
		}

		for _, attr := range item.Attributes {
			candidates = append(candidates, candidate{
				source:     Source{Kind: SourceItem, Slot: slot, Name: item.Name},
				conditions: attr.Conditions,
				troops:     attr.Troops,
				kind:       attr.Kind,
				value:      attr.Value,
				rate:       attr.Rate,
			})
		}
	}

	for _, t := range tallies {
		for _, attr := range t.set.Attributes {
			if t.count < attr.Pieces {
				continue
			}
			candidates = append(candidates, candidate{
				source:     Source{Kind: SourceSet, Name: t.set.Name},
				conditions: attr.Conditions,
				troops:     attr.Troops,
				kind:       attr.Kind,
				value:      attr.Value,
			})
		}
	}
	return candidates
}

// conditionsMet applies the scenario gates to a buff's conditions
func conditionsMet(conds []equipment.Condition, scenario entities.Scenario, animal *equipment.Animal) bool {
	// A bare scenario only admits unconditional buffs, and buffs gated by the dragon alone.
	if len(conds) > 0 && scenario == entities.ScenarioAny &&
		!equipment.HasOnlyCondition(conds, equipment.ConditionWithDragon) {
		return false
	}

	inCity := scenario.IsInCity()
	if equipment.HasCondition(conds, equipment.ConditionInCity) && !inCity {
		return false
	}
	if equipment.HasCondition(conds, equipment.ConditionMarching) && inCity {
		return false
	}
	if equipment.HasCondition(conds, equipment.ConditionAttacking) && scenario != entities.ScenarioAttacking {
		return false
	}
	if equipment.HasCondition(conds, equipment.ConditionDefending) && scenario == entities.ScenarioAttacking {
		return false
	}
	if equipment.HasCondition(conds, equipment.ConditionWithDragon) && !animal.IsDragon() {
		return false
	}
	return true
}

// starCount is the star level used to scale an item attribute. Only equipped reads
// the build; every other mode except min assumes a fully upgraded item.
func starCount(g *entities.General, slot equipment.Slot, starring entities.StarringMode) int {
	if starring == entities.StarringEquipped {
		return entities.ClampStars(g.Stars(slot))
	}
	return entities.MaxStars
}
