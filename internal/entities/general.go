// Package entities provides the core data structures of the general configurator.
package entities

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// MaxStars is the highest upgrade level of an item
const MaxStars = 5

// Scenario is the battle context used to gate conditional attributes
type Scenario string

// Scenarios. Debuffing is internal and selects the debuff sign gate.
const (
	ScenarioAny         Scenario = "any"
	ScenarioAttacking   Scenario = "attacking"
	ScenarioDefending   Scenario = "defending"
	ScenarioReinforcing Scenario = "reinforcing"
	ScenarioOccupying   Scenario = "occupying"
	ScenarioDebuffing   Scenario = "debuffing"
)

// String returns the string representation of the scenario
func (s Scenario) String() string {
	return string(s)
}

// IsValid checks if the scenario can be requested by callers
func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioAny, ScenarioAttacking, ScenarioDefending, ScenarioReinforcing, ScenarioOccupying:
		return true
	default:
		return false
	}
}

// IsInCity reports whether the scenario takes place inside a city
func (s Scenario) IsInCity() bool {
	return s == ScenarioDefending || s == ScenarioReinforcing
}

// AllScenarios returns the scenarios callers may request
func AllScenarios() []Scenario {
	return []Scenario{ScenarioAny, ScenarioAttacking, ScenarioDefending, ScenarioReinforcing, ScenarioOccupying}
}

// ScenarioFromString converts a string to a Scenario, defaulting an empty string to any
func ScenarioFromString(s string) (Scenario, bool) {
	if s == "" {
		return ScenarioAny, true
	}
	sc := Scenario(s)
	if sc.IsValid() {
		return sc, true
	}
	return "", false
}

// StarringMode selects which star level the engine assumes for each item
type StarringMode string

// Starring modes. StarringOmit only affects identity keys.
const (
	StarringOmit     StarringMode = ""
	StarringMin      StarringMode = "min"
	StarringEquipped StarringMode = "equipped"
	StarringMax      StarringMode = "max"
)

// String returns the string representation of the mode
func (m StarringMode) String() string {
	return string(m)
}

// IsValid checks if the mode is a computable starring mode
func (m StarringMode) IsValid() bool {
	switch m {
	case StarringMin, StarringEquipped, StarringMax:
		return true
	default:
		return false
	}
}

// AllStarringModes returns the computable starring modes
func AllStarringModes() []StarringMode {
	return []StarringMode{StarringMin, StarringEquipped, StarringMax}
}

// StarringModeFromString converts a string to a StarringMode, defaulting an empty string to equipped
func StarringModeFromString(s string) (StarringMode, bool) {
	if s == "" {
		return StarringEquipped, true
	}
	m := StarringMode(s)
	if m.IsValid() {
		return m, true
	}
	return "", false
}

// ClampStars bounds a star count to 0..MaxStars
func ClampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}

// ParseStars reads a star count from user input. Anything unparseable is 0.
func ParseStars(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// General is the mutable build state: one optional item and a star count per slot plus a companion
type General struct {
	items  [equipment.SlotCount]*equipment.Equipment
	stars  [equipment.SlotCount]int
	animal *equipment.Animal
}

// NewGeneral returns an empty build
func NewGeneral() *General {
	return &General{}
}

// SetEquipment stores the item and star count for a slot. Stars are not range checked.
// Unknown slots are ignored.
func (g *General) SetEquipment(slot equipment.Slot, item *equipment.Equipment, stars int) {
	i := slot.Index()
	if i < 0 {
		return
	}
	g.items[i] = item
	g.stars[i] = stars
}

// SetAnimal sets or clears the companion
func (g *General) SetAnimal(animal *equipment.Animal) {
	g.animal = animal
}

// Animal returns the companion, nil when none
func (g *General) Animal() *equipment.Animal {
	return g.animal
}

// Equipments returns the items in slot order, nil for empty slots
func (g *General) Equipments() [equipment.SlotCount]*equipment.Equipment {
	return g.items
}

// Equipment returns the item in a slot
func (g *General) Equipment(slot equipment.Slot) *equipment.Equipment {
	i := slot.Index()
	if i < 0 {
		return nil
	}
	return g.items[i]
}

// Stars returns the raw star count stored for a slot
func (g *General) Stars(slot equipment.Slot) int {
	i := slot.Index()
	if i < 0 {
		return 0
	}
	return g.stars[i]
}

// StarsAt returns the raw star count stored at a slot index
func (g *General) StarsAt(i int) int {
	if i < 0 || i >= equipment.SlotCount {
		return 0
	}
	return g.stars[i]
}

// IsEmpty reports whether no item is equipped
func (g *General) IsEmpty() bool {
	for _, item := range g.items {
		if item != nil {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Items and the companion are shared.
func (g *General) Clone() *General {
	c := *g
	return &c
}

// Reset empties the build
func (g *General) Reset() {
	*g = General{}
}

// StringKey builds the identity key of the build. Each slot contributes the item name
// or "null", suffixed by "(stars)" unless starring is StarringOmit, then "/".
// The companion name, or "null", is appended when includeAnimal is set.
func (g *General) StringKey(includeAnimal bool, starring StarringMode) string {
	var sb strings.Builder
	for i, item := range g.items {
		if item == nil {
			sb.WriteString("null/")
			continue
		}
		sb.WriteString(item.Name)

		stars := -1
		switch starring {
		case StarringMin:
			stars = 0
		case StarringMax:
			stars = MaxStars
		case StarringEquipped:
			stars = ClampStars(g.stars[i])
		}
		if stars >= 0 {
			sb.WriteByte('(')
			sb.WriteString(strconv.Itoa(stars))
			sb.WriteByte(')')
		}
		sb.WriteByte('/')
	}

	if includeAnimal {
		if g.animal != nil {
			sb.WriteString(g.animal.Name)
		} else {
			sb.WriteString("null")
		}
	}
	return sb.String()
}

// ComparisonKey is the key used to de-duplicate builds: items only, no stars, no companion
func (g *General) ComparisonKey() string {
	return g.StringKey(false, StarringOmit)
}
