package equipment

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	// CivilizationOrder is the first set order of civilization sets
	CivilizationOrder = 50
	// NonBaseTierMaxOrder is the last set order of the non-base tier
	NonBaseTierMaxOrder = 40
)

// Set is a named family of items whose pieces unlock set-wide bonuses
type Set struct {
	Name       string
	Order      int
	Attributes []SetAttribute
}

// IsCivilization reports whether the set is a single-piece-per-slot civilization set
func (s *Set) IsCivilization() bool {
	return s != nil && s.Order >= CivilizationOrder
}

// IsNonBaseTier reports whether the set belongs to the non-base tier
func (s *Set) IsNonBaseTier() bool {
	return s != nil && s.Order <= NonBaseTierMaxOrder
}

// SetAttribute is a set bonus, active once Pieces items of the set are equipped
type SetAttribute struct {
	Pieces     int
	Conditions []Condition
	Troops     []Troop
	Kind       AttrKind
	Value      float64
}

// ItemAttribute is a modifier carried by a single item
type ItemAttribute struct {
	Conditions []Condition
	Troops     []Troop
	Kind       AttrKind
	// Value applies at zero stars
	Value float64
	// Rate is added once per star
	Rate float64
}

// HasOnlyCondition reports whether c is the sole condition of the attribute
func HasOnlyCondition(conds []Condition, c Condition) bool {
	return len(conds) == 1 && conds[0] == c
}

// HasCondition reports whether c appears in conds
func HasCondition(conds []Condition, c Condition) bool {
	for _, v := range conds {
		if v == c {
			return true
		}
	}
	return false
}

// MaterialCost is the quantity of one material needed to craft an item
type MaterialCost struct {
	Name     string `json:"name" yaml:"name"`
	Level    int    `json:"level" yaml:"level"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// CraftCondition describes where and from what an item is crafted
type CraftCondition struct {
	Building Building
	Level    int
	Scroll   string
	// Base is the item this one is upgraded from, nil when crafted from scratch
	Base *Equipment
}

// Equipment is a catalog item. Items are immutable once the catalog is loaded.
type Equipment struct {
	Name       string
	Set        *Set
	Slot       Slot
	Condition  CraftCondition
	Cost       []MaterialCost
	Attributes []ItemAttribute
	Verified   bool
}

var _ core.Entity = (*Equipment)(nil)

// GetID returns the item name, which is unique within a catalog
func (e *Equipment) GetID() string {
	return e.Name
}

// GetType returns the entity type for rpg-toolkit
func (e *Equipment) GetType() string {
	return "equipment"
}

// SetName returns the name of the item's set, empty when unresolved
func (e *Equipment) SetName() string {
	if e == nil || e.Set == nil {
		return ""
	}
	return e.Set.Name
}
