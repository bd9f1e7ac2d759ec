package equipment

// Slot represents one of the six equipment positions of a general
type Slot string

// Define all available equipment slots, in index order
const (
	SlotWeapon   Slot = "weapon"
	SlotArmor    Slot = "armor"
	SlotBoots    Slot = "boots"
	SlotHelmet   Slot = "helmet"
	SlotLegArmor Slot = "legarmor"
	SlotRing     Slot = "ring"
)

// SlotCount is the fixed number of equipment slots
const SlotCount = 6

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is valid
func (s Slot) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the array index of the slot, or -1 when the slot is unknown
func (s Slot) Index() int {
	switch s {
	case SlotWeapon:
		return 0
	case SlotArmor:
		return 1
	case SlotBoots:
		return 2
	case SlotHelmet:
		return 3
	case SlotLegArmor:
		return 4
	case SlotRing:
		return 5
	default:
		return -1
	}
}

// AllSlots returns every slot in index order
func AllSlots() []Slot {
	return []Slot{
		SlotWeapon,
		SlotArmor,
		SlotBoots,
		SlotHelmet,
		SlotLegArmor,
		SlotRing,
	}
}

// SlotFromIndex converts an array index back to a slot
func SlotFromIndex(i int) (Slot, bool) {
	if i < 0 || i >= SlotCount {
		return "", false
	}
	return AllSlots()[i], true
}

// SlotFromString converts a string to a Slot
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// AttrKind is the stat an attribute modifies
type AttrKind string

// Attribute kinds. Range and march size are carried by the catalog but are not combat stats.
const (
	KindAttack    AttrKind = "attack"
	KindDefense   AttrKind = "defense"
	KindHp        AttrKind = "hp"
	KindRange     AttrKind = "range"
	KindMarchSize AttrKind = "marchsize"
)

// String returns the string representation of the kind
func (k AttrKind) String() string {
	return string(k)
}

// IsValid checks if the kind is one the catalog accepts
func (k AttrKind) IsValid() bool {
	switch k {
	case KindAttack, KindDefense, KindHp, KindRange, KindMarchSize:
		return true
	default:
		return false
	}
}

// IsCombat reports whether the kind feeds one of the twelve buff fields
func (k AttrKind) IsCombat() bool {
	switch k {
	case KindAttack, KindDefense, KindHp:
		return true
	default:
		return false
	}
}

// AllAttrKinds returns every accepted attribute kind
func AllAttrKinds() []AttrKind {
	return []AttrKind{KindAttack, KindDefense, KindHp, KindRange, KindMarchSize}
}

// CombatKinds returns the kinds that are aggregated into buffs
func CombatKinds() []AttrKind {
	return []AttrKind{KindAttack, KindDefense, KindHp}
}

// Troop is a troop type an attribute applies to
type Troop string

// Troop types
const (
	TroopGround  Troop = "ground"
	TroopMounted Troop = "mounted"
	TroopRanged  Troop = "ranged"
	TroopSiege   Troop = "siege"
)

// String returns the string representation of the troop
func (t Troop) String() string {
	return string(t)
}

// IsValid checks if the troop is valid
func (t Troop) IsValid() bool {
	switch t {
	case TroopGround, TroopMounted, TroopRanged, TroopSiege:
		return true
	default:
		return false
	}
}

// AllTroops returns every troop type in buff field order
func AllTroops() []Troop {
	return []Troop{TroopGround, TroopMounted, TroopRanged, TroopSiege}
}

// TroopFromString converts a string to a Troop
func TroopFromString(s string) (Troop, bool) {
	t := Troop(s)
	if t.IsValid() {
		return t, true
	}
	return "", false
}

// Condition is a tag restricting when an attribute applies
type Condition string

// Attribute conditions
const (
	ConditionInCity      Condition = "in-city"
	ConditionAttacking   Condition = "attacking"
	ConditionDefending   Condition = "defending"
	ConditionMarching    Condition = "marching"
	ConditionReinforcing Condition = "reinforcing"
	ConditionWithDragon  Condition = "w/dragon"
)

// String returns the string representation of the condition
func (c Condition) String() string {
	return string(c)
}

// IsValid checks if the condition is valid
func (c Condition) IsValid() bool {
	switch c {
	case ConditionInCity, ConditionAttacking, ConditionDefending,
		ConditionMarching, ConditionReinforcing, ConditionWithDragon:
		return true
	default:
		return false
	}
}

// AllConditions returns every accepted condition
func AllConditions() []Condition {
	return []Condition{
		ConditionInCity,
		ConditionAttacking,
		ConditionDefending,
		ConditionMarching,
		ConditionReinforcing,
		ConditionWithDragon,
	}
}

// Building is where an item is crafted
type Building string

// Crafting buildings
const (
	BuildingForge  Building = "forge"
	BuildingWonder Building = "wonder"
)

// String returns the string representation of the building
func (b Building) String() string {
	return string(b)
}

// IsValid checks if the building is valid
func (b Building) IsValid() bool {
	return b == BuildingForge || b == BuildingWonder
}

// AllBuildings returns every accepted building
func AllBuildings() []Building {
	return []Building{BuildingForge, BuildingWonder}
}

// AnimalType classifies a companion
type AnimalType string

// Companion types the rules care about. Other values are allowed.
const (
	AnimalTypeDragon       AnimalType = "dragon"
	AnimalTypeSacredDragon AnimalType = "sacreddragon"
)

// Animal is the optional companion of a general
type Animal struct {
	Name string     `json:"name" yaml:"name"`
	Type AnimalType `json:"type" yaml:"type"`
}

// IsDragon reports whether the companion satisfies w/dragon conditions
func (a *Animal) IsDragon() bool {
	if a == nil {
		return false
	}
	return a.Type == AnimalTypeDragon || a.Type == AnimalTypeSacredDragon
}

// Strings converts typed values to plain strings, mostly for validation messages
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
