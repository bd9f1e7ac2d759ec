package engine

import (
	"math"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// refinableAttributes is how many refine lines every item carries
const refinableAttributes = 4

// RefineCeiling is the best refine percentage a single line of an item can reach,
// by the order of its set
func RefineCeiling(order int) int {
	switch {
	case order == 26:
		return 15
	case order == 27:
		return 20
	case order > 27 && order <= 33:
		return 25
	case order >= equipment.CivilizationOrder:
		return 30
	default:
		return 0
	}
}

// RefineKind is the stat refined on a slot
func RefineKind(slot equipment.Slot) equipment.AttrKind {
	switch slot {
	case equipment.SlotWeapon, equipment.SlotRing:
		return equipment.KindAttack
	case equipment.SlotArmor, equipment.SlotBoots:
		return equipment.KindDefense
	default:
		return equipment.KindHp
	}
}

// RefineBuffs estimates the extra buff of refining every equipped item for one troop
// type to percent of its ceiling. Items are visited in slot order and each one sets the
// field of its slot's stat, so weapon and ring, armor and boots, helmet and legarmor
// share a field and the later slot wins.
func RefineBuffs(g *entities.General, troop equipment.Troop, percent int) entities.BuffVector {
	var v entities.BuffVector
	if g == nil || !troop.IsValid() {
		return v
	}
	percent = clampPercent(percent)

	for i, item := range g.Equipments() {
		if item == nil || item.Set == nil {
			continue
		}
		slot, _ := equipment.SlotFromIndex(i)
		key, ok := entities.BuffKeyFor(troop, RefineKind(slot))
		if !ok {
			continue
		}
		ceiling := RefineCeiling(item.Set.Order)
		v.Set(key, math.Floor(float64(refinableAttributes*ceiling*percent)/100))
	}
	return v
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
