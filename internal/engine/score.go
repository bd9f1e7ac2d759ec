package engine

import (
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// Score sums the fields of the given troop types, or of every troop when none are given
func Score(v entities.BuffVector, troops ...equipment.Troop) float64 {
	if len(troops) == 0 {
		troops = equipment.AllTroops()
	}

	var sum float64
	for _, troop := range troops {
		for _, kind := range equipment.CombatKinds() {
			if key, ok := entities.BuffKeyFor(troop, kind); ok {
				sum += v.Get(key)
			}
		}
	}
	return sum
}

// Totals sums each stat kind across troops
type Totals struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Hp      float64 `json:"hp"`
}

// TotalsOf aggregates a vector per stat kind, skipping excluded troops
func TotalsOf(v entities.BuffVector, excluded ...equipment.Troop) Totals {
	return Totals{
		Attack:  v.Total(equipment.KindAttack, excluded...),
		Defense: v.Total(equipment.KindDefense, excluded...),
		Hp:      v.Total(equipment.KindHp, excluded...),
	}
}
