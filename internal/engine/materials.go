package engine

import (
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// Material levels tracked by the tally
const (
	MaterialLevel6 = 6
	MaterialLevel7 = 7
)

// Materials is the crafting cost of a build, one column per canonical material
type Materials struct {
	Lv6 [equipment.MaterialCount]int `json:"lv6"`
	Lv7 [equipment.MaterialCount]int `json:"lv7"`
}

// IsZero reports whether nothing is needed
func (m Materials) IsZero() bool {
	return m == Materials{}
}

// Add returns the column-wise sum of both tallies
func (m Materials) Add(other Materials) Materials {
	for i := range m.Lv6 {
		m.Lv6[i] += other.Lv6[i]
		m.Lv7[i] += other.Lv7[i]
	}
	return m
}

// ComputeMaterials sums the cost of every equipped item, and of each item's base
// when includeBase is set. Unknown materials and levels other than 6 and 7 are dropped.
func ComputeMaterials(g *entities.General, includeBase bool) Materials {
	var m Materials
	if g == nil {
		return m
	}

	for _, item := range g.Equipments() {
		if item == nil {
			continue
		}
		m.addCost(item.Cost)
		if includeBase && item.Condition.Base != nil {
			m.addCost(item.Condition.Base.Cost)
		}
	}
	return m
}

func (m *Materials) addCost(costs []equipment.MaterialCost) {
	for _, c := range costs {
		var column *[equipment.MaterialCount]int
		switch c.Level {
		case MaterialLevel6:
			column = &m.Lv6
		case MaterialLevel7:
			column = &m.Lv7
		default:
			continue
		}

		mat, ok := equipment.MaterialFromName(c.Name)
		if !ok {
			continue
		}
		column[mat] += c.Quantity
	}
}
