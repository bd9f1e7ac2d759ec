package comparison

import (
	"strings"

	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// DummyDragonName is the companion given to every compared build
const DummyDragonName = "generic-dragon"

// DummyDragon returns the stand-in companion used for comparisons
func DummyDragon() *equipment.Animal {
	return &equipment.Animal{Name: DummyDragonName, Type: equipment.AnimalTypeDragon}
}

// WithDummyDragon snapshots g with the stand-in dragon attached
func WithDummyDragon(g *entities.General) *entities.General {
	if g == nil {
		return nil
	}
	c := g.Clone()
	c.SetAnimal(DummyDragon())
	return c
}

// Column is one compared build
type Column struct {
	Key string `json:"key"`
	// Items holds the short name per slot, empty when the slot is unequipped
	Items        [equipment.SlotCount]string `json:"items"`
	Buffs        entities.BuffVector         `json:"buffs"`
	Debuffs      entities.BuffVector         `json:"debuffs"`
	Refine       entities.BuffVector         `json:"refine"`
	BuffTotals   engine.Totals               `json:"buff_totals"`
	DebuffTotals engine.Totals               `json:"debuff_totals"`
	Materials    engine.Materials            `json:"materials"`
}

// Table is the comparison view of a set of builds
type Table struct {
	Scenario       entities.Scenario `json:"scenario"`
	ExcludedTroops []equipment.Troop `json:"excluded_troops,omitempty"`
	Columns        []Column          `json:"columns"`
}

// TableOptions tunes how columns are computed
type TableOptions struct {
	Scenario entities.Scenario
	// Refine is merged into the buffs when set
	Refine *engine.RefineOptions
	// ExcludedTroops are left out of the totals
	ExcludedTroops []equipment.Troop
	// IncludeBase adds the cost of base items to the materials
	IncludeBase bool
}

// BuildTable evaluates every build at max starring. Nil builds are skipped.
func BuildTable(generals []*entities.General, opts TableOptions) *Table {
	table := &Table{
		Scenario:       opts.Scenario,
		ExcludedTroops: opts.ExcludedTroops,
		Columns:        make([]Column, 0, len(generals)),
	}

	for _, g := range generals {
		if g == nil {
			continue
		}
		col := Column{
			Key:       g.StringKey(false, entities.StarringMax),
			Debuffs:   engine.ComputeDebuffs(g, entities.StarringMax).Buffs,
			Materials: engine.ComputeMaterials(g, opts.IncludeBase),
		}
		for i, item := range g.Equipments() {
			if item != nil {
				col.Items[i] = ShortName(item.Name, item.Slot)
			}
		}

		buffs := engine.ComputeBuffs(g, opts.Scenario, entities.StarringMax).Buffs
		if opts.Refine != nil {
			col.Refine = engine.RefineBuffs(g, opts.Refine.Troop, opts.Refine.Percent)
		}
		col.Buffs = buffs.Merge(col.Refine)
		col.BuffTotals = engine.TotalsOf(col.Buffs, opts.ExcludedTroops...)
		col.DebuffTotals = engine.TotalsOf(col.Debuffs, opts.ExcludedTroops...)

		table.Columns = append(table.Columns, col)
	}
	return table
}

const (
	courageousPrefix = "Courageous "
	fearlessPrefix   = "Fearless "
)

// ShortName abbreviates an item name for column headers:
// "Courageous "/"Fearless " become "C. "/"F. ", a short first word is kept whole,
// a long one is cut to five letters and a dot, and weapons keep their last word.
func ShortName(name string, slot equipment.Slot) string {
	prefix := ""
	switch {
	case strings.HasPrefix(name, courageousPrefix):
		name = strings.TrimPrefix(name, courageousPrefix)
		prefix = "C. "
	case strings.HasPrefix(name, fearlessPrefix):
		name = strings.TrimPrefix(name, fearlessPrefix)
		prefix = "F. "
	}

	if idx := strings.Index(name, " "); idx <= 6 {
		return prefix + truncate(name, 6)
	}

	short := prefix + truncate(name, 5) + "."
	if slot == equipment.SlotWeapon {
		short += name[strings.LastIndex(name, " "):]
	}
	return short
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
