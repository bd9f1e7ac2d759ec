package v1alpha1

import (
	"sort"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/orchestrators/configurator"
)

func parseScenario(s string) (entities.Scenario, error) {
	if s == "" {
		return entities.ScenarioAny, nil
	}
	scenario, ok := entities.ScenarioFromString(s)
	if !ok {
		return "", errors.InvalidArgumentf("unknown scenario: %s", s)
	}
	return scenario, nil
}

func parseStarring(s string) (entities.StarringMode, error) {
	if s == "" {
		return entities.StarringEquipped, nil
	}
	mode, ok := entities.StarringModeFromString(s)
	if !ok {
		return "", errors.InvalidArgumentf("unknown starring mode: %s", s)
	}
	return mode, nil
}

func parseSlot(s string) (equipment.Slot, error) {
	slot, ok := equipment.SlotFromString(s)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot: %s", s)
	}
	return slot, nil
}

func parseTroops(in []string) ([]equipment.Troop, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]equipment.Troop, 0, len(in))
	for _, s := range in {
		troop, ok := equipment.TroopFromString(s)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown troop: %s", s)
		}
		out = append(out, troop)
	}
	return out, nil
}

func parseRefine(r *configuratorv1alpha1.Refine) (*engine.RefineOptions, error) {
	if r == nil {
		return nil, nil
	}
	troop, ok := equipment.TroopFromString(r.Troop)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown refine troop: %s", r.Troop)
	}
	return &engine.RefineOptions{Troop: troop, Percent: int(r.Percent)}, nil
}

func convertSlots(slots []entities.BuildSlot) []*configuratorv1alpha1.Slot {
	if len(slots) == 0 {
		return nil
	}
	out := make([]*configuratorv1alpha1.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, &configuratorv1alpha1.Slot{
			Slot:  s.Slot.String(),
			Item:  s.Item,
			Stars: int32(s.Stars),
		})
	}
	return out
}

func convertAnimal(a *equipment.Animal) *configuratorv1alpha1.Animal {
	if a == nil {
		return nil
	}
	return &configuratorv1alpha1.Animal{Name: a.Name, Type: string(a.Type)}
}

func convertAnimalToEntity(a *configuratorv1alpha1.Animal) *equipment.Animal {
	if a == nil {
		return nil
	}
	return &equipment.Animal{Name: a.Name, Type: equipment.AnimalType(a.Type)}
}

func convertSession(s *configurator.Session) *configuratorv1alpha1.Session {
	if s == nil {
		return nil
	}
	return &configuratorv1alpha1.Session{
		Id:                 s.ID,
		OwnerId:            s.OwnerID,
		Slots:              convertSlots(s.Slots),
		Animal:             convertAnimal(s.Animal),
		Key:                s.Key,
		ComparisonCount:    int32(s.ComparisonCount),
		ComparisonCapacity: int32(s.ComparisonCapacity),
		UpdatedAt:          s.UpdatedAt.Unix(),
	}
}

func convertBuild(b *entities.Build) *configuratorv1alpha1.Build {
	if b == nil {
		return nil
	}
	return &configuratorv1alpha1.Build{
		Id:        b.ID,
		OwnerId:   b.OwnerID,
		Name:      b.Name,
		Slots:     convertSlots(b.Slots),
		Animal:    convertAnimal(b.Animal),
		CreatedAt: b.CreatedAt.Unix(),
		UpdatedAt: b.UpdatedAt.Unix(),
	}
}

func convertEquipment(e *equipment.Equipment) *configuratorv1alpha1.Equipment {
	return &configuratorv1alpha1.Equipment{
		Name:     e.Name,
		Set:      e.SetName(),
		Slot:     e.Slot.String(),
		Building: e.Condition.Building.String(),
		Level:    int32(e.Condition.Level),
		Verified: e.Verified,
	}
}

func convertTotals(t engine.Totals) *configuratorv1alpha1.Totals {
	return &configuratorv1alpha1.Totals{Attack: t.Attack, Defense: t.Defense, Hp: t.Hp}
}

// convertMaterials keeps only the materials actually needed
func convertMaterials(column [equipment.MaterialCount]int) map[string]int32 {
	out := make(map[string]int32)
	for _, mat := range equipment.AllMaterials() {
		if n := column[mat]; n != 0 {
			out[mat.String()] = int32(n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func convertDiagnostics(d engine.Diagnostics) []*configuratorv1alpha1.Contributions {
	keys := make([]entities.BuffKey, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*configuratorv1alpha1.Contributions, 0, len(keys))
	for _, k := range keys {
		sources := make([]*configuratorv1alpha1.Contribution, 0, len(d[k]))
		for _, c := range d[k] {
			sources = append(sources, &configuratorv1alpha1.Contribution{
				Name:  c.Name,
				Kind:  string(c.Kind),
				Value: c.Value,
			})
		}
		out = append(out, &configuratorv1alpha1.Contributions{Field: k.String(), Sources: sources})
	}
	return out
}

func convertStats(out *engine.EvaluateOutput) *configuratorv1alpha1.Stats {
	stats := &configuratorv1alpha1.Stats{
		Key:          out.Key,
		Buffs:        out.Buffs.Buffs.Map(),
		Debuffs:      out.Debuffs.Buffs.Map(),
		Total:        out.Total.Map(),
		Totals:       convertTotals(out.Totals),
		MaterialsLv6: convertMaterials(out.Materials.Lv6),
		MaterialsLv7: convertMaterials(out.Materials.Lv7),
	}
	if !out.Refine.IsZero() {
		stats.Refine = out.Refine.Map()
	}
	if len(out.Buffs.Diagnostics) > 0 {
		stats.BuffDiagnostics = convertDiagnostics(out.Buffs.Diagnostics)
	}
	if len(out.Debuffs.Diagnostics) > 0 {
		stats.DebuffDiagnostics = convertDiagnostics(out.Debuffs.Diagnostics)
	}
	return stats
}

func convertTable(table *comparison.Table, capacity int) *configuratorv1alpha1.GetComparisonResponse {
	resp := &configuratorv1alpha1.GetComparisonResponse{
		Scenario: table.Scenario.String(),
		Capacity: int32(capacity),
		Columns:  make([]*configuratorv1alpha1.ComparisonColumn, 0, len(table.Columns)),
	}
	for _, col := range table.Columns {
		resp.Columns = append(resp.Columns, &configuratorv1alpha1.ComparisonColumn{
			Key:          col.Key,
			Items:        col.Items[:],
			Buffs:        col.Buffs.Map(),
			Debuffs:      col.Debuffs.Map(),
			BuffTotals:   convertTotals(col.BuffTotals),
			DebuffTotals: convertTotals(col.DebuffTotals),
		})
	}
	return resp
}
