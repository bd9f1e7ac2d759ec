// Package catalog loads, validates and cross-links the equipment catalog.
// A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Catalog is the cross-linked set of every item and set
type Catalog struct {
	sets     map[string]*equipment.Set
	byOrder  map[int]*equipment.Set
	setList  []*equipment.Set
	items    map[string]*equipment.Equipment
	itemList []*equipment.Equipment
}

// New validates every record and resolves set and base references.
// Any problem rejects the whole catalog.
func New(raw *RawCatalog) (*Catalog, error) {
	if raw == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	vb := errors.NewValidationBuilder()
	c := &Catalog{
		sets:    make(map[string]*equipment.Set, len(raw.Sets)),
		byOrder: make(map[int]*equipment.Set, len(raw.Sets)),
		items:   make(map[string]*equipment.Equipment, len(raw.Equipments)),
	}

	for i := range raw.Sets {
		rs := &raw.Sets[i]
		prefix := fmt.Sprintf("sets[%d]", i)
		validateSet(prefix, rs, vb)

		if _, exists := c.sets[rs.Name]; exists {
			vb.Fieldf(prefix+".name", "is a duplicate: %s", rs.Name)
			continue
		}
		if other, exists := c.byOrder[rs.Order]; exists {
			vb.Fieldf(prefix+".order", "%d is already used by %s", rs.Order, other.Name)
			continue
		}

		set := toSet(rs)
		c.sets[set.Name] = set
		c.byOrder[set.Order] = set
		c.setList = append(c.setList, set)
	}

	for i := range raw.Equipments {
		re := &raw.Equipments[i]
		prefix := fmt.Sprintf("equipments[%d]", i)
		validateEquipment(prefix, re, vb)

		if re.Verified != nil && !*re.Verified {
			slog.Warn("Equipment data is not verified", "equipment", re.Name)
		}

		if _, exists := c.items[re.Name]; exists {
			vb.Fieldf(prefix+".name", "is a duplicate: %s", re.Name)
			continue
		}

		set, ok := c.sets[re.Set]
		if !ok && re.Set != "" {
			vb.Fieldf(prefix+".set", "does not exist: %s", re.Set)
		}

		item := toEquipment(re, set)
		c.items[item.GetID()] = item
		c.itemList = append(c.itemList, item)
	}

	// Bases can point forward in the document, so link them once every item exists.
	for i := range raw.Equipments {
		re := &raw.Equipments[i]
		if re.Condition.Base == nil || *re.Condition.Base == "" {
			continue
		}
		item := c.items[re.Name]
		if item == nil || item.Condition.Base != nil {
			continue
		}

		prefix := fmt.Sprintf("equipments[%d].condition.base", i)
		base, ok := c.items[*re.Condition.Base]
		switch {
		case !ok:
			vb.Fieldf(prefix, "does not exist: %s", *re.Condition.Base)
		case base == item:
			vb.Field(prefix, "refers to the item itself")
		default:
			item.Condition.Base = base
		}
	}

	if err := vb.Build(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "catalog rejected")
	}

	sort.Slice(c.setList, func(i, j int) bool {
		return c.setList[i].Order < c.setList[j].Order
	})

	slog.Info("Catalog loaded",
		"sets", len(c.setList),
		"equipments", len(c.itemList))

	return c, nil
}

// Equipment returns an item by name
func (c *Catalog) Equipment(name string) (*equipment.Equipment, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Set returns a set by name
func (c *Catalog) Set(name string) (*equipment.Set, bool) {
	set, ok := c.sets[name]
	return set, ok
}

// SetByOrder returns a set by its display order
func (c *Catalog) SetByOrder(order int) (*equipment.Set, bool) {
	set, ok := c.byOrder[order]
	return set, ok
}

// Sets returns every set sorted by order
func (c *Catalog) Sets() []*equipment.Set {
	out := make([]*equipment.Set, len(c.setList))
	copy(out, c.setList)
	return out
}

// Equipments returns every item in document order
func (c *Catalog) Equipments() []*equipment.Equipment {
	out := make([]*equipment.Equipment, len(c.itemList))
	copy(out, c.itemList)
	return out
}

// EquipmentsForSlot lists the items of a slot in selection order: craft level,
// forge before wonder, then name.
func (c *Catalog) EquipmentsForSlot(slot equipment.Slot) []*equipment.Equipment {
	var out []*equipment.Equipment
	for _, item := range c.itemList {
		if item.Slot == slot {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Condition, out[j].Condition
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.Building != b.Building {
			if a.Building == equipment.BuildingForge {
				return true
			}
			if b.Building == equipment.BuildingForge {
				return false
			}
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PiecesBySlot groups the items of a set by slot. Civilization sets have at most
// one item per slot; regular sets may have several tiers.
func (c *Catalog) PiecesBySlot(setName string) map[equipment.Slot][]*equipment.Equipment {
	set, ok := c.sets[setName]
	if !ok {
		return nil
	}

	out := make(map[equipment.Slot][]*equipment.Equipment)
	for _, item := range c.itemList {
		if item.Set != set {
			continue
		}
		if set.IsCivilization() {
			out[item.Slot] = []*equipment.Equipment{item}
			continue
		}
		out[item.Slot] = append(out[item.Slot], item)
	}
	return out
}

// SelectPieces returns every item of the given sets and slots, ordered by set
// order then slot. An empty slot list selects every slot.
func (c *Catalog) SelectPieces(setNames []string, slots []equipment.Slot) []*equipment.Equipment {
	if len(slots) == 0 {
		slots = equipment.AllSlots()
	}

	seen := make(map[string]bool)
	var out []*equipment.Equipment
	for _, name := range setNames {
		pieces := c.PiecesBySlot(name)
		for _, slot := range slots {
			for _, item := range pieces[slot] {
				if !seen[item.Name] {
					seen[item.Name] = true
					out = append(out, item)
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Set.Order != out[j].Set.Order {
			return out[i].Set.Order < out[j].Set.Order
		}
		return out[i].Slot.Index() < out[j].Slot.Index()
	})
	return out
}

// ResolveBuild turns a saved build back into a general
func (c *Catalog) ResolveBuild(build *entities.Build) (*entities.General, error) {
	if build == nil {
		return nil, errors.InvalidArgument("build is required")
	}

	g := entities.NewGeneral()
	for _, slot := range build.Slots {
		if !slot.Slot.IsValid() {
			return nil, errors.InvalidArgumentf("unknown slot: %s", slot.Slot)
		}
		item, ok := c.items[slot.Item]
		if !ok {
			return nil, errors.NotFoundf("equipment not found: %s", slot.Item).
				WithMeta("build_id", build.ID)
		}
		if item.Slot != slot.Slot {
			return nil, errors.InvalidArgumentf("%s does not fit slot %s", item.Name, slot.Slot)
		}
		g.SetEquipment(slot.Slot, item, slot.Stars)
	}

	if build.Animal != nil {
		animal := *build.Animal
		g.SetAnimal(&animal)
	}
	return g, nil
}

func toSet(rs *RawSet) *equipment.Set {
	set := &equipment.Set{
		Name:  rs.Name,
		Order: rs.Order,
	}
	for _, a := range rs.Attributes {
		set.Attributes = append(set.Attributes, equipment.SetAttribute{
			Pieces:     a.Pieces,
			Conditions: toConditions(a.Condition),
			Troops:     toTroops(a.Troop),
			Kind:       equipment.AttrKind(a.Type),
			Value:      a.Value,
		})
	}
	return set
}

func toEquipment(re *RawEquipment, set *equipment.Set) *equipment.Equipment {
	item := &equipment.Equipment{
		Name: re.Name,
		Set:  set,
		Slot: equipment.Slot(re.Type),
		Condition: equipment.CraftCondition{
			Building: equipment.Building(re.Condition.Building),
			Level:    re.Condition.Level,
			Scroll:   re.Condition.Scroll,
		},
		Cost:     append([]equipment.MaterialCost(nil), re.Cost...),
		Verified: re.Verified == nil || *re.Verified,
	}
	for _, a := range re.Attributes {
		item.Attributes = append(item.Attributes, equipment.ItemAttribute{
			Conditions: toConditions(a.Condition),
			Troops:     toTroops(a.Troop),
			Kind:       equipment.AttrKind(a.Type),
			Value:      a.Value,
			Rate:       a.Rate,
		})
	}
	return item
}

func toConditions(in []string) []equipment.Condition {
	out := make([]equipment.Condition, len(in))
	for i, v := range in {
		out[i] = equipment.Condition(v)
	}
	return out
}

func toTroops(in []string) []equipment.Troop {
	out := make([]equipment.Troop, len(in))
	for i, v := range in {
		out[i] = equipment.Troop(v)
	}
	return out
}
