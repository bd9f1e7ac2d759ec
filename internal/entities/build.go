package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// Build is a saved general. Items are referenced by catalog name so a build
// survives catalog reloads as long as the names do.
type Build struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"owner_id"`
	Name      string            `json:"name,omitempty"`
	Slots     []BuildSlot       `json:"slots"`
	Animal    *equipment.Animal `json:"animal,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// BuildSlot is one equipped slot of a saved build
type BuildSlot struct {
	Slot  equipment.Slot `json:"slot" yaml:"slot"`
	Item  string         `json:"item" yaml:"item"`
	Stars int            `json:"stars" yaml:"stars"`
}

var _ core.Entity = (*Build)(nil)

// GetID returns the build ID
func (b *Build) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *Build) GetType() string {
	return "build"
}

// SlotsFromGeneral lists the equipped slots of a general in slot order
func SlotsFromGeneral(g *General) []BuildSlot {
	var slots []BuildSlot
	for i, item := range g.Equipments() {
		if item == nil {
			continue
		}
		slot, _ := equipment.SlotFromIndex(i)
		slots = append(slots, BuildSlot{
			Slot:  slot,
			Item:  item.Name,
			Stars: g.StarsAt(i),
		})
	}
	return slots
}
