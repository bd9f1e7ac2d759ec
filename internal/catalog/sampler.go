package catalog

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Sampler rolls random builds from a catalog
type Sampler struct {
	catalog *Catalog
	roller  dice.Roller
}

// NewSampler creates a sampler. A nil roller uses the toolkit default.
func NewSampler(c *Catalog, roller dice.Roller) (*Sampler, error) {
	if c == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Sampler{catalog: c, roller: roller}, nil
}

// RandomGeneral fills every slot with a random item of that slot, or leaves it
// empty, and rolls its stars. Civilization items never carry stars.
func (s *Sampler) RandomGeneral() (*entities.General, error) {
	g := entities.NewGeneral()
	for _, slot := range equipment.AllSlots() {
		candidates := s.catalog.EquipmentsForSlot(slot)
		if len(candidates) == 0 {
			continue
		}

		// One extra face leaves the slot empty.
		pick, err := s.roller.Roll(len(candidates) + 1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", slot)
		}
		if pick > len(candidates) {
			continue
		}
		item := candidates[pick-1]

		stars := 0
		if !item.Set.IsCivilization() {
			roll, err := s.roller.Roll(entities.MaxStars + 1)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll stars for %s", item.Name)
			}
			stars = roll - 1
		}
		g.SetEquipment(slot, item, stars)
	}
	return g, nil
}
