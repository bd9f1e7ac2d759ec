package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// Fixture item names
const (
	AresBow            = "Ares Bow"
	AresArmor          = "Ares Armor"
	AresBoots          = "Ares Boots"
	AresHelmet         = "Ares Helmet"
	DragonArmor        = "Dragon Armor"
	DragonRing         = "Dragon Ring"
	FurinkazanLegarmor = "Furinkazan Legarmor"
	FurinkazanRing     = "Furinkazan Ring"

	// TestOwnerID is the default owner of saved builds in tests
	TestOwnerID = "owner-test-001"
)

var (
	allTroops = []string{"ground", "mounted", "ranged", "siege"}
	noConds   = []string{}
)

// CreateTestRawCatalog returns a small but complete catalog document.
// Every call returns a fresh copy so tests may mutate it.
func CreateTestRawCatalog() *catalog.RawCatalog {
	dragonArmor := DragonArmor
	return &catalog.RawCatalog{
		Sets: []catalog.RawSet{
			{
				Name:  "Ares",
				Order: 10,
				Attributes: []catalog.RawSetAttribute{
					{Pieces: 2, Condition: noConds, Troop: []string{"ground"}, Type: "attack", Value: 5},
					{Pieces: 4, Condition: []string{"attacking"}, Troop: allTroops, Type: "defense", Value: 8},
				},
			},
			{
				Name:  "Dragon",
				Order: 26,
				Attributes: []catalog.RawSetAttribute{
					{Pieces: 2, Condition: []string{"w/dragon"}, Troop: []string{"mounted"}, Type: "hp", Value: 6},
				},
			},
			{
				Name:  "Furinkazan",
				Order: 53,
				Attributes: []catalog.RawSetAttribute{
					{Pieces: 2, Condition: []string{"in-city"}, Troop: []string{"siege"}, Type: "defense", Value: 7},
				},
			},
		},
		Equipments: []catalog.RawEquipment{
			{
				Name:      AresBow,
				Set:       "Ares",
				Type:      "weapon",
				Condition: catalog.RawCondition{Building: "forge", Level: 35, Scroll: "Ares Bow Scroll"},
				Cost:      []equipment.MaterialCost{{Name: "iron", Level: 6, Quantity: 5}},
				Attributes: []catalog.RawAttribute{
					{Condition: noConds, Troop: []string{"ground"}, Type: "attack", Value: 10, Rate: 1},
				},
			},
			{
				Name:      AresArmor,
				Set:       "Ares",
				Type:      "armor",
				Condition: catalog.RawCondition{Building: "forge", Level: 35, Base: &dragonArmor},
				Cost: []equipment.MaterialCost{
					{Name: "iron", Level: 6, Quantity: 5},
					{Name: "leather", Level: 7, Quantity: 3},
				},
				Attributes: []catalog.RawAttribute{
					{Condition: []string{"in-city"}, Troop: []string{"ground", "mounted"}, Type: "defense", Value: 6, Rate: 1},
					{Condition: noConds, Troop: []string{"siege"}, Type: "attack", Value: -4, Rate: -1},
				},
			},
			{
				Name:      AresBoots,
				Set:       "Ares",
				Type:      "boots",
				Condition: catalog.RawCondition{Building: "forge", Level: 35},
				Cost:      []equipment.MaterialCost{{Name: "agate", Level: 7, Quantity: 15}},
				Attributes: []catalog.RawAttribute{
					{Condition: []string{"attacking"}, Troop: []string{"ranged"}, Type: "attack", Value: 7, Rate: 1},
				},
			},
			{
				Name:      AresHelmet,
				Set:       "Ares",
				Type:      "helmet",
				Condition: catalog.RawCondition{Building: "wonder", Level: 35},
				Cost:      []equipment.MaterialCost{{Name: "Purple Crystal", Level: 7, Quantity: 2}},
				Attributes: []catalog.RawAttribute{
					{Condition: []string{"w/dragon"}, Troop: []string{"mounted"}, Type: "hp", Value: 9, Rate: 2},
				},
			},
			{
				Name:      DragonArmor,
				Set:       "Dragon",
				Type:      "armor",
				Condition: catalog.RawCondition{Building: "forge", Level: 27},
				Cost: []equipment.MaterialCost{
					{Name: "dragon scale", Level: 7, Quantity: 2},
					{Name: "bone", Level: 6, Quantity: 4},
				},
				Attributes: []catalog.RawAttribute{
					{Condition: []string{"marching"}, Troop: []string{"ground"}, Type: "hp", Value: 3, Rate: 0.5},
				},
			},
			{
				Name:      DragonRing,
				Set:       "Dragon",
				Type:      "ring",
				Condition: catalog.RawCondition{Building: "forge", Level: 27},
				Cost:      []equipment.MaterialCost{{Name: "pearl", Level: 6, Quantity: 8}},
				Attributes: []catalog.RawAttribute{
					{Condition: []string{"defending"}, Troop: []string{"ranged"}, Type: "defense", Value: 5, Rate: 1},
					{Condition: noConds, Troop: []string{"ground"}, Type: "range", Value: 2, Rate: 1},
				},
			},
			{
				Name:      FurinkazanLegarmor,
				Set:       "Furinkazan",
				Type:      "legarmor",
				Condition: catalog.RawCondition{Building: "wonder", Level: 27},
				Cost:      []equipment.MaterialCost{{Name: "wood", Level: 7, Quantity: 10}},
				Attributes: []catalog.RawAttribute{
					{Condition: noConds, Troop: []string{"siege"}, Type: "hp", Value: 12, Rate: 1},
				},
			},
			{
				Name:      FurinkazanRing,
				Set:       "Furinkazan",
				Type:      "ring",
				Condition: catalog.RawCondition{Building: "wonder", Level: 30},
				Cost:      []equipment.MaterialCost{{Name: "feather", Level: 7, Quantity: 6}},
				Attributes: []catalog.RawAttribute{
					{Condition: noConds, Troop: []string{"siege"}, Type: "attack", Value: 4, Rate: 1},
				},
			},
		},
	}
}

// CreateTestCatalog builds the fixture catalog and fails the test on error
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(CreateTestRawCatalog())
	require.NoError(t, err, "fixture catalog must load")
	return c
}

// CreateTestGeneral equips the named items at the given stars
func CreateTestGeneral(t *testing.T, c *catalog.Catalog, stars int, names ...string) *entities.General {
	t.Helper()
	g := entities.NewGeneral()
	for _, name := range names {
		item, ok := c.Equipment(name)
		require.True(t, ok, "unknown fixture item %s", name)
		g.SetEquipment(item.Slot, item, stars)
	}
	return g
}

// CreateTestDragon returns a dragon companion
func CreateTestDragon() *equipment.Animal {
	return &equipment.Animal{Name: "Fafnir", Type: equipment.AnimalTypeDragon}
}
