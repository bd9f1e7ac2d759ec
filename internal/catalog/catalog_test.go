package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
	raw *catalog.RawCatalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.raw = testutils.CreateTestRawCatalog()
}

func (s *CatalogTestSuite) TestNewCrossLinks() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	bow, ok := c.Equipment(testutils.AresBow)
	s.Require().True(ok)
	ares, ok := c.Set("Ares")
	s.Require().True(ok)
	s.Same(ares, bow.Set)
	s.Equal(equipment.SlotWeapon, bow.Slot)
	s.Equal(equipment.BuildingForge, bow.Condition.Building)
	s.True(bow.Verified)

	armor, _ := c.Equipment(testutils.AresArmor)
	dragonArmor, _ := c.Equipment(testutils.DragonArmor)
	s.Same(dragonArmor, armor.Condition.Base)
	s.Nil(bow.Condition.Base)

	byOrder, ok := c.SetByOrder(53)
	s.Require().True(ok)
	s.Equal("Furinkazan", byOrder.Name)
	s.True(byOrder.IsCivilization())
}

func (s *CatalogTestSuite) TestItemsIndexedByEntityID() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	for _, item := range c.Equipments() {
		s.Equal("equipment", item.GetType())
		found, ok := c.Equipment(item.GetID())
		s.Require().True(ok, item.GetID())
		s.Same(item, found)
	}
}

func (s *CatalogTestSuite) TestSetsSortedByOrder() {
	s.raw.Sets[0], s.raw.Sets[2] = s.raw.Sets[2], s.raw.Sets[0]

	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	var orders []int
	for _, set := range c.Sets() {
		orders = append(orders, set.Order)
	}
	s.Equal([]int{10, 26, 53}, orders)
}

func (s *CatalogTestSuite) TestRejectsWholeCatalog() {
	testCases := []struct {
		name   string
		mutate func(raw *catalog.RawCatalog)
		field  string
	}{
		{
			name:   "unknown set",
			mutate: func(raw *catalog.RawCatalog) { raw.Equipments[0].Set = "Zeus" },
			field:  "equipments[0].set",
		},
		{
			name: "unknown base",
			mutate: func(raw *catalog.RawCatalog) {
				missing := "Lost Armor"
				raw.Equipments[1].Condition.Base = &missing
			},
			field: "equipments[1].condition.base",
		},
		{
			name: "self base",
			mutate: func(raw *catalog.RawCatalog) {
				self := testutils.AresBow
				raw.Equipments[0].Condition.Base = &self
			},
			field: "equipments[0].condition.base",
		},
		{
			name:   "duplicate item",
			mutate: func(raw *catalog.RawCatalog) { raw.Equipments[2].Name = testutils.AresBow },
			field:  "equipments[2].name",
		},
		{
			name:   "duplicate set order",
			mutate: func(raw *catalog.RawCatalog) { raw.Sets[1].Order = 10 },
			field:  "sets[1].order",
		},
		{
			name:   "invalid attribute",
			mutate: func(raw *catalog.RawCatalog) { raw.Equipments[3].Attributes[0].Rate = -2 },
			field:  "equipments[3].attributes[0]",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			raw := testutils.CreateTestRawCatalog()
			tc.mutate(raw)

			c, err := catalog.New(raw)
			s.Nil(c)
			s.Require().Error(err)
			s.True(errors.IsFailedPrecondition(err))

			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *CatalogTestSuite) TestEquipmentsForSlotOrder() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	var names []string
	for _, item := range c.EquipmentsForSlot(equipment.SlotRing) {
		names = append(names, item.Name)
	}
	s.Equal([]string{testutils.DragonRing, testutils.FurinkazanRing}, names)

	s.Run("forge before wonder on equal level", func() {
		raw := testutils.CreateTestRawCatalog()
		raw.Equipments[7].Condition.Level = 27 // Furinkazan Ring, wonder
		c, err := catalog.New(raw)
		s.Require().NoError(err)

		items := c.EquipmentsForSlot(equipment.SlotRing)
		s.Require().Len(items, 2)
		s.Equal(testutils.DragonRing, items[0].Name)
	})

	s.Run("name breaks ties", func() {
		raw := testutils.CreateTestRawCatalog()
		raw.Equipments[0].Condition.Level = 27
		raw.Equipments = append(raw.Equipments, catalog.RawEquipment{
			Name:      "Apollo Bow",
			Set:       "Ares",
			Type:      "weapon",
			Condition: catalog.RawCondition{Building: "forge", Level: 27},
		})
		c, err := catalog.New(raw)
		s.Require().NoError(err)

		items := c.EquipmentsForSlot(equipment.SlotWeapon)
		s.Require().Len(items, 2)
		s.Equal("Apollo Bow", items[0].Name)
		s.Equal(testutils.AresBow, items[1].Name)
	})
}

func (s *CatalogTestSuite) TestPiecesBySlot() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	ares := c.PiecesBySlot("Ares")
	s.Len(ares, 4)
	s.Len(ares[equipment.SlotWeapon], 1)

	civ := c.PiecesBySlot("Furinkazan")
	s.Len(civ[equipment.SlotRing], 1)

	s.Nil(c.PiecesBySlot("Zeus"))
}

func (s *CatalogTestSuite) TestSelectPieces() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	items := c.SelectPieces([]string{"Furinkazan", "Ares"}, []equipment.Slot{equipment.SlotRing, equipment.SlotWeapon, equipment.SlotArmor})

	var names []string
	for _, item := range items {
		names = append(names, item.Name)
	}
	s.Equal([]string{testutils.AresBow, testutils.AresArmor, testutils.FurinkazanRing}, names)
}

func (s *CatalogTestSuite) TestResolveBuild() {
	c, err := catalog.New(s.raw)
	s.Require().NoError(err)

	build := &entities.Build{
		ID: "build-1",
		Slots: []entities.BuildSlot{
			{Slot: equipment.SlotWeapon, Item: testutils.AresBow, Stars: 3},
			{Slot: equipment.SlotRing, Item: testutils.DragonRing, Stars: 1},
		},
		Animal: testutils.CreateTestDragon(),
	}

	g, err := c.ResolveBuild(build)
	s.Require().NoError(err)
	s.Equal("Ares Bow(3)/null/null/null/null/Dragon Ring(1)/Fafnir", g.StringKey(true, entities.StarringEquipped))

	s.Run("unknown item", func() {
		_, err := c.ResolveBuild(&entities.Build{Slots: []entities.BuildSlot{{Slot: equipment.SlotWeapon, Item: "Zeus Bow"}}})
		s.True(errors.IsNotFound(err))
	})

	s.Run("wrong slot", func() {
		_, err := c.ResolveBuild(&entities.Build{Slots: []entities.BuildSlot{{Slot: equipment.SlotRing, Item: testutils.AresBow}}})
		s.True(errors.IsInvalidArgument(err))
	})
}
