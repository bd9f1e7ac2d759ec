package comparison_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type TableTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

func (s *TableTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog(s.T())
}

func (s *TableTestSuite) TestWithDummyDragon() {
	g := testutils.CreateTestGeneral(s.T(), s.catalog, 2, testutils.AresHelmet)

	snap := comparison.WithDummyDragon(g)
	s.Require().NotNil(snap)
	s.Equal(comparison.DummyDragonName, snap.Animal().Name)
	s.True(snap.Animal().IsDragon())
	s.Nil(g.Animal(), "source build is untouched")
	s.Equal(g.ComparisonKey(), snap.ComparisonKey())
	s.Nil(comparison.WithDummyDragon(nil))
}

func (s *TableTestSuite) TestBuildTableUsesMaxStarring() {
	g := testutils.CreateTestGeneral(s.T(), s.catalog, 1, testutils.AresBow, testutils.AresArmor)

	table := comparison.BuildTable([]*entities.General{g, nil}, comparison.TableOptions{
		Scenario: entities.ScenarioDefending,
	})

	s.Equal(entities.ScenarioDefending, table.Scenario)
	s.Require().Len(table.Columns, 1)
	col := table.Columns[0]

	s.Equal("Ares Bow(5)/Ares Armor(5)/null/null/null/null/", col.Key)
	s.Equal([equipment.SlotCount]string{"Ares B", "Ares A", "", "", "", ""}, col.Items)
	s.Equal(20.0, col.Buffs.Get(entities.GroundAttack), "15 from the bow at max plus the two piece bonus")
	s.Equal(11.0, col.Buffs.Get(entities.GroundDefense))
	s.Equal(-9.0, col.Debuffs.Get(entities.SiegeAttack))
	s.True(col.Refine.IsZero())
	s.Equal(engine.Totals{Attack: 20, Defense: 22}, col.BuffTotals)
	s.Equal(engine.Totals{Attack: -9}, col.DebuffTotals)
	s.Equal(10, col.Materials.Lv6[equipment.MaterialIron])
	s.Equal(0, col.Materials.Lv7[equipment.MaterialDragonScale], "base excluded by default")
}

func (s *TableTestSuite) TestBuildTableMergesRefine() {
	g := testutils.CreateTestGeneral(s.T(), s.catalog, 0, testutils.FurinkazanLegarmor)

	table := comparison.BuildTable([]*entities.General{g}, comparison.TableOptions{
		Scenario:       entities.ScenarioAny,
		Refine:         &engine.RefineOptions{Troop: equipment.TroopSiege, Percent: 100},
		ExcludedTroops: []equipment.Troop{equipment.TroopGround},
	})

	s.Require().Len(table.Columns, 1)
	col := table.Columns[0]
	s.Equal(120.0, col.Refine.Get(entities.SiegeHp))
	s.Equal(137.0, col.Buffs.Get(entities.SiegeHp), "12 plus 5 stars plus refine")
	s.Equal(137.0, col.BuffTotals.Hp)
}

func (s *TableTestSuite) TestBuildTableExcludedTroops() {
	g := testutils.CreateTestGeneral(s.T(), s.catalog, 0, testutils.AresArmor)

	table := comparison.BuildTable([]*entities.General{g}, comparison.TableOptions{
		Scenario:       entities.ScenarioReinforcing,
		ExcludedTroops: []equipment.Troop{equipment.TroopMounted, equipment.TroopSiege},
	})

	col := table.Columns[0]
	s.Equal(11.0, col.Buffs.Get(entities.MountedDefense), "cells keep excluded troops")
	s.Equal(11.0, col.BuffTotals.Defense)
	s.Equal(0.0, col.DebuffTotals.Attack)
}

func (s *TableTestSuite) TestShortName() {
	testCases := []struct {
		name     string
		slot     equipment.Slot
		expected string
	}{
		{"Dragon Armor", equipment.SlotArmor, "Dragon"},
		{"King Ring", equipment.SlotRing, "King R"},
		{"Achaemenidae Sword", equipment.SlotWeapon, "Achae. Sword"},
		{"Achaemenidae Helmet", equipment.SlotHelmet, "Achae."},
		{"Courageous Achaemenidae Blade", equipment.SlotWeapon, "C. Achae. Blade"},
		{"Fearless Dragon Boots", equipment.SlotBoots, "F. Dragon"},
		{"Excalibur", equipment.SlotWeapon, "Excali"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, comparison.ShortName(tc.name, tc.slot))
		})
	}
}
