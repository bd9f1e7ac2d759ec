package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	engine  engine.Engine
	ctx     context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog(s.T())
	s.ctx = context.Background()

	e, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = e
}

func (s *EngineTestSuite) general(stars int, names ...string) *entities.General {
	return testutils.CreateTestGeneral(s.T(), s.catalog, stars, names...)
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := engine.New(nil)
	s.NoError(err)

	_, err = engine.New(&engine.Config{ExcludedTroops: []equipment.Troop{"cavalry"}})
	s.Error(err)
	s.Contains(err.Error(), "invalid config")
	s.Contains(err.Error(), "ExcludedTroops")
}

func (s *EngineTestSuite) TestCatalogBowAtThreeStars() {
	g := s.general(3, testutils.AresBow)

	res := engine.ComputeBuffs(g, entities.ScenarioAttacking, entities.StarringEquipped)
	s.Equal(13.0, res.Buffs.Get(entities.GroundAttack))

	res = engine.ComputeBuffs(g, entities.ScenarioAttacking, entities.StarringMax)
	s.Equal(15.0, res.Buffs.Get(entities.GroundAttack))
}

func (s *EngineTestSuite) TestInCityArmor() {
	g := s.general(0, testutils.AresArmor)

	testCases := []struct {
		scenario entities.Scenario
		expected float64
	}{
		{entities.ScenarioAny, 0},
		{entities.ScenarioAttacking, 0},
		{entities.ScenarioOccupying, 0},
		{entities.ScenarioDefending, 6},
		{entities.ScenarioReinforcing, 6},
	}

	for _, tc := range testCases {
		s.Run(tc.scenario.String(), func() {
			res := engine.ComputeBuffs(g, tc.scenario, entities.StarringMin)
			s.Equal(tc.expected, res.Buffs.Get(entities.GroundDefense))
			s.Equal(tc.expected, res.Buffs.Get(entities.MountedDefense))
		})
	}
}

func (s *EngineTestSuite) TestCatalogSetBonusesByPieceCount() {
	g := s.general(0, testutils.AresBow, testutils.AresArmor, testutils.AresBoots)

	res := engine.ComputeBuffs(g, entities.ScenarioAttacking, entities.StarringMin)
	s.Equal(15.0, res.Buffs.Get(entities.GroundAttack), "bow plus two piece bonus")
	s.Equal(0.0, res.Buffs.Get(entities.SiegeDefense), "four piece bonus is not active")

	g.SetEquipment(equipment.SlotHelmet, s.mustItem(testutils.AresHelmet), 0)
	res = engine.ComputeBuffs(g, entities.ScenarioAttacking, entities.StarringMin)
	for _, troop := range equipment.AllTroops() {
		key, _ := entities.BuffKeyFor(troop, equipment.KindDefense)
		s.Equal(8.0, res.Buffs.Get(key), troop.String())
	}
}

func (s *EngineTestSuite) TestDragonSetNeedsCompanion() {
	g := s.general(0, testutils.DragonArmor, testutils.DragonRing)

	res := engine.ComputeBuffs(g, entities.ScenarioAny, entities.StarringMin)
	s.Equal(0.0, res.Buffs.Get(entities.MountedHp))

	g.SetAnimal(testutils.CreateTestDragon())
	res = engine.ComputeBuffs(g, entities.ScenarioAny, entities.StarringMin)
	s.Equal(6.0, res.Buffs.Get(entities.MountedHp))
}

func (s *EngineTestSuite) TestMaterials() {
	g := s.general(0, testutils.AresBow, testutils.AresArmor, testutils.AresHelmet)

	m := engine.ComputeMaterials(g, false)
	s.Equal(10, m.Lv6[equipment.MaterialIron])
	s.Equal(3, m.Lv7[equipment.MaterialLeather])
	s.Equal(2, m.Lv7[equipment.MaterialPurpleCrystal])
	s.Equal(0, m.Lv7[equipment.MaterialDragonScale])

	withBase := engine.ComputeMaterials(g, true)
	s.Equal(10, withBase.Lv6[equipment.MaterialIron])
	s.Equal(2, withBase.Lv7[equipment.MaterialDragonScale])
	s.Equal(4, withBase.Lv6[equipment.MaterialAnimalBone])
}

func (s *EngineTestSuite) TestMaterialsDropUnknownAndOtherLevels() {
	item := &equipment.Equipment{
		Name: "Odd Ring",
		Slot: equipment.SlotRing,
		Cost: []equipment.MaterialCost{
			{Name: "unobtainium", Level: 6, Quantity: 9},
			{Name: "iron", Level: 5, Quantity: 9},
			{Name: "Iron", Level: 7, Quantity: 1},
		},
	}
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotRing, item, 0)

	m := engine.ComputeMaterials(g, true)
	var expected engine.Materials
	expected.Lv7[equipment.MaterialIron] = 1
	s.Equal(expected, m)
	s.True(engine.ComputeMaterials(entities.NewGeneral(), true).IsZero())
}

func (s *EngineTestSuite) TestMaterialsAdd() {
	var a, b engine.Materials
	a.Lv6[equipment.MaterialWood] = 2
	b.Lv6[equipment.MaterialWood] = 3
	b.Lv7[equipment.MaterialFeather] = 1

	sum := a.Add(b)
	s.Equal(5, sum.Lv6[equipment.MaterialWood])
	s.Equal(1, sum.Lv7[equipment.MaterialFeather])
	s.Equal(2, a.Lv6[equipment.MaterialWood], "receiver is not modified")
}

func (s *EngineTestSuite) TestRefineCeiling() {
	testCases := []struct {
		order    int
		expected int
	}{
		{10, 0},
		{25, 0},
		{26, 15},
		{27, 20},
		{28, 25},
		{33, 25},
		{34, 0},
		{49, 0},
		{50, 30},
		{53, 30},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, engine.RefineCeiling(tc.order), "order %d", tc.order)
	}
}

func (s *EngineTestSuite) TestRefineKind() {
	s.Equal(equipment.KindAttack, engine.RefineKind(equipment.SlotWeapon))
	s.Equal(equipment.KindAttack, engine.RefineKind(equipment.SlotRing))
	s.Equal(equipment.KindDefense, engine.RefineKind(equipment.SlotArmor))
	s.Equal(equipment.KindDefense, engine.RefineKind(equipment.SlotBoots))
	s.Equal(equipment.KindHp, engine.RefineKind(equipment.SlotHelmet))
	s.Equal(equipment.KindHp, engine.RefineKind(equipment.SlotLegArmor))
}

func (s *EngineTestSuite) TestRefineBuffs() {
	g := s.general(0, testutils.DragonArmor, testutils.FurinkazanLegarmor, testutils.FurinkazanRing)

	full := engine.RefineBuffs(g, equipment.TroopSiege, 100)
	s.Equal(60.0, full.Get(entities.SiegeDefense))
	s.Equal(120.0, full.Get(entities.SiegeHp))
	s.Equal(120.0, full.Get(entities.SiegeAttack))
	s.Equal(0.0, full.Get(entities.GroundHp))

	half := engine.RefineBuffs(g, equipment.TroopSiege, 50)
	s.Equal(30.0, half.Get(entities.SiegeDefense))

	s.Equal(full, engine.RefineBuffs(g, equipment.TroopSiege, 250), "percent is clamped")
	s.True(engine.RefineBuffs(g, equipment.TroopSiege, -5).IsZero())
	s.True(engine.RefineBuffs(g, "cavalry", 100).IsZero())
}

func (s *EngineTestSuite) TestRefineLaterSlotWins() {
	ring := s.mustItem(testutils.FurinkazanRing)
	civWeapon := &equipment.Equipment{Name: "Furinkazan Blade", Set: ring.Set, Slot: equipment.SlotWeapon}

	testCases := []struct {
		name     string
		weapon   *equipment.Equipment
		ring     *equipment.Equipment
		expected float64
	}{
		{
			name:     "weapon and ring share attack",
			weapon:   civWeapon,
			ring:     ring,
			expected: 120,
		},
		{
			name:     "ring overwrites a weapon without ceiling",
			weapon:   s.mustItem(testutils.AresBow),
			ring:     ring,
			expected: 120,
		},
		{
			name:     "ring without ceiling overwrites the weapon",
			weapon:   civWeapon,
			ring:     &equipment.Equipment{Name: "Plain Ring", Set: s.mustItem(testutils.AresBow).Set, Slot: equipment.SlotRing},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g := entities.NewGeneral()
			g.SetEquipment(equipment.SlotWeapon, tc.weapon, 0)
			g.SetEquipment(equipment.SlotRing, tc.ring, 0)

			v := engine.RefineBuffs(g, equipment.TroopGround, 100)
			s.Equal(tc.expected, v.Get(entities.GroundAttack))
		})
	}
}

func (s *EngineTestSuite) TestEvaluate() {
	g := s.general(3, testutils.AresBow, testutils.AresArmor)

	out, err := s.engine.Evaluate(s.ctx, &engine.EvaluateInput{
		General:     g,
		Scenario:    entities.ScenarioDefending,
		Starring:    entities.StarringEquipped,
		IncludeBase: true,
		Refine:      &engine.RefineOptions{Troop: equipment.TroopGround, Percent: 100},
	})
	s.Require().NoError(err)

	s.Equal(18.0, out.Buffs.Buffs.Get(entities.GroundAttack))
	s.Equal(9.0, out.Buffs.Buffs.Get(entities.GroundDefense))
	s.Equal(9.0, out.Buffs.Buffs.Get(entities.MountedDefense))
	s.Equal(-7.0, out.Debuffs.Buffs.Get(entities.SiegeAttack))
	s.Equal(10, out.Materials.Lv6[equipment.MaterialIron])
	s.Equal(2, out.Materials.Lv7[equipment.MaterialDragonScale])
	s.True(out.Refine.IsZero(), "Ares has no refine ceiling")
	s.Equal(out.Buffs.Buffs, out.Total)
	s.Equal(engine.Totals{Attack: 18, Defense: 18, Hp: 0}, out.Totals)
	s.Equal("Ares Bow(3)/Ares Armor(3)/null/null/null/null/null", out.Key)
}

func (s *EngineTestSuite) TestEvaluateTotalIncludesRefine() {
	g := s.general(0, testutils.FurinkazanLegarmor)

	out, err := s.engine.Evaluate(s.ctx, &engine.EvaluateInput{
		General:  g,
		Scenario: entities.ScenarioAny,
		Starring: entities.StarringMin,
		Refine:   &engine.RefineOptions{Troop: equipment.TroopSiege, Percent: 100},
	})
	s.Require().NoError(err)

	s.Equal(12.0, out.Buffs.Buffs.Get(entities.SiegeHp))
	s.Equal(120.0, out.Refine.Get(entities.SiegeHp))
	s.Equal(132.0, out.Total.Get(entities.SiegeHp))
	s.Equal(12.0, out.Buffs.Buffs.Get(entities.SiegeHp), "buffs are not modified by the merge")
}

func (s *EngineTestSuite) TestEvaluateExcludedTroops() {
	e, err := engine.New(&engine.Config{ExcludedTroops: []equipment.Troop{equipment.TroopMounted}})
	s.Require().NoError(err)
	g := s.general(0, testutils.AresArmor)

	out, err := e.Evaluate(s.ctx, &engine.EvaluateInput{
		General:  g,
		Scenario: entities.ScenarioDefending,
		Starring: entities.StarringMin,
	})
	s.Require().NoError(err)
	s.Equal(6.0, out.Totals.Defense, "config exclusion applies")

	out, err = e.Evaluate(s.ctx, &engine.EvaluateInput{
		General:        g,
		Scenario:       entities.ScenarioDefending,
		Starring:       entities.StarringMin,
		ExcludedTroops: []equipment.Troop{equipment.TroopGround},
	})
	s.Require().NoError(err)
	s.Equal(6.0, out.Totals.Defense, "request exclusion overrides config")
	s.Equal(12.0, out.Total.Total(equipment.KindDefense))
}

func (s *EngineTestSuite) TestEvaluateRejectsBadInput() {
	g := s.general(0, testutils.AresBow)

	testCases := []struct {
		name  string
		input *engine.EvaluateInput
	}{
		{"nil input", nil},
		{"nil general", &engine.EvaluateInput{Scenario: entities.ScenarioAny, Starring: entities.StarringMin}},
		{"debuffing scenario", &engine.EvaluateInput{General: g, Scenario: entities.ScenarioDebuffing, Starring: entities.StarringMin}},
		{"unknown scenario", &engine.EvaluateInput{General: g, Scenario: "sieging", Starring: entities.StarringMin}},
		{"omitted starring", &engine.EvaluateInput{General: g, Scenario: entities.ScenarioAny}},
		{"unknown refine troop", &engine.EvaluateInput{
			General:  g,
			Scenario: entities.ScenarioAny,
			Starring: entities.StarringMin,
			Refine:   &engine.RefineOptions{Troop: "cavalry", Percent: 10},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.engine.Evaluate(s.ctx, tc.input)
			s.Nil(out)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *EngineTestSuite) mustItem(name string) *equipment.Equipment {
	item, ok := s.catalog.Equipment(name)
	s.Require().True(ok, name)
	return item
}
