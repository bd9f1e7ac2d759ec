package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

type GeneralTestSuite struct {
	suite.Suite
	bow    *equipment.Equipment
	armor  *equipment.Equipment
	dragon *equipment.Animal
}

func TestGeneralSuite(t *testing.T) {
	suite.Run(t, new(GeneralTestSuite))
}

func (s *GeneralTestSuite) SetupTest() {
	ares := &equipment.Set{Name: "Ares", Order: 10}
	s.bow = &equipment.Equipment{Name: "Ares Bow", Set: ares, Slot: equipment.SlotWeapon}
	s.armor = &equipment.Equipment{Name: "Ares Armor", Set: ares, Slot: equipment.SlotArmor}
	s.dragon = &equipment.Animal{Name: "Fafnir", Type: equipment.AnimalTypeDragon}
}

func (s *GeneralTestSuite) TestNewGeneralIsEmpty() {
	g := entities.NewGeneral()

	s.True(g.IsEmpty())
	s.Nil(g.Animal())
	for _, item := range g.Equipments() {
		s.Nil(item)
	}
}

func (s *GeneralTestSuite) TestSetEquipment() {
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotWeapon, s.bow, 3)

	s.Equal(s.bow, g.Equipment(equipment.SlotWeapon))
	s.Equal(3, g.Stars(equipment.SlotWeapon))
	s.Equal(s.bow, g.Equipments()[0])
	s.False(g.IsEmpty())

	s.Run("stores out of range stars untouched", func() {
		g.SetEquipment(equipment.SlotArmor, s.armor, 9)
		s.Equal(9, g.Stars(equipment.SlotArmor))
	})

	s.Run("clears a slot with nil", func() {
		g.SetEquipment(equipment.SlotWeapon, nil, 0)
		s.Nil(g.Equipment(equipment.SlotWeapon))
	})

	s.Run("ignores unknown slots", func() {
		g.SetEquipment(equipment.Slot("cape"), s.bow, 1)
		s.Nil(g.Equipment(equipment.Slot("cape")))
	})
}

func (s *GeneralTestSuite) TestCloneIsolation() {
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotWeapon, s.bow, 3)
	g.SetAnimal(s.dragon)

	clone := g.Clone()
	g.SetEquipment(equipment.SlotWeapon, nil, 0)
	g.SetEquipment(equipment.SlotArmor, s.armor, 2)

	s.Same(s.bow, clone.Equipment(equipment.SlotWeapon))
	s.Equal(3, clone.Stars(equipment.SlotWeapon))
	s.Nil(clone.Equipment(equipment.SlotArmor))
	s.Same(s.dragon, clone.Animal())
}

func (s *GeneralTestSuite) TestReset() {
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotWeapon, s.bow, 3)
	g.SetAnimal(s.dragon)

	g.Reset()

	s.True(g.IsEmpty())
	s.Nil(g.Animal())
	s.Equal(0, g.Stars(equipment.SlotWeapon))
}

func (s *GeneralTestSuite) TestStringKey() {
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotWeapon, s.bow, 3)
	g.SetEquipment(equipment.SlotArmor, s.armor, 7)

	testCases := []struct {
		name          string
		includeAnimal bool
		animal        *equipment.Animal
		starring      entities.StarringMode
		expected      string
	}{
		{
			name:     "omit stars",
			starring: entities.StarringOmit,
			expected: "Ares Bow/Ares Armor/null/null/null/null/",
		},
		{
			name:     "min stars",
			starring: entities.StarringMin,
			expected: "Ares Bow(0)/Ares Armor(0)/null/null/null/null/",
		},
		{
			name:     "equipped stars are clamped",
			starring: entities.StarringEquipped,
			expected: "Ares Bow(3)/Ares Armor(5)/null/null/null/null/",
		},
		{
			name:     "max stars",
			starring: entities.StarringMax,
			expected: "Ares Bow(5)/Ares Armor(5)/null/null/null/null/",
		},
		{
			name:          "animal included",
			includeAnimal: true,
			animal:        s.dragon,
			starring:      entities.StarringEquipped,
			expected:      "Ares Bow(3)/Ares Armor(5)/null/null/null/null/Fafnir",
		},
		{
			name:          "missing animal included as null",
			includeAnimal: true,
			starring:      entities.StarringOmit,
			expected:      "Ares Bow/Ares Armor/null/null/null/null/null",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g.SetAnimal(tc.animal)
			s.Equal(tc.expected, g.StringKey(tc.includeAnimal, tc.starring))
		})
	}
}

func (s *GeneralTestSuite) TestComparisonKeyIgnoresStarsAndAnimal() {
	a := entities.NewGeneral()
	a.SetEquipment(equipment.SlotWeapon, s.bow, 1)

	b := entities.NewGeneral()
	b.SetEquipment(equipment.SlotWeapon, s.bow, 5)
	b.SetAnimal(s.dragon)

	s.Equal(a.ComparisonKey(), b.ComparisonKey())
}

func (s *GeneralTestSuite) TestParseStars() {
	s.Equal(3, entities.ParseStars("3"))
	s.Equal(4, entities.ParseStars(" 4 "))
	s.Equal(0, entities.ParseStars("three"))
	s.Equal(0, entities.ParseStars(""))
}

func (s *GeneralTestSuite) TestClampStars() {
	s.Equal(0, entities.ClampStars(-2))
	s.Equal(2, entities.ClampStars(2))
	s.Equal(entities.MaxStars, entities.ClampStars(12))
}

func (s *GeneralTestSuite) TestSlotsFromGeneral() {
	g := entities.NewGeneral()
	g.SetEquipment(equipment.SlotArmor, s.armor, 2)
	g.SetEquipment(equipment.SlotWeapon, s.bow, 4)

	s.Equal([]entities.BuildSlot{
		{Slot: equipment.SlotWeapon, Item: "Ares Bow", Stars: 4},
		{Slot: equipment.SlotArmor, Item: "Ares Armor", Stars: 2},
	}, entities.SlotsFromGeneral(g))
}
