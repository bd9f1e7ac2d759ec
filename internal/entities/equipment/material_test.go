package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

type MaterialTestSuite struct {
	suite.Suite
}

func TestMaterialSuite(t *testing.T) {
	suite.Run(t, new(MaterialTestSuite))
}

func (s *MaterialTestSuite) TestMaterialFromName() {
	testCases := []struct {
		name     string
		input    string
		expected equipment.Material
	}{
		{"full spelling", "purple crystal", equipment.MaterialPurpleCrystal},
		{"concatenated spelling", "bluestone", equipment.MaterialBlueStone},
		{"short spelling", "agate", equipment.MaterialRedAgate},
		{"mixed case", "Silver Pearl", equipment.MaterialSilverPearl},
		{"meteor", "meteor", equipment.MaterialMeteorolite},
		{"iron", "IRON", equipment.MaterialIron},
		{"animal bone", "animalbone", equipment.MaterialAnimalBone},
		{"dragon scale", "scale", equipment.MaterialDragonScale},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, ok := equipment.MaterialFromName(tc.input)
			s.Require().True(ok)
			s.Equal(tc.expected, m)
		})
	}
}

func (s *MaterialTestSuite) TestCanonicalOrder() {
	s.Equal(5, int(equipment.MaterialIron))
	s.Equal(11, int(equipment.MaterialDragonScale))
	s.Len(equipment.AllMaterials(), equipment.MaterialCount)
	s.Equal("animal bone", equipment.MaterialAnimalBone.String())
}

func (s *MaterialTestSuite) TestUnknownMaterial() {
	_, ok := equipment.MaterialFromName("mithril")
	s.False(ok)
	s.Equal("unknown", equipment.Material(42).String())
}

func (s *MaterialTestSuite) TestEverySpellingResolves() {
	spellings := equipment.MaterialSpellings()
	s.Len(spellings, 25)
	for _, sp := range spellings {
		_, ok := equipment.MaterialFromName(sp)
		s.True(ok, sp)
	}
}

func (s *MaterialTestSuite) TestSlotIndexRoundTrip() {
	for i, slot := range equipment.AllSlots() {
		s.Equal(i, slot.Index())
		back, ok := equipment.SlotFromIndex(i)
		s.True(ok)
		s.Equal(slot, back)
	}
	_, ok := equipment.SlotFromIndex(6)
	s.False(ok)
}

func (s *MaterialTestSuite) TestAnimalIsDragon() {
	var none *equipment.Animal
	s.False(none.IsDragon())
	s.True((&equipment.Animal{Type: equipment.AnimalTypeDragon}).IsDragon())
	s.True((&equipment.Animal{Type: equipment.AnimalTypeSacredDragon}).IsDragon())
	s.False((&equipment.Animal{Type: "wolf"}).IsDragon())
}
