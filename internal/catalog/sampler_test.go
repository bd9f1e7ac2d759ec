package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

// fixedRoller always rolls the same face, capped at the die size
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	if r.face > size {
		return size, nil
	}
	return r.face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type SamplerTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerTestSuite))
}

func (s *SamplerTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog(s.T())
}

func (s *SamplerTestSuite) TestFirstFacePicksFirstItem() {
	sampler, err := catalog.NewSampler(s.catalog, &fixedRoller{face: 1})
	s.Require().NoError(err)

	g, err := sampler.RandomGeneral()
	s.Require().NoError(err)

	s.Equal(testutils.AresBow, g.Equipment(equipment.SlotWeapon).Name)
	s.Equal(testutils.DragonRing, g.Equipment(equipment.SlotRing).Name)
	s.Equal(0, g.Stars(equipment.SlotWeapon))
}

func (s *SamplerTestSuite) TestLastFaceLeavesSlotsEmpty() {
	sampler, err := catalog.NewSampler(s.catalog, &fixedRoller{face: 100})
	s.Require().NoError(err)

	g, err := sampler.RandomGeneral()
	s.Require().NoError(err)
	s.True(g.IsEmpty())
}

func (s *SamplerTestSuite) TestCivilizationItemsHaveNoStars() {
	sampler, err := catalog.NewSampler(s.catalog, &fixedRoller{face: 2})
	s.Require().NoError(err)

	g, err := sampler.RandomGeneral()
	s.Require().NoError(err)

	ring := g.Equipment(equipment.SlotRing)
	s.Require().NotNil(ring)
	s.Equal(testutils.FurinkazanRing, ring.Name)
	s.Equal(0, g.Stars(equipment.SlotRing))
}

func (s *SamplerTestSuite) TestDefaultRoller() {
	sampler, err := catalog.NewSampler(s.catalog, nil)
	s.Require().NoError(err)

	g, err := sampler.RandomGeneral()
	s.Require().NoError(err)
	for i, item := range g.Equipments() {
		if item != nil {
			slot, _ := equipment.SlotFromIndex(i)
			s.Equal(slot, item.Slot)
		}
	}
}

func (s *SamplerTestSuite) TestRequiresCatalog() {
	_, err := catalog.NewSampler(nil, nil)
	s.Error(err)
}
