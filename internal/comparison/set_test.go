package comparison_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type SetTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	bow     *entities.General
	armor   *entities.General
	boots   *entities.General
	helmet  *entities.General
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetTestSuite))
}

func (s *SetTestSuite) SetupTest() {
	s.catalog = testutils.CreateTestCatalog(s.T())
	s.bow = testutils.CreateTestGeneral(s.T(), s.catalog, 1, testutils.AresBow)
	s.armor = testutils.CreateTestGeneral(s.T(), s.catalog, 1, testutils.AresArmor)
	s.boots = testutils.CreateTestGeneral(s.T(), s.catalog, 1, testutils.AresBoots)
	s.helmet = testutils.CreateTestGeneral(s.T(), s.catalog, 1, testutils.AresHelmet)
}

func (s *SetTestSuite) TestNewCapacity() {
	s.Equal(comparison.DefaultCapacity, comparison.New(0).Capacity())
	s.Equal(comparison.DefaultCapacity, comparison.New(-2).Capacity())
	s.Equal(5, comparison.New(5).Capacity())
}

func (s *SetTestSuite) TestAddRejectsNilAndDuplicates() {
	set := comparison.New(3)

	s.False(set.Add(nil))
	s.True(set.Add(s.bow))
	s.False(set.Add(s.bow))

	restarred := testutils.CreateTestGeneral(s.T(), s.catalog, 4, testutils.AresBow)
	restarred.SetAnimal(testutils.CreateTestDragon())
	s.False(set.Add(restarred), "stars and companion do not make a build distinct")
	s.True(set.Has(restarred))
	s.Equal(1, set.Len())
}

func (s *SetTestSuite) TestAddEvictsOldest() {
	set := comparison.New(3)
	s.True(set.Add(s.bow))
	s.True(set.Add(s.armor))
	s.True(set.Add(s.boots))

	s.True(set.Add(s.helmet))

	s.Equal(3, set.Len())
	s.False(set.Has(s.bow))
	s.Equal([]*entities.General{s.armor, s.boots, s.helmet}, set.All())

	s.True(set.Add(s.bow), "evicted builds can be added again")
}

func (s *SetTestSuite) TestRemove() {
	set := comparison.New(3)
	set.Add(s.bow)
	set.Add(s.armor)
	set.Add(s.boots)

	s.False(set.Remove(-1))
	s.False(set.Remove(3))
	s.True(set.Remove(1))

	s.Equal([]*entities.General{s.bow, s.boots}, set.All())
	s.False(set.Has(s.armor))
	s.True(set.Add(s.armor))
}

func (s *SetTestSuite) TestRemoveExact() {
	set := comparison.New(3)
	set.Add(s.bow)
	set.Add(s.armor)

	s.False(set.RemoveExact(nil))
	s.False(set.RemoveExact(s.boots))
	s.True(set.RemoveExact(testutils.CreateTestGeneral(s.T(), s.catalog, 0, testutils.AresBow)))
	s.Equal([]*entities.General{s.armor}, set.All())
}

func (s *SetTestSuite) TestAt() {
	set := comparison.New(2)
	set.Add(s.bow)

	g, ok := set.At(0)
	s.True(ok)
	s.Same(s.bow, g)

	_, ok = set.At(1)
	s.False(ok)
}

func (s *SetTestSuite) TestAllReturnsCopy() {
	set := comparison.New(2)
	set.Add(s.bow)

	all := set.All()
	all[0] = s.armor

	g, _ := set.At(0)
	s.Same(s.bow, g)
}

func (s *SetTestSuite) TestSetCapacity() {
	set := comparison.New(4)
	set.Add(s.bow)
	set.Add(s.armor)
	set.Add(s.boots)
	set.Add(s.helmet)

	s.Equal(0, set.SetCapacity(0), "ignored")
	s.Equal(4, set.Capacity())

	s.Equal(2, set.SetCapacity(2))
	s.Equal([]*entities.General{s.boots, s.helmet}, set.All())
	s.False(set.Has(s.bow))

	s.Equal(0, set.SetCapacity(6))
	s.Equal(6, set.Capacity())
}
