package builds_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type InMemoryTestSuite struct {
	RepositoryTestSuite
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &InMemoryTestSuite{RepositoryTestSuite{
		newRepo: func() builds.Repository { return builds.NewInMemory() },
	}})
}

func (s *InMemoryTestSuite) TestStoredCopiesAreIsolated() {
	b := s.build("iso", testutils.TestOwnerID, 0)
	_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: b})
	s.Require().NoError(err)

	b.Slots[0].Stars = 0
	b.Animal.Name = "changed"

	got, err := s.repo.Get(s.ctx, builds.GetInput{ID: "iso"})
	s.Require().NoError(err)
	s.Equal(3, got.Build.Slots[0].Stars)
	s.Equal("Fafnir", got.Build.Animal.Name)

	got.Build.Slots[0].Stars = 1
	again, err := s.repo.Get(s.ctx, builds.GetInput{ID: "iso"})
	s.Require().NoError(err)
	s.Equal(3, again.Build.Slots[0].Stars)
}
