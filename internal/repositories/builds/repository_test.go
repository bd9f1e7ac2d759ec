package builds_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() builds.Repository
	repo    builds.Repository
	ctx     context.Context
	now     time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) build(id, owner string, offset time.Duration) *entities.Build {
	return &entities.Build{
		ID:      id,
		OwnerID: owner,
		Name:    "siege " + id,
		Slots: []entities.BuildSlot{
			{Slot: equipment.SlotWeapon, Item: testutils.AresBow, Stars: 3},
			{Slot: equipment.SlotRing, Item: testutils.FurinkazanRing, Stars: 5},
		},
		Animal:    testutils.CreateTestDragon(),
		CreatedAt: s.now.Add(offset),
		UpdatedAt: s.now.Add(offset),
	}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	b := s.build("b1", testutils.TestOwnerID, 0)

	created, err := s.repo.Create(s.ctx, builds.CreateInput{Build: b})
	s.Require().NoError(err)
	s.Equal(b.ID, created.Build.ID)

	got, err := s.repo.Get(s.ctx, builds.GetInput{ID: "b1"})
	s.Require().NoError(err)
	s.Equal(b, got.Build)
}

func (s *RepositoryTestSuite) TestCreateWithoutAnimalOrSlots() {
	b := s.build("bare", testutils.TestOwnerID, 0)
	b.Animal = nil
	b.Slots = nil

	_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: b})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, builds.GetInput{ID: "bare"})
	s.Require().NoError(err)
	s.Nil(got.Build.Animal)
	s.Empty(got.Build.Slots)
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		build *entities.Build
	}{
		{"nil build", nil},
		{"empty id", &entities.Build{OwnerID: testutils.TestOwnerID}},
		{"empty owner", &entities.Build{ID: "b1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: tc.build})
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: s.build("dup", testutils.TestOwnerID, 0)})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, builds.CreateInput{Build: s.build("dup", "someone-else", 0)})
	s.True(errors.IsAlreadyExists(err), "got %v", err)
}

func (s *RepositoryTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, builds.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, builds.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestListByOwnerOldestFirst() {
	for _, b := range []*entities.Build{
		s.build("late", testutils.TestOwnerID, 2*time.Hour),
		s.build("early", testutils.TestOwnerID, time.Hour),
		s.build("other", "owner-other", 0),
	} {
		_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: b})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, builds.ListInput{OwnerID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Require().Len(out.Builds, 2)
	s.Equal("early", out.Builds[0].ID)
	s.Equal("late", out.Builds[1].ID)

	out, err = s.repo.List(s.ctx, builds.ListInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Builds)

	_, err = s.repo.List(s.ctx, builds.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, builds.CreateInput{Build: s.build("gone", testutils.TestOwnerID, 0)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, builds.DeleteInput{ID: "gone"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, builds.GetInput{ID: "gone"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, builds.ListInput{OwnerID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Empty(out.Builds)

	_, err = s.repo.Delete(s.ctx, builds.DeleteInput{ID: "gone"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, builds.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
