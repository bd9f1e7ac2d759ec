// Package configurator implements the session oriented build configurator service
package configurator

//go:generate mockgen -destination=mock/mock_service.go -package=configuratormock github.com/KirkDiggler/general-configurator/internal/orchestrators/configurator Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/pkg/clock"
	"github.com/KirkDiggler/general-configurator/internal/pkg/idgen"
	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
)

// DefaultRecommendWorkers bounds concurrent evaluations of a recommendation
const DefaultRecommendWorkers = 4

// Service defines the configurator operations
type Service interface {
	// Sessions
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// Build editing
	SetEquipment(ctx context.Context, input *SetEquipmentInput) (*SetEquipmentOutput, error)
	SetAnimal(ctx context.Context, input *SetAnimalInput) (*SetAnimalOutput, error)
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)
	RandomizeSession(ctx context.Context, input *RandomizeSessionInput) (*RandomizeSessionOutput, error)

	// Evaluation
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
	RecommendPiece(ctx context.Context, input *RecommendPieceInput) (*RecommendPieceOutput, error)
	ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error)

	// Comparison
	AddToComparison(ctx context.Context, input *AddToComparisonInput) (*AddToComparisonOutput, error)
	RemoveFromComparison(ctx context.Context, input *RemoveFromComparisonInput) (*RemoveFromComparisonOutput, error)
	RestoreFromComparison(ctx context.Context, input *RestoreFromComparisonInput) (*RestoreFromComparisonOutput, error)
	SetComparisonCapacity(ctx context.Context, input *SetComparisonCapacityInput) (*SetComparisonCapacityOutput, error)
	GetComparison(ctx context.Context, input *GetComparisonInput) (*GetComparisonOutput, error)

	// Saved builds
	SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error)
	LoadBuild(ctx context.Context, input *LoadBuildInput) (*LoadBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)
	DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error)
}

// Config holds the dependencies for the configurator orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	Engine      engine.Engine
	BuildRepo   builds.Repository
	IDGenerator idgen.Generator

	// Optional
	Clock              clock.Clock
	Sampler            *catalog.Sampler
	ComparisonCapacity int
	RecommendWorkers   int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ComparisonCapacity < 0 {
		vb.Field("ComparisonCapacity", "cannot be negative")
	}
	if c.RecommendWorkers < 0 {
		vb.Field("RecommendWorkers", "cannot be negative")
	}

	return vb.Build()
}

type session struct {
	id         string
	ownerID    string
	general    *entities.General
	comparison *comparison.Set
	updatedAt  time.Time
}

type orchestrator struct {
	catalog   *catalog.Catalog
	engine    engine.Engine
	buildRepo builds.Repository
	idGen     idgen.Generator
	clock     clock.Clock
	sampler   *catalog.Sampler

	comparisonCapacity int
	recommendWorkers   int

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewOrchestrator creates a configurator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		catalog:            cfg.Catalog,
		engine:             cfg.Engine,
		buildRepo:          cfg.BuildRepo,
		idGen:              cfg.IDGenerator,
		clock:              cfg.Clock,
		sampler:            cfg.Sampler,
		comparisonCapacity: cfg.ComparisonCapacity,
		recommendWorkers:   cfg.RecommendWorkers,
		sessions:           make(map[string]*session),
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.comparisonCapacity == 0 {
		o.comparisonCapacity = comparison.DefaultCapacity
	}
	if o.recommendWorkers == 0 {
		o.recommendWorkers = DefaultRecommendWorkers
	}
	if o.sampler == nil {
		sampler, err := catalog.NewSampler(cfg.Catalog, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create sampler")
		}
		o.sampler = sampler
	}

	return o, nil
}

// CreateSession starts an empty session, or one seeded from a saved build
func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	general := entities.NewGeneral()
	if input.BuildID != "" {
		g, err := o.resolveOwnedBuild(ctx, input.OwnerID, input.BuildID)
		if err != nil {
			return nil, err
		}
		general = g
	}

	sess := &session{
		id:         o.idGen.Generate(),
		ownerID:    input.OwnerID,
		general:    general,
		comparison: comparison.New(o.comparisonCapacity),
		updatedAt:  o.clock.Now(),
	}

	o.mu.Lock()
	o.sessions[sess.id] = sess
	o.mu.Unlock()

	slog.Info("Session created",
		"session_id", sess.id,
		"owner_id", sess.ownerID,
		"build_id", input.BuildID,
	)

	return &CreateSessionOutput{Session: o.snapshot(sess)}, nil
}

// GetSession returns the current state of a session
func (o *orchestrator) GetSession(_ context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *Session
	err := o.readSession(input.SessionID, func(sess *session) error {
		out = o.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: out}, nil
}

// CloseSession discards a session
func (o *orchestrator) CloseSession(_ context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.sessions[input.SessionID]; !ok {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	delete(o.sessions, input.SessionID)

	slog.Info("Session closed", "session_id", input.SessionID)
	return &CloseSessionOutput{}, nil
}

// SetEquipment equips a catalog item in a slot, or clears the slot
func (o *orchestrator) SetEquipment(_ context.Context, input *SetEquipmentInput) (*SetEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %s", input.Slot)
	}
	if input.Stars < 0 || input.Stars > entities.MaxStars {
		return nil, errors.InvalidArgumentf("stars must be between 0 and %d", entities.MaxStars).
			WithMeta("stars", input.Stars)
	}

	var item *equipment.Equipment
	if input.ItemName != "" {
		found, ok := o.catalog.Equipment(input.ItemName)
		if !ok {
			return nil, errors.NotFoundf("equipment not found: %s", input.ItemName)
		}
		if found.Slot != input.Slot {
			return nil, errors.InvalidArgumentf("%s does not fit slot %s", found.Name, input.Slot)
		}
		item = found
	}

	var out *Session
	err := o.updateSession(input.SessionID, func(sess *session) {
		stars := input.Stars
		if item == nil {
			stars = 0
		}
		sess.general.SetEquipment(input.Slot, item, stars)
		out = o.snapshot(sess)
	})
	if err != nil {
		return nil, err
	}
	return &SetEquipmentOutput{Session: out}, nil
}

// SetAnimal sets or clears the companion
func (o *orchestrator) SetAnimal(_ context.Context, input *SetAnimalInput) (*SetAnimalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var animal *equipment.Animal
	if input.Animal != nil {
		if input.Animal.Name == "" {
			return nil, errors.InvalidArgument("animal name is required")
		}
		a := *input.Animal
		animal = &a
	}

	var out *Session
	err := o.updateSession(input.SessionID, func(sess *session) {
		sess.general.SetAnimal(animal)
		out = o.snapshot(sess)
	})
	if err != nil {
		return nil, err
	}
	return &SetAnimalOutput{Session: out}, nil
}

// ResetSession empties the build, keeping the comparison
func (o *orchestrator) ResetSession(_ context.Context, input *ResetSessionInput) (*ResetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *Session
	err := o.updateSession(input.SessionID, func(sess *session) {
		sess.general.Reset()
		out = o.snapshot(sess)
	})
	if err != nil {
		return nil, err
	}
	return &ResetSessionOutput{Session: out}, nil
}

// RandomizeSession replaces the items with a random build, keeping the companion
func (o *orchestrator) RandomizeSession(_ context.Context, input *RandomizeSessionInput) (*RandomizeSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	random, err := o.sampler.RandomGeneral()
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll build")
	}

	var out *Session
	err = o.updateSession(input.SessionID, func(sess *session) {
		random.SetAnimal(sess.general.Animal())
		sess.general = random
		out = o.snapshot(sess)
	})
	if err != nil {
		return nil, err
	}
	return &RandomizeSessionOutput{Session: out}, nil
}

// GetStats evaluates the session's build
func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	general, err := o.cloneGeneral(input.SessionID)
	if err != nil {
		return nil, err
	}

	stats, err := o.engine.Evaluate(ctx, &engine.EvaluateInput{
		General:        general,
		Scenario:       input.Scenario,
		Starring:       input.Starring,
		IncludeBase:    input.IncludeBase,
		Refine:         input.Refine,
		ExcludedTroops: input.ExcludedTroops,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate build")
	}

	return &GetStatsOutput{Stats: stats}, nil
}

// RecommendPiece evaluates every catalog item of a slot in place of the current
// one and ranks them by score gain
func (o *orchestrator) RecommendPiece(ctx context.Context, input *RecommendPieceInput) (*RecommendPieceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %s", input.Slot)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	general, err := o.cloneGeneral(input.SessionID)
	if err != nil {
		return nil, err
	}

	evaluate := func(ctx context.Context, g *entities.General) (float64, error) {
		out, err := o.engine.Evaluate(ctx, &engine.EvaluateInput{
			General:  g,
			Scenario: input.Scenario,
			Starring: input.Starring,
		})
		if err != nil {
			return 0, err
		}
		return engine.Score(out.Buffs.Buffs, input.Troops...), nil
	}

	baseScore, err := evaluate(ctx, general)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate current build")
	}

	candidates := o.catalog.EquipmentsForSlot(input.Slot)
	stars := general.Stars(input.Slot)
	recs := make([]*Recommendation, len(candidates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.recommendWorkers)
	for i, item := range candidates {
		eg.Go(func() error {
			trial := general.Clone()
			trial.SetEquipment(input.Slot, item, stars)

			score, err := evaluate(egCtx, trial)
			if err != nil {
				return errors.Wrapf(err, "failed to evaluate %s", item.Name)
			}
			recs[i] = &Recommendation{
				Item:  item.Name,
				Set:   item.SetName(),
				Score: score,
				Gain:  score - baseScore,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Item < recs[j].Item
	})
	if input.Limit > 0 && len(recs) > input.Limit {
		recs = recs[:input.Limit]
	}

	slog.Debug("Recommendations computed",
		"session_id", input.SessionID,
		"slot", input.Slot,
		"candidates", len(candidates),
	)

	return &RecommendPieceOutput{BaseScore: baseScore, Recommendations: recs}, nil
}

// ListEquipment browses the catalog
func (o *orchestrator) ListEquipment(_ context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Slot == "" {
		return &ListEquipmentOutput{Equipments: o.catalog.Equipments()}, nil
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("unknown slot: %s", input.Slot)
	}
	return &ListEquipmentOutput{Equipments: o.catalog.EquipmentsForSlot(input.Slot)}, nil
}

// AddToComparison snapshots the build, with the stand-in dragon, into the comparison
func (o *orchestrator) AddToComparison(_ context.Context, input *AddToComparisonInput) (*AddToComparisonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *AddToComparisonOutput
	err := o.updateSessionErr(input.SessionID, func(sess *session) error {
		if sess.general.IsEmpty() {
			return errors.FailedPrecondition("build has no equipment")
		}
		added := sess.comparison.Add(comparison.WithDummyDragon(sess.general))
		out = &AddToComparisonOutput{Added: added, Count: sess.comparison.Len()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveFromComparison drops the compared build at an index
func (o *orchestrator) RemoveFromComparison(_ context.Context, input *RemoveFromComparisonInput) (*RemoveFromComparisonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var count int
	err := o.updateSessionErr(input.SessionID, func(sess *session) error {
		if !sess.comparison.Remove(input.Index) {
			return errors.InvalidArgumentf("no compared build at index %d", input.Index)
		}
		count = sess.comparison.Len()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RemoveFromComparisonOutput{Count: count}, nil
}

// RestoreFromComparison copies a compared build's items back into the session.
// The session keeps its own companion.
func (o *orchestrator) RestoreFromComparison(_ context.Context, input *RestoreFromComparisonInput) (*RestoreFromComparisonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *Session
	err := o.updateSessionErr(input.SessionID, func(sess *session) error {
		compared, ok := sess.comparison.At(input.Index)
		if !ok {
			return errors.InvalidArgumentf("no compared build at index %d", input.Index)
		}
		restored := compared.Clone()
		restored.SetAnimal(sess.general.Animal())
		sess.general = restored
		out = o.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RestoreFromComparisonOutput{Session: out}, nil
}

// SetComparisonCapacity resizes the comparison
func (o *orchestrator) SetComparisonCapacity(_ context.Context, input *SetComparisonCapacityInput) (*SetComparisonCapacityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Capacity < 1 {
		return nil, errors.InvalidArgument("capacity must be at least 1")
	}

	var removed int
	err := o.updateSession(input.SessionID, func(sess *session) {
		removed = sess.comparison.SetCapacity(input.Capacity)
	})
	if err != nil {
		return nil, err
	}
	return &SetComparisonCapacityOutput{Removed: removed}, nil
}

// GetComparison computes the comparison table at max starring
func (o *orchestrator) GetComparison(_ context.Context, input *GetComparisonInput) (*GetComparisonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Scenario.IsValid() {
		return nil, errors.InvalidArgumentf("unknown scenario: %s", input.Scenario)
	}
	if input.Refine != nil && !input.Refine.Troop.IsValid() {
		return nil, errors.InvalidArgumentf("unknown refine troop: %s", input.Refine.Troop)
	}

	var (
		generals []*entities.General
		capacity int
	)
	err := o.readSession(input.SessionID, func(sess *session) error {
		generals = sess.comparison.All()
		capacity = sess.comparison.Capacity()
		return nil
	})
	if err != nil {
		return nil, err
	}

	table := comparison.BuildTable(generals, comparison.TableOptions{
		Scenario:       input.Scenario,
		Refine:         input.Refine,
		ExcludedTroops: input.ExcludedTroops,
		IncludeBase:    input.IncludeBase,
	})
	return &GetComparisonOutput{Table: table, Capacity: capacity}, nil
}

// SaveBuild persists the session's build under a new ID
func (o *orchestrator) SaveBuild(ctx context.Context, input *SaveBuildInput) (*SaveBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var build *entities.Build
	err := o.readSession(input.SessionID, func(sess *session) error {
		if sess.general.IsEmpty() {
			return errors.FailedPrecondition("build has no equipment")
		}
		now := o.clock.Now()
		build = &entities.Build{
			ID:        o.idGen.Generate(),
			OwnerID:   sess.ownerID,
			Name:      input.Name,
			Slots:     entities.SlotsFromGeneral(sess.general),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if animal := sess.general.Animal(); animal != nil {
			a := *animal
			build.Animal = &a
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := o.buildRepo.Create(ctx, builds.CreateInput{Build: build})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save build")
	}

	slog.Info("Build saved",
		"session_id", input.SessionID,
		"build_id", build.ID,
		"owner_id", build.OwnerID,
	)
	return &SaveBuildOutput{Build: out.Build}, nil
}

// LoadBuild replaces the session's build with a saved one of the same owner
func (o *orchestrator) LoadBuild(ctx context.Context, input *LoadBuildInput) (*LoadBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	var ownerID string
	err := o.readSession(input.SessionID, func(sess *session) error {
		ownerID = sess.ownerID
		return nil
	})
	if err != nil {
		return nil, err
	}

	general, err := o.resolveOwnedBuild(ctx, ownerID, input.BuildID)
	if err != nil {
		return nil, err
	}

	var out *Session
	err = o.updateSession(input.SessionID, func(sess *session) {
		sess.general = general
		out = o.snapshot(sess)
	})
	if err != nil {
		return nil, err
	}
	return &LoadBuildOutput{Session: out}, nil
}

// ListBuilds returns an owner's saved builds
func (o *orchestrator) ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.buildRepo.List(ctx, builds.ListInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list builds")
	}
	return &ListBuildsOutput{Builds: out.Builds}, nil
}

// DeleteBuild removes a saved build of the owner
func (o *orchestrator) DeleteBuild(ctx context.Context, input *DeleteBuildInput) (*DeleteBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.BuildID == "" {
		return nil, errors.InvalidArgument("build ID is required")
	}

	got, err := o.buildRepo.Get(ctx, builds.GetInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}
	if got.Build.OwnerID != input.OwnerID {
		return nil, errors.PermissionDeniedf("build %s belongs to another owner", input.BuildID)
	}

	if _, err := o.buildRepo.Delete(ctx, builds.DeleteInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete build")
	}

	slog.Info("Build deleted", "build_id", input.BuildID, "owner_id", input.OwnerID)
	return &DeleteBuildOutput{}, nil
}

func (o *orchestrator) resolveOwnedBuild(ctx context.Context, ownerID, buildID string) (*entities.General, error) {
	got, err := o.buildRepo.Get(ctx, builds.GetInput{ID: buildID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}
	if got.Build.OwnerID != ownerID {
		return nil, errors.PermissionDeniedf("build %s belongs to another owner", buildID)
	}

	general, err := o.catalog.ResolveBuild(got.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve build %s", buildID)
	}
	return general, nil
}

// readSession runs fn under the read lock
func (o *orchestrator) readSession(id string, fn func(*session) error) error {
	if id == "" {
		return errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	sess, ok := o.sessions[id]
	if !ok {
		return errors.NotFoundf("session %s not found", id)
	}
	return fn(sess)
}

// updateSessionErr runs fn under the write lock and stamps the session when fn succeeds
func (o *orchestrator) updateSessionErr(id string, fn func(*session) error) error {
	if id == "" {
		return errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sess, ok := o.sessions[id]
	if !ok {
		return errors.NotFoundf("session %s not found", id)
	}
	// stamp first so snapshots taken inside fn carry the new time
	previous := sess.updatedAt
	sess.updatedAt = o.clock.Now()
	if err := fn(sess); err != nil {
		sess.updatedAt = previous
		return err
	}
	return nil
}

func (o *orchestrator) updateSession(id string, fn func(*session)) error {
	return o.updateSessionErr(id, func(sess *session) error {
		fn(sess)
		return nil
	})
}

func (o *orchestrator) cloneGeneral(id string) (*entities.General, error) {
	var g *entities.General
	err := o.readSession(id, func(sess *session) error {
		g = sess.general.Clone()
		return nil
	})
	return g, err
}

// snapshot must be called with the lock held
func (o *orchestrator) snapshot(sess *session) *Session {
	out := &Session{
		ID:                 sess.id,
		OwnerID:            sess.ownerID,
		Slots:              entities.SlotsFromGeneral(sess.general),
		Key:                sess.general.StringKey(true, entities.StarringEquipped),
		ComparisonCount:    sess.comparison.Len(),
		ComparisonCapacity: sess.comparison.Capacity(),
		UpdatedAt:          sess.updatedAt,
	}
	if animal := sess.general.Animal(); animal != nil {
		a := *animal
		out.Animal = &a
	}
	return out
}
