// Package v1alpha1 handles the configurator grpc service interface
package v1alpha1

import (
	"context"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/orchestrators/configurator"
)

// HandlerConfig holds dependencies for the configurator handler
type HandlerConfig struct {
	ConfiguratorService configurator.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ConfiguratorService == nil {
		return errors.InvalidArgument("configurator service is required")
	}
	return nil
}

// Handler implements the configurator gRPC service
type Handler struct {
	configuratorv1alpha1.UnimplementedConfiguratorServiceServer
	service configurator.Service
}

var _ configuratorv1alpha1.ConfiguratorServiceServer = (*Handler)(nil)

// NewHandler creates a new configurator handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.ConfiguratorService}, nil
}

// CreateSession starts a configurator session
func (h *Handler) CreateSession(
	ctx context.Context,
	req *configuratorv1alpha1.CreateSessionRequest,
) (*configuratorv1alpha1.CreateSessionResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.CreateSession(ctx, &configurator.CreateSessionInput{
		OwnerID: req.OwnerId,
		BuildID: req.BuildId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.CreateSessionResponse{Session: convertSession(out.Session)}, nil
}

// GetSession returns a session
func (h *Handler) GetSession(
	ctx context.Context,
	req *configuratorv1alpha1.GetSessionRequest,
) (*configuratorv1alpha1.GetSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.GetSession(ctx, &configurator.GetSessionInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.GetSessionResponse{Session: convertSession(out.Session)}, nil
}

// CloseSession discards a session
func (h *Handler) CloseSession(
	ctx context.Context,
	req *configuratorv1alpha1.CloseSessionRequest,
) (*configuratorv1alpha1.CloseSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.service.CloseSession(ctx, &configurator.CloseSessionInput{SessionID: req.SessionId}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.CloseSessionResponse{}, nil
}

// SetEquipment equips or clears a slot
func (h *Handler) SetEquipment(
	ctx context.Context,
	req *configuratorv1alpha1.SetEquipmentRequest,
) (*configuratorv1alpha1.SetEquipmentResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	slot, err := parseSlot(req.Slot)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SetEquipment(ctx, &configurator.SetEquipmentInput{
		SessionID: req.SessionId,
		Slot:      slot,
		ItemName:  req.Item,
		Stars:     int(req.Stars),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.SetEquipmentResponse{Session: convertSession(out.Session)}, nil
}

// SetAnimal sets or clears the companion
func (h *Handler) SetAnimal(
	ctx context.Context,
	req *configuratorv1alpha1.SetAnimalRequest,
) (*configuratorv1alpha1.SetAnimalResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.SetAnimal(ctx, &configurator.SetAnimalInput{
		SessionID: req.SessionId,
		Animal:    convertAnimalToEntity(req.Animal),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.SetAnimalResponse{Session: convertSession(out.Session)}, nil
}

// ResetSession empties the build
func (h *Handler) ResetSession(
	ctx context.Context,
	req *configuratorv1alpha1.ResetSessionRequest,
) (*configuratorv1alpha1.ResetSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.ResetSession(ctx, &configurator.ResetSessionInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.ResetSessionResponse{Session: convertSession(out.Session)}, nil
}

// RandomizeSession rolls a random build
func (h *Handler) RandomizeSession(
	ctx context.Context,
	req *configuratorv1alpha1.RandomizeSessionRequest,
) (*configuratorv1alpha1.RandomizeSessionResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.RandomizeSession(ctx, &configurator.RandomizeSessionInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.RandomizeSessionResponse{Session: convertSession(out.Session)}, nil
}

// GetStats evaluates the session's build. Scenario defaults to any and starring to equipped.
func (h *Handler) GetStats(
	ctx context.Context,
	req *configuratorv1alpha1.GetStatsRequest,
) (*configuratorv1alpha1.GetStatsResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	scenario, err := parseScenario(req.Scenario)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	starring, err := parseStarring(req.Starring)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	refine, err := parseRefine(req.Refine)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	excluded, err := parseTroops(req.ExcludedTroops)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetStats(ctx, &configurator.GetStatsInput{
		SessionID:      req.SessionId,
		Scenario:       scenario,
		Starring:       starring,
		IncludeBase:    req.IncludeBase,
		Refine:         refine,
		ExcludedTroops: excluded,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.GetStatsResponse{Stats: convertStats(out.Stats)}, nil
}

// RecommendPiece ranks the catalog items of a slot
func (h *Handler) RecommendPiece(
	ctx context.Context,
	req *configuratorv1alpha1.RecommendPieceRequest,
) (*configuratorv1alpha1.RecommendPieceResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	slot, err := parseSlot(req.Slot)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	scenario, err := parseScenario(req.Scenario)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	starring, err := parseStarring(req.Starring)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	troops, err := parseTroops(req.Troops)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.RecommendPiece(ctx, &configurator.RecommendPieceInput{
		SessionID: req.SessionId,
		Slot:      slot,
		Scenario:  scenario,
		Starring:  starring,
		Troops:    troops,
		Limit:     int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	recs := make([]*configuratorv1alpha1.Recommendation, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		recs = append(recs, &configuratorv1alpha1.Recommendation{
			Item:  r.Item,
			Set:   r.Set,
			Score: r.Score,
			Gain:  r.Gain,
		})
	}
	return &configuratorv1alpha1.RecommendPieceResponse{
		BaseScore:       out.BaseScore,
		Recommendations: recs,
	}, nil
}

// ListEquipment browses the catalog, optionally by slot
func (h *Handler) ListEquipment(
	ctx context.Context,
	req *configuratorv1alpha1.ListEquipmentRequest,
) (*configuratorv1alpha1.ListEquipmentResponse, error) {
	input := &configurator.ListEquipmentInput{}
	if req.Slot != "" {
		slot, err := parseSlot(req.Slot)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		input.Slot = slot
	}

	out, err := h.service.ListEquipment(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]*configuratorv1alpha1.Equipment, 0, len(out.Equipments))
	for _, e := range out.Equipments {
		items = append(items, convertEquipment(e))
	}
	return &configuratorv1alpha1.ListEquipmentResponse{Equipments: items}, nil
}

// AddToComparison snapshots the build into the comparison
func (h *Handler) AddToComparison(
	ctx context.Context,
	req *configuratorv1alpha1.AddToComparisonRequest,
) (*configuratorv1alpha1.AddToComparisonResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.AddToComparison(ctx, &configurator.AddToComparisonInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.AddToComparisonResponse{Added: out.Added, Count: int32(out.Count)}, nil
}

// RemoveFromComparison drops a compared build
func (h *Handler) RemoveFromComparison(
	ctx context.Context,
	req *configuratorv1alpha1.RemoveFromComparisonRequest,
) (*configuratorv1alpha1.RemoveFromComparisonResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.RemoveFromComparison(ctx, &configurator.RemoveFromComparisonInput{
		SessionID: req.SessionId,
		Index:     int(req.Index),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.RemoveFromComparisonResponse{Count: int32(out.Count)}, nil
}

// RestoreFromComparison copies a compared build back into the session
func (h *Handler) RestoreFromComparison(
	ctx context.Context,
	req *configuratorv1alpha1.RestoreFromComparisonRequest,
) (*configuratorv1alpha1.RestoreFromComparisonResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.RestoreFromComparison(ctx, &configurator.RestoreFromComparisonInput{
		SessionID: req.SessionId,
		Index:     int(req.Index),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.RestoreFromComparisonResponse{Session: convertSession(out.Session)}, nil
}

// SetComparisonCapacity resizes the comparison
func (h *Handler) SetComparisonCapacity(
	ctx context.Context,
	req *configuratorv1alpha1.SetComparisonCapacityRequest,
) (*configuratorv1alpha1.SetComparisonCapacityResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.SetComparisonCapacity(ctx, &configurator.SetComparisonCapacityInput{
		SessionID: req.SessionId,
		Capacity:  int(req.Capacity),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.SetComparisonCapacityResponse{Removed: int32(out.Removed)}, nil
}

// GetComparison computes the comparison table
func (h *Handler) GetComparison(
	ctx context.Context,
	req *configuratorv1alpha1.GetComparisonRequest,
) (*configuratorv1alpha1.GetComparisonResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	scenario, err := parseScenario(req.Scenario)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	refine, err := parseRefine(req.Refine)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	excluded, err := parseTroops(req.ExcludedTroops)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetComparison(ctx, &configurator.GetComparisonInput{
		SessionID:      req.SessionId,
		Scenario:       scenario,
		Refine:         refine,
		ExcludedTroops: excluded,
		IncludeBase:    req.IncludeBase,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return convertTable(out.Table, out.Capacity), nil
}

// SaveBuild persists the session's build
func (h *Handler) SaveBuild(
	ctx context.Context,
	req *configuratorv1alpha1.SaveBuildRequest,
) (*configuratorv1alpha1.SaveBuildResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	out, err := h.service.SaveBuild(ctx, &configurator.SaveBuildInput{
		SessionID: req.SessionId,
		Name:      req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.SaveBuildResponse{Build: convertBuild(out.Build)}, nil
}

// LoadBuild loads a saved build into the session
func (h *Handler) LoadBuild(
	ctx context.Context,
	req *configuratorv1alpha1.LoadBuildRequest,
) (*configuratorv1alpha1.LoadBuildResponse, error) {
	if req.SessionId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if req.BuildId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	out, err := h.service.LoadBuild(ctx, &configurator.LoadBuildInput{
		SessionID: req.SessionId,
		BuildID:   req.BuildId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.LoadBuildResponse{Session: convertSession(out.Session)}, nil
}

// ListBuilds lists an owner's saved builds
func (h *Handler) ListBuilds(
	ctx context.Context,
	req *configuratorv1alpha1.ListBuildsRequest,
) (*configuratorv1alpha1.ListBuildsResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.ListBuilds(ctx, &configurator.ListBuildsInput{OwnerID: req.OwnerId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	saved := make([]*configuratorv1alpha1.Build, 0, len(out.Builds))
	for _, b := range out.Builds {
		saved = append(saved, convertBuild(b))
	}
	return &configuratorv1alpha1.ListBuildsResponse{Builds: saved}, nil
}

// DeleteBuild removes a saved build
func (h *Handler) DeleteBuild(
	ctx context.Context,
	req *configuratorv1alpha1.DeleteBuildRequest,
) (*configuratorv1alpha1.DeleteBuildResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}
	if req.BuildId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id is required"))
	}

	_, err := h.service.DeleteBuild(ctx, &configurator.DeleteBuildInput{
		OwnerID: req.OwnerId,
		BuildID: req.BuildId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &configuratorv1alpha1.DeleteBuildResponse{}, nil
}
