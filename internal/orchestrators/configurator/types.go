package configurator

import (
	"time"

	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
)

// Session is a snapshot of a configurator session
type Session struct {
	ID                 string               `json:"id"`
	OwnerID            string               `json:"owner_id"`
	Slots              []entities.BuildSlot `json:"slots"`
	Animal             *equipment.Animal    `json:"animal,omitempty"`
	Key                string               `json:"key"`
	ComparisonCount    int                  `json:"comparison_count"`
	ComparisonCapacity int                  `json:"comparison_capacity"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// Recommendation ranks one candidate item for a slot
type Recommendation struct {
	Item  string  `json:"item"`
	Set   string  `json:"set"`
	Score float64 `json:"score"`
	// Gain is the score change against the current build
	Gain float64 `json:"gain"`
}

// CreateSessionInput defines the request for starting a session
type CreateSessionInput struct {
	OwnerID string
	// BuildID optionally seeds the session from a saved build
	BuildID string
}

// CreateSessionOutput defines the response for starting a session
type CreateSessionOutput struct {
	Session *Session
}

// CloseSessionInput defines the request for discarding a session
type CloseSessionInput struct {
	SessionID string
}

// CloseSessionOutput defines the response for discarding a session
type CloseSessionOutput struct{}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Session *Session
}

// SetEquipmentInput defines the request for equipping or clearing a slot
type SetEquipmentInput struct {
	SessionID string
	Slot      equipment.Slot
	// ItemName empty clears the slot
	ItemName string
	Stars    int
}

// SetEquipmentOutput defines the response for equipping a slot
type SetEquipmentOutput struct {
	Session *Session
}

// SetAnimalInput defines the request for setting the companion
type SetAnimalInput struct {
	SessionID string
	// Animal nil clears the companion
	Animal *equipment.Animal
}

// SetAnimalOutput defines the response for setting the companion
type SetAnimalOutput struct {
	Session *Session
}

// ResetSessionInput defines the request for emptying a session's build
type ResetSessionInput struct {
	SessionID string
}

// ResetSessionOutput defines the response for emptying a session's build
type ResetSessionOutput struct {
	Session *Session
}

// RandomizeSessionInput defines the request for rolling a random build
type RandomizeSessionInput struct {
	SessionID string
}

// RandomizeSessionOutput defines the response for rolling a random build
type RandomizeSessionOutput struct {
	Session *Session
}

// GetStatsInput defines the request for evaluating a session's build
type GetStatsInput struct {
	SessionID      string
	Scenario       entities.Scenario
	Starring       entities.StarringMode
	IncludeBase    bool
	Refine         *engine.RefineOptions
	ExcludedTroops []equipment.Troop
}

// GetStatsOutput defines the response for evaluating a session's build
type GetStatsOutput struct {
	Stats *engine.EvaluateOutput
}

// AddToComparisonInput defines the request for snapshotting the build into the comparison
type AddToComparisonInput struct {
	SessionID string
}

// AddToComparisonOutput defines the response for snapshotting the build
type AddToComparisonOutput struct {
	// Added is false when the same combination is already compared
	Added bool
	Count int
}

// RemoveFromComparisonInput defines the request for dropping a compared build
type RemoveFromComparisonInput struct {
	SessionID string
	Index     int
}

// RemoveFromComparisonOutput defines the response for dropping a compared build
type RemoveFromComparisonOutput struct {
	Count int
}

// RestoreFromComparisonInput defines the request for loading a compared build back into the session
type RestoreFromComparisonInput struct {
	SessionID string
	Index     int
}

// RestoreFromComparisonOutput defines the response for restoring a compared build
type RestoreFromComparisonOutput struct {
	Session *Session
}

// SetComparisonCapacityInput defines the request for resizing the comparison
type SetComparisonCapacityInput struct {
	SessionID string
	Capacity  int
}

// SetComparisonCapacityOutput defines the response for resizing the comparison
type SetComparisonCapacityOutput struct {
	Removed int
}

// GetComparisonInput defines the request for the comparison table
type GetComparisonInput struct {
	SessionID      string
	Scenario       entities.Scenario
	Refine         *engine.RefineOptions
	ExcludedTroops []equipment.Troop
	IncludeBase    bool
}

// GetComparisonOutput defines the response for the comparison table
type GetComparisonOutput struct {
	Table    *comparison.Table
	Capacity int
}

// RecommendPieceInput defines the request for ranking the items of a slot
type RecommendPieceInput struct {
	SessionID string
	Slot      equipment.Slot
	Scenario  entities.Scenario
	Starring  entities.StarringMode
	// Troops limits the score to these troop types, all when empty
	Troops []equipment.Troop
	// Limit caps the number of results, zero for all
	Limit int
}

// RecommendPieceOutput defines the response for ranking a slot
type RecommendPieceOutput struct {
	BaseScore       float64
	Recommendations []*Recommendation
}

// ListEquipmentInput defines the request for browsing the catalog
type ListEquipmentInput struct {
	// Slot filters by slot, all items when empty
	Slot equipment.Slot
}

// ListEquipmentOutput defines the response for browsing the catalog
type ListEquipmentOutput struct {
	Equipments []*equipment.Equipment
}

// SaveBuildInput defines the request for persisting a session's build
type SaveBuildInput struct {
	SessionID string
	Name      string
}

// SaveBuildOutput defines the response for persisting a build
type SaveBuildOutput struct {
	Build *entities.Build
}

// LoadBuildInput defines the request for loading a saved build into a session
type LoadBuildInput struct {
	SessionID string
	BuildID   string
}

// LoadBuildOutput defines the response for loading a saved build
type LoadBuildOutput struct {
	Session *Session
}

// ListBuildsInput defines the request for an owner's saved builds
type ListBuildsInput struct {
	OwnerID string
}

// ListBuildsOutput defines the response for an owner's saved builds
type ListBuildsOutput struct {
	Builds []*entities.Build
}

// DeleteBuildInput defines the request for deleting a saved build
type DeleteBuildInput struct {
	OwnerID string
	BuildID string
}

// DeleteBuildOutput defines the response for deleting a saved build
type DeleteBuildOutput struct{}
