package configuratorv1alpha1

// Slot is one equipped slot of a build
type Slot struct {
	Slot  string `json:"slot"`
	Item  string `json:"item"`
	Stars int32  `json:"stars"`
}

// Animal is a general's companion
type Animal struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Session is the state of a configurator session
type Session struct {
	Id                 string  `json:"id"`
	OwnerId            string  `json:"owner_id"`
	Slots              []*Slot `json:"slots,omitempty"`
	Animal             *Animal `json:"animal,omitempty"`
	Key                string  `json:"key"`
	ComparisonCount    int32   `json:"comparison_count"`
	ComparisonCapacity int32   `json:"comparison_capacity"`
	UpdatedAt          int64   `json:"updated_at"`
}

// Build is a saved build
type Build struct {
	Id        string  `json:"id"`
	OwnerId   string  `json:"owner_id"`
	Name      string  `json:"name,omitempty"`
	Slots     []*Slot `json:"slots,omitempty"`
	Animal    *Animal `json:"animal,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// Equipment is a catalog item summary
type Equipment struct {
	Name     string `json:"name"`
	Set      string `json:"set"`
	Slot     string `json:"slot"`
	Building string `json:"building"`
	Level    int32  `json:"level"`
	Verified bool   `json:"verified"`
}

// Refine selects a refine estimate
type Refine struct {
	Troop   string `json:"troop"`
	Percent int32  `json:"percent"`
}

// Totals sums a buff vector per stat kind
type Totals struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Hp      float64 `json:"hp"`
}

// Contribution is one source's share of a buff field
type Contribution struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// Contributions lists the sources of one buff field
type Contributions struct {
	Field   string          `json:"field"`
	Sources []*Contribution `json:"sources"`
}

// Stats is an evaluated build
type Stats struct {
	Key               string             `json:"key"`
	Buffs             map[string]float64 `json:"buffs"`
	Debuffs           map[string]float64 `json:"debuffs"`
	Refine            map[string]float64 `json:"refine,omitempty"`
	Total             map[string]float64 `json:"total"`
	Totals            *Totals            `json:"totals"`
	MaterialsLv6      map[string]int32   `json:"materials_lv6,omitempty"`
	MaterialsLv7      map[string]int32   `json:"materials_lv7,omitempty"`
	BuffDiagnostics   []*Contributions   `json:"buff_diagnostics,omitempty"`
	DebuffDiagnostics []*Contributions   `json:"debuff_diagnostics,omitempty"`
}

// Recommendation ranks one candidate item
type Recommendation struct {
	Item  string  `json:"item"`
	Set   string  `json:"set"`
	Score float64 `json:"score"`
	Gain  float64 `json:"gain"`
}

// ComparisonColumn is one compared build
type ComparisonColumn struct {
	Key          string             `json:"key"`
	Items        []string           `json:"items"`
	Buffs        map[string]float64 `json:"buffs"`
	Debuffs      map[string]float64 `json:"debuffs"`
	BuffTotals   *Totals            `json:"buff_totals"`
	DebuffTotals *Totals            `json:"debuff_totals"`
}

// CreateSessionRequest starts a session
type CreateSessionRequest struct {
	OwnerId string `json:"owner_id"`
	BuildId string `json:"build_id,omitempty"`
}

// CreateSessionResponse returns the new session
type CreateSessionResponse struct {
	Session *Session `json:"session"`
}

// GetSessionRequest reads a session
type GetSessionRequest struct {
	SessionId string `json:"session_id"`
}

// GetSessionResponse returns a session
type GetSessionResponse struct {
	Session *Session `json:"session"`
}

// CloseSessionRequest discards a session
type CloseSessionRequest struct {
	SessionId string `json:"session_id"`
}

// CloseSessionResponse is empty
type CloseSessionResponse struct{}

// SetEquipmentRequest equips or clears a slot
type SetEquipmentRequest struct {
	SessionId string `json:"session_id"`
	Slot      string `json:"slot"`
	Item      string `json:"item,omitempty"`
	Stars     int32  `json:"stars"`
}

// SetEquipmentResponse returns the updated session
type SetEquipmentResponse struct {
	Session *Session `json:"session"`
}

// SetAnimalRequest sets or clears the companion
type SetAnimalRequest struct {
	SessionId string  `json:"session_id"`
	Animal    *Animal `json:"animal,omitempty"`
}

// SetAnimalResponse returns the updated session
type SetAnimalResponse struct {
	Session *Session `json:"session"`
}

// ResetSessionRequest empties a build
type ResetSessionRequest struct {
	SessionId string `json:"session_id"`
}

// ResetSessionResponse returns the updated session
type ResetSessionResponse struct {
	Session *Session `json:"session"`
}

// RandomizeSessionRequest rolls a random build
type RandomizeSessionRequest struct {
	SessionId string `json:"session_id"`
}

// RandomizeSessionResponse returns the updated session
type RandomizeSessionResponse struct {
	Session *Session `json:"session"`
}

// GetStatsRequest evaluates a session's build
type GetStatsRequest struct {
	SessionId      string   `json:"session_id"`
	Scenario       string   `json:"scenario"`
	Starring       string   `json:"starring"`
	IncludeBase    bool     `json:"include_base,omitempty"`
	Refine         *Refine  `json:"refine,omitempty"`
	ExcludedTroops []string `json:"excluded_troops,omitempty"`
}

// GetStatsResponse returns the evaluation
type GetStatsResponse struct {
	Stats *Stats `json:"stats"`
}

// RecommendPieceRequest ranks the items of a slot
type RecommendPieceRequest struct {
	SessionId string   `json:"session_id"`
	Slot      string   `json:"slot"`
	Scenario  string   `json:"scenario"`
	Starring  string   `json:"starring"`
	Troops    []string `json:"troops,omitempty"`
	Limit     int32    `json:"limit,omitempty"`
}

// RecommendPieceResponse returns the ranking
type RecommendPieceResponse struct {
	BaseScore       float64           `json:"base_score"`
	Recommendations []*Recommendation `json:"recommendations"`
}

// ListEquipmentRequest browses the catalog
type ListEquipmentRequest struct {
	Slot string `json:"slot,omitempty"`
}

// ListEquipmentResponse returns catalog items
type ListEquipmentResponse struct {
	Equipments []*Equipment `json:"equipments"`
}

// AddToComparisonRequest snapshots the build into the comparison
type AddToComparisonRequest struct {
	SessionId string `json:"session_id"`
}

// AddToComparisonResponse reports whether the build was new
type AddToComparisonResponse struct {
	Added bool  `json:"added"`
	Count int32 `json:"count"`
}

// RemoveFromComparisonRequest drops a compared build
type RemoveFromComparisonRequest struct {
	SessionId string `json:"session_id"`
	Index     int32  `json:"index"`
}

// RemoveFromComparisonResponse returns the remaining count
type RemoveFromComparisonResponse struct {
	Count int32 `json:"count"`
}

// RestoreFromComparisonRequest copies a compared build into the session
type RestoreFromComparisonRequest struct {
	SessionId string `json:"session_id"`
	Index     int32  `json:"index"`
}

// RestoreFromComparisonResponse returns the updated session
type RestoreFromComparisonResponse struct {
	Session *Session `json:"session"`
}

// SetComparisonCapacityRequest resizes the comparison
type SetComparisonCapacityRequest struct {
	SessionId string `json:"session_id"`
	Capacity  int32  `json:"capacity"`
}

// SetComparisonCapacityResponse returns how many builds were dropped
type SetComparisonCapacityResponse struct {
	Removed int32 `json:"removed"`
}

// GetComparisonRequest computes the comparison table
type GetComparisonRequest struct {
	SessionId      string   `json:"session_id"`
	Scenario       string   `json:"scenario"`
	Refine         *Refine  `json:"refine,omitempty"`
	ExcludedTroops []string `json:"excluded_troops,omitempty"`
	IncludeBase    bool     `json:"include_base,omitempty"`
}

// GetComparisonResponse returns the table
type GetComparisonResponse struct {
	Scenario string              `json:"scenario"`
	Capacity int32               `json:"capacity"`
	Columns  []*ComparisonColumn `json:"columns"`
}

// SaveBuildRequest persists a session's build
type SaveBuildRequest struct {
	SessionId string `json:"session_id"`
	Name      string `json:"name,omitempty"`
}

// SaveBuildResponse returns the saved build
type SaveBuildResponse struct {
	Build *Build `json:"build"`
}

// LoadBuildRequest loads a saved build into a session
type LoadBuildRequest struct {
	SessionId string `json:"session_id"`
	BuildId   string `json:"build_id"`
}

// LoadBuildResponse returns the updated session
type LoadBuildResponse struct {
	Session *Session `json:"session"`
}

// ListBuildsRequest lists an owner's builds
type ListBuildsRequest struct {
	OwnerId string `json:"owner_id"`
}

// ListBuildsResponse returns saved builds
type ListBuildsResponse struct {
	Builds []*Build `json:"builds"`
}

// DeleteBuildRequest removes a saved build
type DeleteBuildRequest struct {
	OwnerId string `json:"owner_id"`
	BuildId string `json:"build_id"`
}

// DeleteBuildResponse is empty
type DeleteBuildResponse struct{}
