package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// CreateCaseRequest holds parameters for a new case.
type CreateCaseRequest struct {
	ClientText       string      `json:"texto_cliente"`
	Area             string      `json:"area"`
	Subarea          string      `json:"subarea"`
	UrgencyHours     int         `json:"urgency_h"`
	SummaryEmbedding []float64   `json:"summary_embedding"`
	Coords           Coordinates `json:"coords"`
}

// StartTriageRequest kicks off server-side triage of a free-form description.
type StartTriageRequest struct {
	ClientText string       `json:"texto_cliente"`
	Coords     *Coordinates `json:"coords,omitempty"`
}

// MatchQuery holds ranking parameters for the matching service.
// ExcludeIDs lets a caller page through "other options" without repeating
// candidates it already displayed.
type MatchQuery struct {
	CaseID     string      `json:"case_id"`
	K          int         `json:"k"`
	Preset     MatchPreset `json:"preset,omitempty"`
	Area       string      `json:"area,omitempty"`
	Subarea    string      `json:"subarea,omitempty"`
	RadiusKm   float64     `json:"radius_km,omitempty"`
	ExcludeIDs []string    `json:"exclude_ids,omitempty"`
}

// ExplainRequest asks for per-lawyer match justifications.
type ExplainRequest struct {
	CaseID    string   `json:"case_id"`
	LawyerIDs []string `json:"lawyer_ids"`
}

// TurnEvent is the journal record of one transcript turn.
type TurnEvent struct {
	ConversationID string    `json:"conversation_id"`
	TurnID         string    `json:"turn_id"`
	Role           Role      `json:"role"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}
