package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role identifies who authored a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a triage transcript. Turns are append-only: once
// created they are never mutated or removed.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is one element of the outbound analysis payload: the transcript
// minus the seed greeting, flattened to what the completion service expects.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Coordinates is a geographic point attached to cases and intake requests.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// MatchPreset names a ranking profile understood by the matching service.
type MatchPreset string

const (
	PresetBalanced MatchPreset = "balanced"
	PresetFast     MatchPreset = "fast"
	PresetExpert   MatchPreset = "expert"
	PresetEconomic MatchPreset = "economic"
)

// Match is one candidate lawyer ranked by the matching service for a case.
type Match struct {
	LawyerID    string             `json:"lawyer_id"`
	Name        string             `json:"nome"`
	Fair        float64            `json:"fair"`
	Equity      float64            `json:"equity"`
	Features    map[string]float64 `json:"features,omitempty"`
	AvatarURL   string             `json:"avatar_url,omitempty"`
	Available   bool               `json:"disponivel"`
	PrimaryArea string             `json:"area_principal"`
	Rating      *float64           `json:"rating,omitempty"`
	DistanceKm  *float64           `json:"distance_km,omitempty"`
}

// ------------------------------
// Structured case analysis
// ------------------------------

// StructuredCaseAnalysis is the terminal payload of a completed triage.
// The client forwards it verbatim; it never computes or mutates its contents.
type StructuredCaseAnalysis struct {
	Classification  CaseClassification  `json:"classificacao"`
	Facts           ExtractedFacts      `json:"fatos"`
	Viability       ViabilityAssessment `json:"viabilidade"`
	Urgency         UrgencyAssessment   `json:"urgencia"`
	Technical       TechnicalAspects    `json:"aspectos_tecnicos"`
	Recommendations Recommendations     `json:"recomendacoes"`
}

// CaseClassification places the matter in the legal taxonomy.
type CaseClassification struct {
	Area    string `json:"area_principal"`
	Subarea string `json:"subarea"`
	Nature  string `json:"natureza"`
}

// ExtractedFacts summarises what the client reported.
type ExtractedFacts struct {
	Parties         []string `json:"partes"`
	Chronology      string   `json:"cronologia"`
	Claims          []string `json:"pedidos"`
	AmountInDispute string   `json:"valor_causa"`
	Documents       []string `json:"documentos_mencionados"`
}

// ViabilityAssessment is the assistant's read on the merits.
type ViabilityAssessment struct {
	Classification     string   `json:"classificacao"`
	Strengths          []string `json:"pontos_fortes"`
	Weaknesses         []string `json:"pontos_fracos"`
	SuccessProbability string   `json:"probabilidade_exito"`
	Complexity         string   `json:"complexidade"`
	CostTier           string   `json:"custo_estimado"`
}

// UrgencyAssessment captures deadlines and immediate actions.
type UrgencyAssessment struct {
	Level            string   `json:"nivel"`
	Deadline         string   `json:"prazo_legal"`
	ImmediateActions []string `json:"acoes_imediatas"`
}

// TechnicalAspects lists statutes, precedents and venue.
type TechnicalAspects struct {
	Statutes []string `json:"legislacao_aplicavel"`
	CaseLaw  []string `json:"jurisprudencia"`
	Venue    string   `json:"competencia"`
	Alerts   []string `json:"alertas"`
}

// Recommendations is the suggested strategy and next steps.
type Recommendations struct {
	Strategy          string   `json:"estrategia"`
	NextSteps         []string `json:"proximos_passos"`
	RequiredDocuments []string `json:"documentos_necessarios"`
	Notes             string   `json:"observacoes"`
}
