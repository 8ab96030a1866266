package jusmatch

import "github.com/jusmatch/jusmatch-go/internal/types"

// Public type aliases so SDK consumers can import only the jusmatch package.
type (
	// Requests
	CreateCaseRequest  = types.CreateCaseRequest
	StartTriageRequest = types.StartTriageRequest
	MatchQuery         = types.MatchQuery
	ExplainRequest     = types.ExplainRequest

	// Domain entities
	Turn                   = types.Turn
	Role                   = types.Role
	Message                = types.Message
	Match                  = types.Match
	MatchPreset            = types.MatchPreset
	Coordinates            = types.Coordinates
	StructuredCaseAnalysis = types.StructuredCaseAnalysis
	CaseClassification     = types.CaseClassification
	ExtractedFacts         = types.ExtractedFacts
	ViabilityAssessment    = types.ViabilityAssessment
	UrgencyAssessment      = types.UrgencyAssessment
	TechnicalAspects       = types.TechnicalAspects
	Recommendations        = types.Recommendations

	// Responses
	CreateCaseResponse = types.CreateCaseResponse
	TriageIntake       = types.TriageIntake
	MatchResponse      = types.MatchResponse
	ExplainResponse    = types.ExplainResponse
	EnqueueAck         = types.EnqueueAck
)

// Role values.
const (
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant
)

// Ranking presets understood by the matching service.
const (
	PresetBalanced = types.PresetBalanced
	PresetFast     = types.PresetFast
	PresetExpert   = types.PresetExpert
	PresetEconomic = types.PresetEconomic
)
