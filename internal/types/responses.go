package types

// ------------------------------
// Response Types
// ------------------------------

// CreateCaseResponse carries the identifier of the persisted case.
type CreateCaseResponse struct {
	CaseID string `json:"case_id"`
}

// TriageIntake acknowledges a server-side triage task.
type TriageIntake struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MatchResponse wraps the /match and persisted-matches endpoint responses.
type MatchResponse struct {
	Matches []Match `json:"matches"`
}

// ExplainResponse maps lawyer identifiers to natural-language justifications.
type ExplainResponse struct {
	Explanations map[string]string `json:"explanations"`
}

// EnqueueAck acknowledges an async journal submission.
type EnqueueAck struct {
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
}
