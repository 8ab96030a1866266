package types

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor interface for dependency injection (used by async operations).
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Validation helpers
// ------------------------------

const maxMatchK = 50

// ValidateIDPresent rejects empty identifiers before a request is built.
func ValidateIDPresent(v, field string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateCaseText rejects empty or whitespace-only case descriptions.
func ValidateCaseText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("texto_cliente must not be empty")
	}
	return nil
}

// ValidateK bounds the number of candidates requested from the ranker.
func ValidateK(k int) error {
	if k < 1 || k > maxMatchK {
		return fmt.Errorf("k must be between 1 and %d, got %d", maxMatchK, k)
	}
	return nil
}

// ValidatePreset accepts the empty preset (server default) or a known profile.
func ValidatePreset(p MatchPreset) error {
	switch p {
	case "", PresetBalanced, PresetFast, PresetExpert, PresetEconomic:
		return nil
	}
	return fmt.Errorf("unknown match preset %q", p)
}

// Validate checks the sections a displayable analysis cannot do without.
// Anything weaker lets a malformed completion surface as a half-empty report.
func (a *StructuredCaseAnalysis) Validate() error {
	if a == nil {
		return fmt.Errorf("analysis is nil")
	}
	if strings.TrimSpace(a.Classification.Area) == "" {
		return fmt.Errorf("analysis missing classificacao.area_principal")
	}
	if strings.TrimSpace(a.Viability.Classification) == "" {
		return fmt.Errorf("analysis missing viabilidade.classificacao")
	}
	if strings.TrimSpace(a.Urgency.Level) == "" {
		return fmt.Errorf("analysis missing urgencia.nivel")
	}
	return nil
}
