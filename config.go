package jusmatch

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/jusmatch/jusmatch-go/assistant"
)

// Config holds SDK-wide settings, parsed from environment variables with the
// JUSMATCH_ prefix. Example: JUSMATCH_API_BASE_URL=https://api.jusmatch.app .
type Config struct {
	// Case/match backend.
	APIBaseURL  string        `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	APIToken    string        `envconfig:"API_TOKEN" default:""`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Triage analysis (completion) service.
	AssistantBaseURL    string        `envconfig:"ASSISTANT_BASE_URL" default:"https://api.openai.com/v1"`
	AssistantAPIKey     string        `envconfig:"ASSISTANT_API_KEY" default:""`
	AssistantModel      string        `envconfig:"ASSISTANT_MODEL" default:"gpt-4o-mini"`
	AssistantEmbedModel string        `envconfig:"ASSISTANT_EMBED_MODEL" default:"text-embedding-3-small"`
	AssistantTimeout    time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"60s"`

	// TriageAssistEnabled is the explicit feature flag for the conversational
	// triage assistant. It defaults on, but a missing credential still forces
	// the soft-degraded path.
	TriageAssistEnabled bool `envconfig:"TRIAGE_ASSIST_ENABLED" default:"true"`
}

// LoadConfig populates Config from environment variables (prefix JUSMATCH_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("JUSMATCH", &c)
}

// AssistantConfig maps the SDK config onto the assistant client's settings.
func (c Config) AssistantConfig() assistant.Config {
	return assistant.Config{
		BaseURL:    c.AssistantBaseURL,
		APIKey:     c.AssistantAPIKey,
		Model:      c.AssistantModel,
		EmbedModel: c.AssistantEmbedModel,
		Timeout:    c.AssistantTimeout,
		Enabled:    c.TriageAssistEnabled,
	}
}

// NewFromConfig constructs a Client from a loaded Config, attaching the API
// token when present.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.APIToken != "" {
		base = append(base, WithTokenSource(StaticToken(cfg.APIToken)))
	}
	return New(cfg.APIBaseURL, append(base, opts...)...)
}
