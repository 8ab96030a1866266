package jusmatch

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIBaseURL == "" || cfg.AssistantBaseURL == "" {
		t.Fatalf("missing defaults: %+v", cfg)
	}
	if !cfg.TriageAssistEnabled {
		t.Fatal("triage assist should default on")
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected HTTP timeout %v", cfg.HTTPTimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JUSMATCH_API_BASE_URL", "https://api.jusmatch.app")
	t.Setenv("JUSMATCH_API_TOKEN", "sess-1")
	t.Setenv("JUSMATCH_ASSISTANT_API_KEY", "sk-test")
	t.Setenv("JUSMATCH_TRIAGE_ASSIST_ENABLED", "false")
	t.Setenv("JUSMATCH_ASSISTANT_TIMEOUT", "15s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIBaseURL != "https://api.jusmatch.app" || cfg.APIToken != "sess-1" {
		t.Fatalf("unexpected backend config: %+v", cfg)
	}
	if cfg.TriageAssistEnabled {
		t.Fatal("flag override not applied")
	}

	ac := cfg.AssistantConfig()
	if ac.APIKey != "sk-test" || ac.Enabled || ac.Timeout != 15*time.Second {
		t.Fatalf("unexpected assistant config: %+v", ac)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.APIToken = "sess-2"
	c, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	defer func() { _ = c.Close() }()

	if c.tokens == nil {
		t.Fatal("token source not attached from config")
	}
}
