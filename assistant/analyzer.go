// Package assistant translates triage transcripts into the chat-completion
// service's request contract and parses its strict-JSON responses into the
// triage result union.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jusmatch/jusmatch-go/internal/types"
	"github.com/jusmatch/jusmatch-go/triage"
)

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultModel      = "gpt-4o-mini"
	defaultEmbedModel = "text-embedding-3-small"
	defaultTimeout    = 60 * time.Second
)

// ErrMalformedAnalysis means the completion service answered, but not with
// the expected discriminated JSON shape. The caller treats it like any other
// analysis failure.
var ErrMalformedAnalysis = errors.New("assistant: malformed analysis response")

// Config holds the completion service settings. Enabled is the explicit
// feature flag for the triage assistant: when false, or when APIKey is empty,
// Analyze degrades to a static unavailable message instead of failing.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	EmbedModel string
	Timeout    time.Duration
	Enabled    bool
}

// Client is the remote triage-analysis client. It implements triage.Analyzer.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests use this).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger replaces the client's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New constructs a Client, applying defaults for unset config fields.
func New(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = defaultEmbedModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assisted reports whether the remote analysis path is active. A missing
// credential disables it regardless of the flag.
func (c *Client) Assisted() bool {
	return c.cfg.Enabled && c.cfg.APIKey != ""
}

// ------------------------------
// Chat-completion wire types
// ------------------------------

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// resultEnvelope is the strict-JSON shape the system instruction demands.
type resultEnvelope struct {
	IsComplete   bool                          `json:"isComplete"`
	NextQuestion string                        `json:"nextQuestion"`
	Analysis     *types.StructuredCaseAnalysis `json:"analysis"`
}

// Analyze sends the system instruction plus the transcript to the completion
// service and parses the reply into the triage result union.
//
// When the assistant is disabled it short-circuits with a fixed in-progress
// result carrying the unavailable message; this is deliberate soft
// degradation, not an error.
func (c *Client) Analyze(ctx context.Context, transcript []types.Message) (*triage.Result, error) {
	if !c.Assisted() {
		return &triage.Result{NextQuestion: disabledMessage}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	messages := make([]chatMessage, 0, len(transcript)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemInstruction})
	for _, m := range transcript {
		messages = append(messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	reqBody := chatRequest{
		Model:          c.cfg.Model,
		Messages:       messages,
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	content, err := c.complete(ctx, reqBody)
	if err != nil {
		return nil, err
	}
	return parseResult(content)
}

// complete performs one chat-completion round-trip and returns the first
// choice's content.
func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assistant: completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant: completion status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedAnalysis)
	}
	return out.Choices[0].Message.Content, nil
}

// parseResult decodes the strict-JSON envelope and validates the variant
// invariant: exactly one of nextQuestion or analysis is meaningful, selected
// by isComplete. A syntactically valid reply missing its required fields is
// ErrMalformedAnalysis, never a half-empty result.
func parseResult(content string) (*triage.Result, error) {
	content = stripCodeFence(content)

	var env resultEnvelope
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}

	if env.IsComplete {
		if err := env.Analysis.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
		}
		return &triage.Result{Complete: true, Analysis: env.Analysis}, nil
	}

	if strings.TrimSpace(env.NextQuestion) == "" {
		return nil, fmt.Errorf("%w: missing nextQuestion", ErrMalformedAnalysis)
	}
	return &triage.Result{NextQuestion: env.NextQuestion}, nil
}

// stripCodeFence removes a markdown fence some models wrap around JSON even
// when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
