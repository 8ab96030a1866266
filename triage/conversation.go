// Package triage drives the conversational case-intake flow: a linear,
// turn-taking conversation between the local user and a remote analysis
// service, continuing until the service signals completion with a structured
// case analysis.
package triage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jusmatch/jusmatch-go/internal/types"
)

// State is the controller's position in the intake flow.
type State int

const (
	// StateAwaitingInput accepts a new user message.
	StateAwaitingInput State = iota
	// StateSubmitting has one analysis request in flight.
	StateSubmitting
	// StateComplete is terminal; no further input is accepted.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateSubmitting:
		return "submitting"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Fixed conversational turns. The greeting seeds every transcript and is
// excluded from outbound payloads; the apology covers absorbed failures; the
// closing turn ends a completed triage.
const (
	GreetingText = "Olá! Sou a assistente da JusMatch. Me conte com suas palavras o que aconteceu, que eu vou te ajudar a entender o seu caso."
	ApologyText  = "Desculpe, tive um problema para processar sua mensagem. Pode repetir o que você disse, por favor?"
	ClosingText  = "Perfeito, já tenho tudo o que preciso! Estou finalizando a análise do seu caso."
)

var (
	// ErrEmptyMessage rejects empty or whitespace-only submissions.
	ErrEmptyMessage = errors.New("triage: empty message")
	// ErrBusy rejects a submit while another request is in flight.
	ErrBusy = errors.New("triage: request already in flight")
	// ErrConversationOver rejects input after the triage completed.
	ErrConversationOver = errors.New("triage: conversation already complete")
)

// Result is the analysis service's answer for one round-trip: either the next
// clarifying question, or the terminal structured analysis.
type Result struct {
	Complete     bool
	NextQuestion string
	Analysis     *types.StructuredCaseAnalysis
}

// Analyzer turns a transcript into a Result. Implementations perform the
// remote call; the controller never inspects transport details.
type Analyzer interface {
	Analyze(ctx context.Context, transcript []types.Message) (*Result, error)
}

// Recorder journals transcript turns. Errors are absorbed by the controller;
// journaling never blocks or fails the conversation.
type Recorder interface {
	RecordTurn(ctx context.Context, conversationID string, turn types.Turn) error
}

// Conversation owns the transcript and the state machine. The transcript is
// append-only: no turn is mutated or removed after creation, including a user
// turn whose analysis request failed.
//
// At most one request is in flight at a time; the guard in Submit rejects
// concurrent submissions rather than queueing them.
type Conversation struct {
	mu       sync.Mutex
	id       string
	state    State
	turns    []types.Turn
	analysis *types.StructuredCaseAnalysis

	analyzer     Analyzer
	recorder     Recorder
	onTranscript func([]types.Turn)
	onComplete   func(types.StructuredCaseAnalysis)
	log          zerolog.Logger
}

// ConversationOption configures a Conversation during construction.
type ConversationOption func(*Conversation)

// WithRecorder journals every appended turn through r.
func WithRecorder(r Recorder) ConversationOption {
	return func(c *Conversation) { c.recorder = r }
}

// WithTranscriptHook fires after every transcript mutation with a copy of the
// full transcript. UI callers use it to re-render and scroll to the bottom.
func WithTranscriptHook(fn func([]types.Turn)) ConversationOption {
	return func(c *Conversation) { c.onTranscript = fn }
}

// WithCompletionHook fires once, when the triage reaches its terminal state,
// with the stored analysis.
func WithCompletionHook(fn func(types.StructuredCaseAnalysis)) ConversationOption {
	return func(c *Conversation) { c.onComplete = fn }
}

// WithLogger replaces the controller's logger.
func WithLogger(l zerolog.Logger) ConversationOption {
	return func(c *Conversation) { c.log = l }
}

// WithConversationID overrides the generated conversation identifier.
func WithConversationID(id string) ConversationOption {
	return func(c *Conversation) { c.id = id }
}

// NewConversation seeds a conversation with the fixed greeting and leaves it
// awaiting input.
func NewConversation(analyzer Analyzer, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		id:       uuid.NewString(),
		state:    StateAwaitingInput,
		analyzer: analyzer,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.appendTurn(context.Background(), types.RoleAssistant, GreetingText)
	return c
}

// ID returns the conversation identifier used as the journal key.
func (c *Conversation) ID() string { return c.id }

// State returns the controller's current state.
func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Turns returns a copy of the transcript in creation order.
func (c *Conversation) Turns() []types.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Analysis returns the stored structured analysis, or nil before completion.
func (c *Conversation) Analysis() *types.StructuredCaseAnalysis {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.analysis == nil {
		return nil
	}
	out := *c.analysis
	return &out
}

// Payload builds the outbound request payload: every turn except the seed
// greeting, in original order.
func (c *Conversation) Payload() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payloadLocked()
}

func (c *Conversation) payloadLocked() []types.Message {
	msgs := make([]types.Message, 0, len(c.turns))
	for i, t := range c.turns {
		if i == 0 && t.Role == types.RoleAssistant {
			continue // seed greeting stays local
		}
		msgs = append(msgs, types.Message{Role: t.Role, Content: t.Text})
	}
	return msgs
}

// Submit appends the user's message and runs one analysis round-trip.
//
// Guards reject the submission with no state change when the trimmed text is
// empty (ErrEmptyMessage), a request is already in flight (ErrBusy), or the
// triage has completed (ErrConversationOver).
//
// A transport or parse failure is absorbed, not propagated: the failed user
// turn stays in the transcript, a fixed apology turn is appended, and the
// controller returns to accepting input. The next submission re-sends the
// full transcript including the turn that failed.
func (c *Conversation) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return ErrBusy
	case StateComplete:
		c.mu.Unlock()
		return ErrConversationOver
	}
	c.state = StateSubmitting
	c.appendTurnLocked(ctx, types.RoleUser, text)
	payload := c.payloadLocked()
	c.mu.Unlock()

	res, err := c.analyzer.Analyze(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil && (res == nil || (res.Complete && res.Analysis == nil)) {
		err = errors.New("triage: analyzer returned no usable result")
	}
	if err != nil {
		c.log.Warn().Err(err).Str("conversation_id", c.id).Msg("triage analysis failed; continuing conversation")
		c.appendTurnLocked(ctx, types.RoleAssistant, ApologyText)
		c.state = StateAwaitingInput
		return nil
	}

	if res.Complete {
		analysis := *res.Analysis
		c.analysis = &analysis
		c.appendTurnLocked(ctx, types.RoleAssistant, ClosingText)
		c.state = StateComplete
		if c.onComplete != nil {
			c.onComplete(analysis)
		}
		return nil
	}

	c.appendTurnLocked(ctx, types.RoleAssistant, res.NextQuestion)
	c.state = StateAwaitingInput
	return nil
}

func (c *Conversation) appendTurn(ctx context.Context, role types.Role, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.appendTurnLocked(ctx, role, text)
}

// appendTurnLocked creates the turn, fires the transcript hook and journals
// the turn. Caller holds c.mu.
func (c *Conversation) appendTurnLocked(ctx context.Context, role types.Role, text string) {
	turn := types.Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	c.turns = append(c.turns, turn)

	if c.onTranscript != nil {
		snapshot := make([]types.Turn, len(c.turns))
		copy(snapshot, c.turns)
		c.onTranscript(snapshot)
	}
	if c.recorder != nil {
		if err := c.recorder.RecordTurn(ctx, c.id, turn); err != nil {
			c.log.Warn().Err(err).Str("conversation_id", c.id).Msg("turn journal enqueue failed")
		}
	}
}
