// Package jusmatch is the Go client SDK for the JusMatch legal-services
// marketplace backend: case intake, lawyer matching, match explanations and
// the conversational triage flow.
package jusmatch

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jusmatch/jusmatch-go/internal/api"
	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
	"github.com/jusmatch/jusmatch-go/internal/types"
	"github.com/jusmatch/jusmatch-go/triage"
)

// executor abstracts the internal async job runner used by the journal path.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Barrier(context.Context, string) error
	Stop()
}

// Client talks to the case/match backend. All operations are stateless
// request helpers: the Client caches nothing and owns no screen state.
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor
	tokens  TokenSource

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given backend base URL. A TokenSource is
// attached via WithTokenSource; without one, requests go out unauthenticated
// and the backend answers 401 where auth is required.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	// Wrap the transport so every request carries the session bearer token.
	c.wrapTransportWithToken()

	return c, nil
}

// wrapTransportWithToken installs the bearer-token RoundTripper above
// whatever transport the options configured.
func (c *Client) wrapTransportWithToken() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{base: base, tokens: c.tokens}
}

// Close stops the background journal executor. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// newDefaultExecutor constructs the shardqueue executor with sane defaults.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg := shardqueue.Config{
		Shards:    4,
		QueueSize: 1000,
		ErrorHandler: func(err error) {
			turnJournalFailuresTotal.Inc()
			log.Warn().Err(err).Msg("turn journal job failed")
		},
	}
	return shardqueue.NewShardExecutor(cfg)
}

// --------------------------------------------------------------------
// Case operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateCase submits a new case and returns its identifier.
func (c *Client) CreateCase(ctx context.Context, req CreateCaseRequest) (*CreateCaseResponse, error) {
	return api.CreateCase(ctx, c.http, c.baseURL, req)
}

// StartTriage kicks off server-side triage of a free-form description.
func (c *Client) StartTriage(ctx context.Context, req StartTriageRequest) (*TriageIntake, error) {
	return api.StartTriage(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Match operations - delegated to internal/api
// --------------------------------------------------------------------

// GetMatches requests up to k ranked candidates for a case with default
// ranking settings.
func (c *Client) GetMatches(ctx context.Context, caseID string, k int) ([]Match, error) {
	return api.RankMatches(ctx, c.http, c.baseURL, types.MatchQuery{CaseID: caseID, K: k})
}

// GetMatchesForCase requests ranked candidates with full control over preset,
// area filters, search radius and exclusions. CaseID in q is overridden by
// the caseID argument.
func (c *Client) GetMatchesForCase(ctx context.Context, caseID string, q MatchQuery) ([]Match, error) {
	q.CaseID = caseID
	return api.RankMatches(ctx, c.http, c.baseURL, q)
}

// GetPersistedMatches fetches previously computed matches for a case,
// bypassing live re-ranking.
func (c *Client) GetPersistedMatches(ctx context.Context, caseID string) ([]Match, error) {
	return api.GetPersistedMatches(ctx, c.http, c.baseURL, caseID)
}

// GetExplanation requests a per-lawyer justification for why each candidate
// was matched. Intended for lazy, per-card use.
func (c *Client) GetExplanation(ctx context.Context, caseID string, lawyerIDs []string) (map[string]string, error) {
	return api.GetExplanation(ctx, c.http, c.baseURL, caseID, lawyerIDs)
}

// --------------------------------------------------------------------
// Triage journal - async via the sharded executor
// --------------------------------------------------------------------

// RecordTurn journals one transcript turn asynchronously. FIFO order is
// preserved per conversation; recoverable failures retry with backoff in the
// background.
func (c *Client) RecordTurn(ctx context.Context, conversationID string, turn Turn) (*EnqueueAck, error) {
	ev := types.TurnEvent{
		ConversationID: conversationID,
		TurnID:         turn.ID,
		Role:           turn.Role,
		Text:           turn.Text,
		CreatedAt:      turn.CreatedAt,
	}
	ack, err := api.RecordTurn(ctx, c.exec, c.http, c.baseURL, ev)
	if err == nil {
		turnsJournaledTotal.Inc()
	}
	return ack, err
}

// AwaitConsistency blocks until all previously journaled turns for the given
// conversation have been executed, via the executor's barrier.
func (c *Client) AwaitConsistency(ctx context.Context, conversationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.exec.Barrier(ctx, conversationID)
}

// TurnRecorder adapts the client's journal path to the triage.Recorder
// interface, for wiring into a Conversation.
func (c *Client) TurnRecorder() triage.Recorder {
	return journalRecorder{c: c}
}

type journalRecorder struct{ c *Client }

func (r journalRecorder) RecordTurn(ctx context.Context, conversationID string, turn types.Turn) error {
	_, err := r.c.RecordTurn(ctx, conversationID, turn)
	return err
}
