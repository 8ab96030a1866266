package jusmatch

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath it.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithTokenSource injects the session token accessor used to authorize every
// request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) error {
		c.tokens = ts
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. Timeout and
// transport options applied earlier are discarded.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = h
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithShardQueueConfig replaces the journal executor's tunables.
func WithShardQueueConfig(cfg shardqueue.Config) Option {
	return func(c *Client) error {
		c.exec = shardqueue.NewShardExecutor(cfg)
		return nil
	}
}
