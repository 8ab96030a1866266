// Package apierrors defines the error taxonomy of the case/match backend and
// the recoverability classification consumed by the journal executor's retry
// policy.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthorized is returned on HTTP 401. Callers are expected to force
// re-authentication; it is never retried.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is any other non-2xx response from the backend, carrying the
// server-supplied detail message.
type APIError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// FromResponse converts a non-2xx response into the taxonomy above.
// It returns nil for 2xx statuses. The response body is consumed.
func FromResponse(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode, Detail: detailFrom(resp.Body)}
}

// detailFrom extracts the backend's {"detail": "..."} message, falling back
// to the raw body when it is not JSON.
func detailFrom(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return string(raw)
}

// IsUnauthorized reports whether err is the 401 condition.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsIrrecoverable reports whether a journal job error should fail fast
// instead of being retried: 4xx statuses except 408 and 429. Network errors
// and 5xx responses stay recoverable.
func IsIrrecoverable(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}
