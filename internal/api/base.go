// Package api holds the stateless request helpers against the case/match
// backend. Each function builds one request, performs it with the supplied
// http.Client, and maps non-2xx statuses through the apierrors taxonomy.
// No function caches, retries, or mutates state; callers own all results.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// postJSON builds a POST request with a JSON body and the standard headers.
// The Authorization header is attached by the client's transport, not here.
func postJSON(ctx context.Context, url string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
