package jusmatch

import "net/http"

// TokenSource resolves the current session's bearer token. It is injected at
// construction so client functions stay testable without ambient auth state;
// implementations typically read from the app's auth session.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource returning a fixed token. Useful for service
// credentials and tests.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, error) { return string(s), nil }

// bearerTransport attaches Authorization: Bearer <token> to every request.
// A nil source, a resolution error, or an empty token sends the request
// unauthenticated; the backend decides with a 401.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.base.RoundTrip(req)
	}
	token, err := t.tokens.Token()
	if err != nil || token == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}
