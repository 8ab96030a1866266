package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jusmatch/jusmatch-go/internal/types"
)

func completionServer(t *testing.T, content string, status int, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if capture != nil {
			_ = json.NewDecoder(r.Body).Decode(capture)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": content}}},
			})
		}
	}))
}

func enabledClient(srvURL string) *Client {
	return New(Config{BaseURL: srvURL, APIKey: "test-key", Enabled: true})
}

func transcript() []types.Message {
	return []types.Message{{Role: types.RoleUser, Content: "Fui demitido sem justa causa"}}
}

func TestAnalyze_InProgress(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, `{"isComplete": false, "nextQuestion": "Quando ocorreu a demissão?"}`, http.StatusOK, &captured)
	defer srv.Close()

	res, err := enabledClient(srv.URL).Analyze(context.Background(), transcript())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Complete || res.NextQuestion != "Quando ocorreu a demissão?" {
		t.Fatalf("unexpected result: %+v", res)
	}

	// System instruction is prepended and never part of the transcript.
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	if captured.Messages[1].Content != "Fui demitido sem justa causa" {
		t.Fatalf("transcript not forwarded: %+v", captured.Messages[1])
	}
}

func TestAnalyze_Complete(t *testing.T) {
	payload := `{"isComplete": true, "analysis": {
		"classificacao": {"area_principal": "trabalhista", "subarea": "rescisao", "natureza": "contencioso"},
		"viabilidade": {"classificacao": "viavel"},
		"urgencia": {"nivel": "media"}
	}}`
	srv := completionServer(t, payload, http.StatusOK, nil)
	defer srv.Close()

	res, err := enabledClient(srv.URL).Analyze(context.Background(), transcript())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.Complete || res.Analysis == nil {
		t.Fatalf("expected complete result, got %+v", res)
	}
	if res.Analysis.Classification.Area != "trabalhista" || res.Analysis.Urgency.Level != "media" {
		t.Fatalf("analysis not preserved: %+v", res.Analysis)
	}
}

func TestAnalyze_FencedJSONAccepted(t *testing.T) {
	srv := completionServer(t, "```json\n{\"isComplete\": false, \"nextQuestion\": \"Algo mais?\"}\n```", http.StatusOK, nil)
	defer srv.Close()

	res, err := enabledClient(srv.URL).Analyze(context.Background(), transcript())
	if err != nil || res.NextQuestion != "Algo mais?" {
		t.Fatalf("fenced JSON not handled: res=%+v err=%v", res, err)
	}
}

func TestAnalyze_MalformedResponses(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"isComplete": false}`,                                // missing nextQuestion
		`{"isComplete": true}`,                                 // missing analysis
		`{"isComplete": true, "analysis": {}}`,                 // analysis missing required sections
		`{"isComplete": true, "analysis": {"fatos": {}}}`,      // still missing classification
	}
	for _, content := range cases {
		srv := completionServer(t, content, http.StatusOK, nil)
		res, err := enabledClient(srv.URL).Analyze(context.Background(), transcript())
		srv.Close()
		if !errors.Is(err, ErrMalformedAnalysis) {
			t.Fatalf("content %q: expected ErrMalformedAnalysis, got res=%+v err=%v", content, res, err)
		}
	}
}

func TestAnalyze_NonOKStatus(t *testing.T) {
	srv := completionServer(t, "", http.StatusBadGateway, nil)
	defer srv.Close()

	if _, err := enabledClient(srv.URL).Analyze(context.Background(), transcript()); err == nil {
		t.Fatal("expected error on 502")
	}
}

// The disabled path is a product decision, not an error: a canned in-progress
// result, no network traffic.
func TestAnalyze_DisabledPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("disabled client must not touch the network")
	}))
	defer srv.Close()

	for _, cfg := range []Config{
		{BaseURL: srv.URL, APIKey: "test-key", Enabled: false}, // flag off
		{BaseURL: srv.URL, APIKey: "", Enabled: true},          // credential missing
	} {
		c := New(cfg)
		if c.Assisted() {
			t.Fatalf("Assisted() should be false for %+v", cfg)
		}
		res, err := c.Analyze(context.Background(), transcript())
		if err != nil {
			t.Fatalf("disabled Analyze errored: %v", err)
		}
		if res.Complete || res.NextQuestion != disabledMessage {
			t.Fatalf("unexpected disabled result: %+v", res)
		}
	}
}

func TestAnalyze_EnabledFlag(t *testing.T) {
	c := New(Config{APIKey: "k", Enabled: true})
	if !c.Assisted() {
		t.Fatal("expected Assisted() true with key and flag")
	}
}
