package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jusmatch/jusmatch-go/internal/apierrors"
	"github.com/jusmatch/jusmatch-go/internal/types"
)

func TestRankMatches_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/match" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var q types.MatchQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			t.Errorf("decode query: %v", err)
		}
		if q.CaseID != "case-1" || q.K != 5 {
			t.Errorf("unexpected query: %+v", q)
		}
		_ = json.NewEncoder(w).Encode(types.MatchResponse{Matches: []types.Match{
			{LawyerID: "adv-1", Name: "Dra. Souza", Fair: 0.91, Equity: 0.4, PrimaryArea: "trabalhista", Available: true},
			{LawyerID: "adv-2", Name: "Dr. Lima", Fair: 0.83, Equity: 0.6, PrimaryArea: "trabalhista"},
		}})
	}))
	defer srv.Close()

	got, err := RankMatches(context.Background(), srv.Client(), srv.URL, types.MatchQuery{CaseID: "case-1", K: 5})
	if err != nil || len(got) != 2 || got[0].LawyerID != "adv-1" {
		t.Fatalf("RankMatches unexpected: got=%+v err=%v", got, err)
	}
}

func TestRankMatches_Unauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	got, err := RankMatches(context.Background(), srv.Client(), srv.URL, types.MatchQuery{CaseID: "case-1", K: 5})
	if !apierrors.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no matches on 401, got %+v", got)
	}
}

func TestRankMatches_InvalidInputs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cases := []types.MatchQuery{
		{CaseID: "", K: 5},
		{CaseID: "case-1", K: 0},
		{CaseID: "case-1", K: 999},
		{CaseID: "case-1", K: 5, Preset: "vip"},
	}
	for _, q := range cases {
		if _, err := RankMatches(context.Background(), srv.Client(), srv.URL, q); err == nil {
			t.Fatalf("expected validation error for %+v", q)
		}
	}
}

// Exclusions let the caller request "other options" without repeats: a second
// query excluding the first page's IDs must return none of them.
func TestRankMatches_ExclusionsHonored(t *testing.T) {
	t.Parallel()
	pool := []types.Match{
		{LawyerID: "adv-1"}, {LawyerID: "adv-2"}, {LawyerID: "adv-3"}, {LawyerID: "adv-4"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q types.MatchQuery
		_ = json.NewDecoder(r.Body).Decode(&q)
		excluded := make(map[string]bool, len(q.ExcludeIDs))
		for _, id := range q.ExcludeIDs {
			excluded[id] = true
		}
		out := make([]types.Match, 0, q.K)
		for _, m := range pool {
			if !excluded[m.LawyerID] && len(out) < q.K {
				out = append(out, m)
			}
		}
		_ = json.NewEncoder(w).Encode(types.MatchResponse{Matches: out})
	}))
	defer srv.Close()

	first, err := RankMatches(context.Background(), srv.Client(), srv.URL, types.MatchQuery{CaseID: "case-1", K: 2})
	if err != nil || len(first) != 2 {
		t.Fatalf("first page: got=%+v err=%v", first, err)
	}

	seen := make([]string, 0, len(first))
	for _, m := range first {
		seen = append(seen, m.LawyerID)
	}
	second, err := RankMatches(context.Background(), srv.Client(), srv.URL, types.MatchQuery{CaseID: "case-1", K: 2, ExcludeIDs: seen})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	for _, m := range second {
		for _, id := range seen {
			if m.LawyerID == id {
				t.Fatalf("excluded lawyer %s returned again", id)
			}
		}
	}
}

func TestGetPersistedMatches_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cases/case-1/matches" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.MatchResponse{Matches: []types.Match{{LawyerID: "adv-7"}}})
	}))
	defer srv.Close()

	got, err := GetPersistedMatches(context.Background(), srv.Client(), srv.URL, "case-1")
	if err != nil || len(got) != 1 || got[0].LawyerID != "adv-7" {
		t.Fatalf("GetPersistedMatches unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetExplanation_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/explain" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req types.ExplainRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.CaseID != "case-1" || len(req.LawyerIDs) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(types.ExplainResponse{Explanations: map[string]string{
			"adv-1": "especialista na área com alta taxa de êxito",
			"adv-2": "atende na sua região",
		}})
	}))
	defer srv.Close()

	got, err := GetExplanation(context.Background(), srv.Client(), srv.URL, "case-1", []string{"adv-1", "adv-2"})
	if err != nil || len(got) != 2 || got["adv-1"] == "" {
		t.Fatalf("GetExplanation unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetExplanation_EmptyIDs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := GetExplanation(context.Background(), srv.Client(), srv.URL, "case-1", nil); err == nil {
		t.Fatal("expected error for empty lawyer_ids")
	}
}
