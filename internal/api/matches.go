package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jusmatch/jusmatch-go/internal/apierrors"
	"github.com/jusmatch/jusmatch-go/internal/types"
)

// RankMatches requests up to q.K ranked candidates for a case, optionally
// biased by a preset and constrained by practice area, radius and an
// exclusion list. Results are never cached; every call re-ranks.
func RankMatches(ctx context.Context, httpClient *http.Client, baseURL string, q types.MatchQuery) ([]types.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(q.CaseID, "case_id"); err != nil {
		return nil, err
	}
	if err := types.ValidateK(q.K); err != nil {
		return nil, err
	}
	if err := types.ValidatePreset(q.Preset); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/match", baseURL), q)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := apierrors.FromResponse("rank matches", resp); err != nil {
		return nil, err
	}

	var out types.MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

// GetPersistedMatches fetches matches already computed and stored for a case,
// bypassing live re-ranking. Used when arriving from a notifications entry
// point rather than a fresh search.
func GetPersistedMatches(ctx context.Context, httpClient *http.Client, baseURL, caseID string) ([]types.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(caseID, "case_id"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/cases/%s/matches", baseURL, caseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := apierrors.FromResponse("get persisted matches", resp); err != nil {
		return nil, err
	}

	var out types.MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

// GetExplanation requests a natural-language justification per lawyer for why
// they were matched to the case. Returns a map keyed by lawyer ID.
func GetExplanation(ctx context.Context, httpClient *http.Client, baseURL, caseID string, lawyerIDs []string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(caseID, "case_id"); err != nil {
		return nil, err
	}
	if len(lawyerIDs) == 0 {
		return nil, fmt.Errorf("lawyer_ids must not be empty")
	}
	req := types.ExplainRequest{CaseID: caseID, LawyerIDs: lawyerIDs}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/explain", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := apierrors.FromResponse("get explanation", resp); err != nil {
		return nil, err
	}

	var out types.ExplainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Explanations, nil
}
