package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jusmatch/jusmatch-go/internal/apierrors"
	"github.com/jusmatch/jusmatch-go/internal/types"
)

// CreateCase submits the case text, classification, urgency, precomputed
// summary embedding and coordinates, and returns the persisted case ID.
func CreateCase(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateCaseRequest) (*types.CreateCaseResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCaseText(req.ClientText); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/cases", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := apierrors.FromResponse("create case", resp); err != nil {
		return nil, err
	}

	var out types.CreateCaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartTriage asks the backend to triage a free-form description. The
// response acknowledges an asynchronous server-side task.
func StartTriage(ctx context.Context, httpClient *http.Client, baseURL string, req types.StartTriageRequest) (*types.TriageIntake, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCaseText(req.ClientText); err != nil {
		return nil, err
	}
	httpReq, err := postJSON(ctx, fmt.Sprintf("%s/triage", baseURL), req)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := apierrors.FromResponse("start triage", resp); err != nil {
		return nil, err
	}

	var out types.TriageIntake
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
