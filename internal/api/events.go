package api

import (
	"context"
	"net/http"

	"github.com/jusmatch/jusmatch-go/internal/apierrors"
	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
	"github.com/jusmatch/jusmatch-go/internal/types"
)

// RecordTurn journals one transcript turn via the sharded executor. Keying by
// conversation ID keeps the backend's per-conversation event order identical
// to local creation order; the executor retries recoverable failures with
// backoff.
func RecordTurn(ctx context.Context, exec types.Executor, httpClient *http.Client, baseURL string, ev types.TurnEvent) (*types.EnqueueAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(ev.ConversationID, "conversation_id"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(ev.TurnID, "turn_id"); err != nil {
		return nil, err
	}

	recordJob := shardqueue.JobFunc(func(jobCtx context.Context) error {
		httpReq, err := postJSON(jobCtx, baseURL+"/triage/events", ev)
		if err != nil {
			return err
		}
		resp, err := httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		return apierrors.FromResponse("record turn", resp)
	})

	if err := exec.Submit(ctx, ev.ConversationID, recordJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{ConversationID: ev.ConversationID, Status: "enqueued"}, nil
}
