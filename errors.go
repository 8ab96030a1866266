package jusmatch

import (
	"errors"

	"github.com/jusmatch/jusmatch-go/internal/apierrors"
	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
)

// ErrUnauthorized is returned when the backend answers HTTP 401. The caller
// is expected to force re-authentication; the SDK never retries it.
var ErrUnauthorized = apierrors.ErrUnauthorized

// APIError carries the status code and server-supplied detail message of any
// other non-2xx backend response.
type APIError = apierrors.APIError

// IsUnauthorized reports whether err is the re-authentication condition.
func IsUnauthorized(err error) bool { return apierrors.IsUnauthorized(err) }

// ErrBackPressure is matched when the journal executor's shard queue is full.
var ErrBackPressure = shardqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }
