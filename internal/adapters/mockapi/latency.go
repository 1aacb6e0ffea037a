// Package mockapi implements the repository interfaces against static seed
// collections, standing in for a remote clinical records API. Every call
// waits a fixed simulated latency before replying and returns deep copies,
// so callers never share state with the seed data.
package mockapi

import (
	"context"
	"time"

	apperrors "github.com/medscribe/Clinicdashboarddesign/backend/pkg/errors"
)

// wait blocks for the simulated network latency. Cancelling the context
// aborts the call the way a real client would; the adapter surfaces that as
// an operation failure for the store to record.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return nil
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return apperrors.NewOperationError("request aborted", ctx.Err())
	case <-timer.C:
		return nil
	}
}
