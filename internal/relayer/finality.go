package relayer

import (
	"context"
	"errors"
	"time"
)

// ErrFinalityDeadlineExceeded is returned by WaitUntil when predicate never
// reports true before deadline elapses. The caller must treat this as a
// clean abort: no partial submission is attempted, and any chunk uploads
// already persisted on-chain are left for a later CleanupChunks.
var ErrFinalityDeadlineExceeded = errors.New("relayer: finality deadline exceeded")

// WaitUntil is the cooperative wait-until-condition primitive spec §9 names:
// it polls predicate every interval until it returns true, ctx is
// cancelled, or totalDeadline elapses. Each iteration calls predicate
// first, then checks the deadline, then waits in one select on ctx.Done and
// the next tick, so a cancellation is seen while waiting between polls.
func WaitUntil(ctx context.Context, totalDeadline, interval time.Duration, predicate func(ctx context.Context) (bool, error)) error {
	deadline := time.Now().Add(totalDeadline)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := predicate(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrFinalityDeadlineExceeded
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// WaitForFinality polls getFinalizedHeight until it reaches or passes
// targetHeight, per spec §4.4 step 3 ("poll the counterparty's finality
// endpoint until finalized_block_number >= target_block_number").
func WaitForFinality(ctx context.Context, totalDeadline, interval time.Duration, targetHeight uint64, getFinalizedHeight func(ctx context.Context) (uint64, error)) error {
	return WaitUntil(ctx, totalDeadline, interval, func(ctx context.Context) (bool, error) {
		height, err := getFinalizedHeight(ctx)
		if err != nil {
			return false, err
		}
		return height >= targetHeight, nil
	})
}
