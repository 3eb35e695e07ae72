package relayer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProofFetchFunc fetches whatever per-message proof material a Module
// needs to finish filling in one Message; it must not mutate msgs outside
// its own index.
type ProofFetchFunc func(ctx context.Context, msg Message) (Message, error)

// FetchProofsConcurrently is the "join all" combinator spec §5 describes:
// per-packet proof fetches are issued in parallel, bounded only by
// downstream RPC concurrency (errgroup's default is unbounded; callers
// that need a cap should wrap fetch with their own semaphore). The first
// error cancels ctx for the remaining fetches and is returned; on success
// the returned slice preserves msgs' order.
func FetchProofsConcurrently(ctx context.Context, msgs []Message, fetch ProofFetchFunc) ([]Message, error) {
	if len(msgs) == 0 {
		return nil, nil
	}

	out := make([]Message, len(msgs))
	g, gctx := errgroup.WithContext(ctx)
	for i, msg := range msgs {
		i, msg := i, msg
		g.Go(func() error {
			filled, err := fetch(gctx, msg)
			if err != nil {
				return err
			}
			out[i] = filled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
