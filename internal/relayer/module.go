package relayer

import "context"

// Module adapts the shared relay algorithm in engine.go to one destination
// chain family. The original implementation runs the same algorithm twice,
// once per destination (cosmos-to-eth, cosmos-to-solana); this rewrite
// keeps the algorithm once in Engine and varies only the two methods that
// differ: how a client is created/updated, and how a batch of messages is
// encoded and submitted.
type Module interface {
	// RelayEvents builds and submits a destination-chain transaction (or
	// transaction sequence) for the given source/destination event sets,
	// returning the batch that was submitted for observability.
	RelayEvents(ctx context.Context, srcEvents, dstEvents []EventWithHeight) (TxBatch, error)

	// CreateClient initializes a new light client on the destination chain
	// tracking the source chain's consensus, returning the new client id.
	CreateClient(ctx context.Context) (string, error)

	// UpdateClient submits whatever client update messages are needed to
	// bring clientID's trusted state within proof range of the source
	// chain's current height.
	UpdateClient(ctx context.Context, clientID string) error
}
