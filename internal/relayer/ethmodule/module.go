// Package ethmodule adapts internal/relayer's shared algorithm to an
// Ethereum-family destination chain: submitting UpdateClient/Recv/Ack/
// Timeout as one transaction carrying the proof.EthereumMembershipProof
// envelope, grounded on how the original relayer's cosmos-to-eth module
// drives the same algorithm (recovered in SPEC_FULL.md §3.4).
package ethmodule

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmos/ibc-relay-core/internal/ethlightclient"
	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
	"github.com/cosmos/ibc-relay-core/internal/proof"
	"github.com/cosmos/ibc-relay-core/internal/relayer"
)

// ProofFetcher requests an account+storage proof from the Ethereum
// execution client (eth_getProof, spec §6), an external collaborator this
// module only depends on through this narrow interface.
type ProofFetcher interface {
	GetProof(ctx context.Context, blockNumber uint64, path []byte) (proof.EthereumMembershipProof, error)
}

// UpdateFetcher requests LightClientUpdates from the source chain's Beacon
// API, per spec §4.4 step 2/4.
type UpdateFetcher interface {
	FetchUpdate(ctx context.Context, period uint64) (*ethlightclient.LightClientUpdate, error)
}

// TxSubmitter sends the assembled batch to the destination chain and
// returns its transaction hash; how the tx is signed/broadcast is host
// plumbing (spec §1 Non-goals), so this module only depends on the
// narrowest possible interface.
type TxSubmitter interface {
	SubmitBatch(ctx context.Context, batch relayer.TxBatch) (txHash []byte, err error)
}

// ClientTracker resolves a client id to its current trusted state and the
// source chain's current head slot, the bookkeeping UpdateClient needs to
// compute which sync-committee periods must be crossed (spec §4.4 step 2),
// plus the trusted ConsensusState's own next-sync-committee aggregate
// pubkey, the seed FilterRedundantUpdates dedups the fetched periods
// against (spec §4.4 step 4).
type ClientTracker interface {
	TrustedState(ctx context.Context, clientID string) (client *ethlightclient.ClientState, trustedSlot uint64, err error)
	TrustedConsensusState(ctx context.Context, clientID string) (*ethlightclient.ConsensusState, error)
	SourceHeadSlot(ctx context.Context) (uint64, error)
}

// HeightToBlock resolves the consensus-side proof height recorded on a
// router event to the execution-side block number eth_getProof expects.
type HeightToBlock func(ctx context.Context, slot uint64) (uint64, error)

// Module is the Ethereum-family relayer.Module implementation.
type Module struct {
	SrcClientID, DstClientID string
	Proofs                   ProofFetcher
	Updates                  UpdateFetcher
	Submitter                TxSubmitter
	Clients                  ClientTracker
	BlockForSlot             HeightToBlock
	Builder                  *proof.EthereumBuilder
	Now                      func() time.Time

	// SrcPacketSeqs/DstPacketSeqs optionally restrict RelayEvents to a
	// specific set of sequences (spec §4.4 step 1), e.g. for a manual
	// `tx` retry of packets a prior pass failed to deliver. Nil relays
	// every eligible sequence.
	SrcPacketSeqs, DstPacketSeqs []uint64
}

// CreateClient is out of this module's scope in the core rewrite: creating
// a brand-new client is a one-time admin operation layered on
// RegisterClient (internal/router), not part of the steady-state relay
// loop spec §4.4 describes. Concrete deployment tooling lives outside the
// core (spec §1).
func (m *Module) CreateClient(ctx context.Context) (string, error) {
	return "", fmt.Errorf("ethmodule: CreateClient is a one-time deployment operation, not part of the steady-state relay loop")
}

// UpdateClient fetches and submits one LightClientUpdate per
// sync-committee period gap between clientID's trusted slot and the
// source chain's current head, per spec §4.4 step 2.
func (m *Module) UpdateClient(ctx context.Context, clientID string) error {
	client, trustedSlot, err := m.Clients.TrustedState(ctx, clientID)
	if err != nil {
		return fmt.Errorf("ethmodule: trusted state for %s: %w", clientID, err)
	}
	targetSlot, err := m.Clients.SourceHeadSlot(ctx)
	if err != nil {
		return fmt.Errorf("ethmodule: source head slot: %w", err)
	}

	periods := relayer.PeriodsToFetch(client, trustedSlot, targetSlot)
	updates := make([]*ethlightclient.LightClientUpdate, 0, len(periods))
	for _, period := range periods {
		update, err := m.Updates.FetchUpdate(ctx, period)
		if err != nil {
			return fmt.Errorf("ethmodule: fetch update for period %d: %w", period, err)
		}
		updates = append(updates, update)
	}

	trustedConsensus, err := m.Clients.TrustedConsensusState(ctx, clientID)
	if err != nil {
		return fmt.Errorf("ethmodule: trusted consensus state for %s: %w", clientID, err)
	}
	var trustedNextAggregate [48]byte
	if trustedConsensus.NextSyncCommittee != nil {
		trustedNextAggregate = trustedConsensus.NextSyncCommittee.AggregatePubkey
	}
	updates = relayer.FilterRedundantUpdates(trustedNextAggregate, updates)

	var batch relayer.TxBatch
	for _, update := range updates {
		encoded, err := m.Builder.BuildClientMessage(update)
		if err != nil {
			return fmt.Errorf("ethmodule: encode client update: %w", err)
		}
		batch.Messages = append(batch.Messages, relayer.Message{
			Kind:         relayer.MessageKindUpdateClient,
			ClientID:     clientID,
			ClientUpdate: encoded,
		})
	}
	if len(batch.Messages) == 0 {
		return nil
	}
	if _, err := m.Submitter.SubmitBatch(ctx, batch); err != nil {
		return fmt.Errorf("ethmodule: submit client updates: %w", err)
	}
	return nil
}

// RelayEvents classifies srcEvents/dstEvents into recv/ack/timeout
// messages, fetches a membership proof for each, and submits one ordered
// batch, per spec §4.4 steps 1, 5, 6.
func (m *Module) RelayEvents(ctx context.Context, srcEvents, dstEvents []relayer.EventWithHeight) (relayer.TxBatch, error) {
	now := m.Now().Unix()
	recv, ack := relayer.ClassifySendAndAckEvents(srcEvents, m.SrcClientID, m.DstClientID, now, m.SrcPacketSeqs, m.DstPacketSeqs)
	timeouts := relayer.ClassifyTimeoutEvents(dstEvents, m.SrcClientID, m.DstClientID, now, m.SrcPacketSeqs)

	// Per-packet proof fetches run concurrently (spec §5 "join all"
	// combinator); grouping recv/ack/timeout into one flat slice lets a
	// single FetchProofsConcurrently call bound every fetch in this batch.
	flat := append(append(append([]relayer.Message{}, timeouts...), recv...), ack...)
	filled, err := relayer.FetchProofsConcurrently(ctx, flat, func(ctx context.Context, msg relayer.Message) (relayer.Message, error) {
		blockNumber, err := m.BlockForSlot(ctx, msg.ProofHeight)
		if err != nil {
			return relayer.Message{}, fmt.Errorf("ethmodule: resolve block for slot %d: %w", msg.ProofHeight, err)
		}
		fetched, err := m.Proofs.GetProof(ctx, blockNumber, ibcPath(msg))
		if err != nil {
			return relayer.Message{}, fmt.Errorf("ethmodule: fetch proof for seq %d: %w", msg.Sequence, err)
		}
		encoded, err := m.Builder.BuildMembershipProof(fetched)
		if err != nil {
			return relayer.Message{}, fmt.Errorf("ethmodule: encode proof for seq %d: %w", msg.Sequence, err)
		}
		msg.ClientUpdate = encoded
		return msg, nil
	})
	if err != nil {
		return relayer.TxBatch{}, err
	}
	timeouts, recv, ack = filled[:len(timeouts)], filled[len(timeouts):len(timeouts)+len(recv)], filled[len(timeouts)+len(recv):]

	batch := relayer.AssembleBatch(nil, timeouts, recv, ack)
	if len(batch.Messages) == 0 {
		return batch, nil
	}
	if _, err := m.Submitter.SubmitBatch(ctx, batch); err != nil {
		return relayer.TxBatch{}, fmt.Errorf("ethmodule: submit batch: %w", err)
	}
	return batch, nil
}

// ibcPath recomputes the commitment path a proof must be fetched for, per
// spec §3's three path kinds, from the message's kind and packet: Recv
// reads the packet source's send-commitment, Ack reads the ack-commitment
// the packet's destination wrote, Timeout reads the packet destination's
// (absent) receipt. These are the paths the router verifies.
func ibcPath(msg relayer.Message) []byte {
	switch msg.Kind {
	case relayer.MessageKindRecv:
		return ibccommitment.SendCommitmentPath(msg.Packet.SourceClient, msg.Sequence)
	case relayer.MessageKindAck:
		return ibccommitment.AckCommitmentPath(msg.Packet.DestClient, msg.Sequence)
	case relayer.MessageKindTimeout:
		return ibccommitment.ReceiptPath(msg.Packet.DestClient, msg.Sequence)
	default:
		return nil
	}
}
