// Package solanamodule adapts internal/relayer's shared algorithm to a
// Solana destination: chunking oversize proofs across UploadProofChunk
// instructions (spec §4.4 "Size-bounded transmission"; payloads are not
// chunked here) and falling back to an Address Lookup Table when a batch's
// combined account list would exceed the transaction's static-account
// limit. Grounded on the original's
// cosmos-to-solana module (recovered in SPEC_FULL.md §3.4) and the PDA/
// instruction conventions in e2e/interchaintestv8/solana and
// packages/go-anchor.
package solanamodule

import (
	"context"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
	"github.com/cosmos/ibc-relay-core/internal/relayer"
	"github.com/cosmos/ibc-relay-core/internal/solanaibc"
)

// ProofFetcher requests an ICS-23 or MPT proof already encoded for the
// wire, keyed by the commitment path.
type ProofFetcher interface {
	GetProof(ctx context.Context, proofHeight uint64, path []byte) ([]byte, error)
}

// InstructionSubmitter sends a list of instructions as one or more
// transactions; splitting across transactions when the instruction list
// itself is too large for one is this interface's concern, not this
// module's (spec §1 Non-goals: "Solana transaction size management").
type InstructionSubmitter interface {
	Submit(ctx context.Context, instructions []solanago.Instruction) (signature solanago.Signature, err error)
}

// ClientUpdateFetcher fetches whatever UpdateClient instructions are
// needed to bring clientID's trusted state within proof range.
type ClientUpdateFetcher interface {
	FetchUpdateInstructions(ctx context.Context, clientID string) ([]solanago.Instruction, error)
}

// ALTManager creates and extends an Address Lookup Table, following
// e2e/interchaintestv8/solana's CreateAddressLookupTable: RelayEvents falls
// back to it when a batch's combined account list would exceed
// relayer.MaxAccountsWithoutALT (spec §4.4 "Size-bounded transmission").
type ALTManager interface {
	CreateLookupTable(ctx context.Context, addresses [][32]byte) error
	ExtendLookupTable(ctx context.Context, addresses [][32]byte) error
}

// Module is the Solana relayer.Module implementation.
type Module struct {
	ProgramID                solanago.PublicKey
	Payer                    solanago.PublicKey
	SrcClientID, DstClientID string
	Proofs                   ProofFetcher
	Submitter                InstructionSubmitter
	Updates                  ClientUpdateFetcher
	Now                      func() time.Time
	Logger                   *zap.Logger // optional; defaults to a no-op logger

	// ALT builds the Address Lookup Table fallback when a batch's account
	// list is too large to submit inline; nil means the fallback is
	// unavailable and RelayEvents fails closed instead of submitting a
	// transaction the cluster would reject.
	ALT ALTManager

	// SrcPacketSeqs/DstPacketSeqs optionally restrict RelayEvents to a
	// specific set of sequences (spec §4.4 step 1); nil relays every
	// eligible sequence.
	SrcPacketSeqs, DstPacketSeqs []uint64
}

func (m *Module) logger() *zap.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.NewNop()
}

func (m *Module) CreateClient(ctx context.Context) (string, error) {
	return "", fmt.Errorf("solanamodule: CreateClient is a one-time deployment operation, not part of the steady-state relay loop")
}

func (m *Module) UpdateClient(ctx context.Context, clientID string) error {
	ixs, err := m.Updates.FetchUpdateInstructions(ctx, clientID)
	if err != nil {
		return fmt.Errorf("solanamodule: fetch update instructions: %w", err)
	}
	if len(ixs) == 0 {
		return nil
	}
	if _, err := m.Submitter.Submit(ctx, ixs); err != nil {
		return fmt.Errorf("solanamodule: submit client update: %w", err)
	}
	return nil
}

// RelayEvents classifies events into recv/ack/timeout messages, fetches a
// proof per message, builds UploadProofChunk instructions for any proof
// larger than relayer.ChunkDataSize (timeouts, then receives, then acks),
// and submits those instructions in one Submit call whenever the batch
// holds at least one message, even if no proof needed chunking. It does not
// build the finalizing RecvPacket/AckPacket/TimeoutPacket instructions.
func (m *Module) RelayEvents(ctx context.Context, srcEvents, dstEvents []relayer.EventWithHeight) (relayer.TxBatch, error) {
	now := m.Now().Unix()
	recv, ack := relayer.ClassifySendAndAckEvents(srcEvents, m.SrcClientID, m.DstClientID, now, m.SrcPacketSeqs, m.DstPacketSeqs)
	timeouts := relayer.ClassifyTimeoutEvents(dstEvents, m.SrcClientID, m.DstClientID, now, m.SrcPacketSeqs)

	var instructions []solanago.Instruction
	for _, msg := range timeouts {
		ixs, err := m.proofInstructions(ctx, msg, 0)
		if err != nil {
			return relayer.TxBatch{}, err
		}
		instructions = append(instructions, ixs...)
	}
	for _, msg := range recv {
		ixs, err := m.proofInstructions(ctx, msg, 0)
		if err != nil {
			return relayer.TxBatch{}, err
		}
		instructions = append(instructions, ixs...)
	}
	for _, msg := range ack {
		ixs, err := m.proofInstructions(ctx, msg, 0)
		if err != nil {
			return relayer.TxBatch{}, err
		}
		instructions = append(instructions, ixs...)
	}

	batch := relayer.AssembleBatch(nil, timeouts, recv, ack)
	if len(batch.Messages) == 0 {
		return batch, nil
	}
	if err := m.ensureAccountCapacity(ctx, instructions); err != nil {
		return relayer.TxBatch{}, err
	}
	if _, err := m.Submitter.Submit(ctx, instructions); err != nil {
		return relayer.TxBatch{}, fmt.Errorf("solanamodule: submit batch: %w", err)
	}
	return batch, nil
}

// ensureAccountCapacity falls back to an Address Lookup Table when
// instructions' combined account list exceeds relayer.MaxAccountsWithoutALT,
// creating and extending it ahead of the caller's Submit. A nil m.ALT means
// the fallback is unavailable, so an oversize batch fails closed rather than
// being submitted to a cluster that would reject it.
func (m *Module) ensureAccountCapacity(ctx context.Context, instructions []solanago.Instruction) error {
	accounts := uniqueAccounts(instructions)
	if !relayer.NeedsAddressLookupTable(len(accounts)) {
		return nil
	}
	if m.ALT == nil {
		return fmt.Errorf("solanamodule: batch needs %d accounts (limit %d) but no ALTManager is configured", len(accounts), relayer.MaxAccountsWithoutALT)
	}

	batches := relayer.ALTExtendBatches(accounts)
	m.logger().Sugar().Infow("batch exceeds static account limit, falling back to address lookup table",
		"accounts", len(accounts), "extend_batches", len(batches))
	if err := m.ALT.CreateLookupTable(ctx, batches[0]); err != nil {
		return fmt.Errorf("solanamodule: create address lookup table: %w", err)
	}
	for _, addrs := range batches[1:] {
		if err := m.ALT.ExtendLookupTable(ctx, addrs); err != nil {
			return fmt.Errorf("solanamodule: extend address lookup table: %w", err)
		}
	}
	return nil
}

// uniqueAccounts flattens and deduplicates the account keys referenced
// across instructions, the count NeedsAddressLookupTable checks against the
// transaction's static-account limit.
func uniqueAccounts(instructions []solanago.Instruction) [][32]byte {
	seen := make(map[solanago.PublicKey]struct{})
	var out [][32]byte
	for _, ix := range instructions {
		for _, meta := range ix.Accounts() {
			if _, ok := seen[meta.PublicKey]; ok {
				continue
			}
			seen[meta.PublicKey] = struct{}{}
			out = append(out, meta.PublicKey)
		}
	}
	return out
}

// proofInstructions fetches the proof for one message and, if it exceeds
// relayer.ChunkDataSize, returns the UploadProofChunk instructions needed
// to stage it ahead of the finalizing instruction (spec §4.4).
func (m *Module) proofInstructions(ctx context.Context, msg relayer.Message, proofIdx uint32) ([]solanago.Instruction, error) {
	path := pathForMessage(msg)
	raw, err := m.Proofs.GetProof(ctx, msg.ProofHeight, path)
	if err != nil {
		return nil, fmt.Errorf("solanamodule: fetch proof for seq %d: %w", msg.Sequence, err)
	}
	if len(raw) <= relayer.ChunkDataSize {
		return nil, nil
	}

	chunks := relayer.SplitChunks(raw)
	session := solanaibc.NewUploadSessionID()
	m.logger().Sugar().Infow("chunking oversize proof for upload",
		"session", session, "client_id", msg.ClientID, "sequence", msg.Sequence, "chunks", len(chunks))

	var ixs []solanago.Instruction
	for idx, chunk := range chunks {
		pda, _, err := solanaibc.ProofChunkPDA(m.ProgramID, m.Payer, msg.ClientID, msg.Sequence, proofIdx, uint32(idx))
		if err != nil {
			return nil, fmt.Errorf("solanamodule: derive proof chunk pda: %w", err)
		}
		ix, err := solanaibc.NewUploadProofChunkInstruction(
			m.ProgramID, m.Payer, pda, solanago.SystemProgramID,
			msg.ClientID, msg.Sequence, proofIdx, uint32(idx), chunk, uint32(len(chunks)),
		)
		if err != nil {
			return nil, fmt.Errorf("solanamodule: build upload instruction: %w", err)
		}
		ixs = append(ixs, ix)
	}
	return ixs, nil
}

func pathForMessage(msg relayer.Message) []byte {
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
