package relayer

import (
	"context"
	"errors"
	"fmt"
)

// ErrInsufficientAttestations is returned when fewer than MinRequiredSigs
// attestor signatures were collected for a state attestation.
var ErrInsufficientAttestations = errors.New("relayer: insufficient attestor signatures")

// Attestation is one attestor's signature over attestedData for a given
// height/timestamp, the unit the aggregator collects before a client
// update can be built in attested mode.
type Attestation struct {
	Height        uint64
	Timestamp     uint64
	AttestedData  []byte
	Signatures    [][]byte
}

// Aggregator collects attestations for the destination chain's attested
// light client, mirroring the original Aggregator client used by
// build_attestor_update_client_tx.
type Aggregator interface {
	GetLatestHeight(ctx context.Context) (uint64, error)
	GetStateAttestation(ctx context.Context, height uint64) (Attestation, error)
}

// ClientMessageBuilder encodes a client message for the wire. It is the
// same two-family dispatch point proof.SelectBuilder resolves by client id
// prefix (spec §9): a native (non-Wasm) destination and a Wasm-wrapped
// destination each implement it with their own wire envelope, so attested
// mode's client update goes out encoded the same way an SP1-verified one
// would, never as a bare Go struct.
type ClientMessageBuilder interface {
	BuildClientMessage(header any) ([]byte, error)
}

// AttestedUpdate builds a client-update Message in M-of-N attested mode: it
// fetches the latest attested height and its signature set, fails closed if
// fewer than minRequiredSigs signatures were collected rather than
// submitting an under-attested update, and encodes the attestation through
// builder so the destination-family dispatch (native vs. Wasm) applies to
// attested updates exactly as it does to light-client-verified ones.
func AttestedUpdate(ctx context.Context, agg Aggregator, clientID string, minRequiredSigs int, builder ClientMessageBuilder) (Message, error) {
	height, err := agg.GetLatestHeight(ctx)
	if err != nil {
		return Message{}, err
	}
	attestation, err := agg.GetStateAttestation(ctx, height)
	if err != nil {
		return Message{}, err
	}
	if len(attestation.Signatures) < minRequiredSigs {
		return Message{}, ErrInsufficientAttestations
	}

	encoded, err := builder.BuildClientMessage(attestation)
	if err != nil {
		return Message{}, fmt.Errorf("relayer: encode attested client update: %w", err)
	}

	return Message{
		Kind:         MessageKindUpdateClient,
		ClientID:     clientID,
		ProofHeight:  attestation.Height,
		ClientUpdate: encoded,
	}, nil
}
