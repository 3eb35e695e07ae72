// Package solanaibc derives the program-derived addresses and encodes the
// chunk-upload instructions the size-bounded VM path (spec §4.4 "Size-bounded
// transmission") needs, adapted from the Solana account layout and anchor-go
// instruction-builder conventions in tools/solana-ibc and packages/go-anchor.
package solanaibc

import (
	"encoding/binary"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
)

// Seeds, matching the layout e2e/interchaintestv8/solana/pda.go derives
// against the generated ics26-router/ics07-tendermint programs: this
// package re-derives the same addresses against a caller-supplied program
// id instead of an auto-generated package constant, so the relayer and its
// tests can target either the real router program or an in-process stub.
const (
	seedPayloadChunk = "payload_chunk"
	seedProofChunk   = "proof_chunk"
	seedHeaderChunk  = "header_chunk"
	seedSigMarker    = "sig_marker"
)

// PayloadChunkPDA derives the account holding one chunk of an oversize
// packet payload, keyed by (payer, client, seq, payload_idx, chunk_idx) per
// spec §4.4 so two relayers racing the same packet never collide.
func PayloadChunkPDA(programID, payer solanago.PublicKey, clientID string, sequence uint64, payloadIdx, chunkIdx uint32) (solanago.PublicKey, uint8, error) {
	return deriveChunkPDA(programID, seedPayloadChunk, payer, clientID, sequence, payloadIdx, chunkIdx)
}

// ProofChunkPDA derives the account holding one chunk of an oversize
// membership/non-membership proof, same keying scheme as PayloadChunkPDA.
func ProofChunkPDA(programID, payer solanago.PublicKey, clientID string, sequence uint64, proofIdx, chunkIdx uint32) (solanago.PublicKey, uint8, error) {
	return deriveChunkPDA(programID, seedProofChunk, payer, clientID, sequence, proofIdx, chunkIdx)
}

func deriveChunkPDA(programID solanago.PublicKey, seed string, payer solanago.PublicKey, clientID string, sequence uint64, idx, chunkIdx uint32) (solanago.PublicKey, uint8, error) {
	seqBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seqBytes, sequence)
	idxBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(idxBytes, idx)
	chunkBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(chunkBytes, chunkIdx)

	pda, bump, err := solanago.FindProgramAddress(
		[][]byte{[]byte(seed), payer.Bytes(), []byte(clientID), seqBytes, idxBytes, chunkBytes},
		programID,
	)
	if err != nil {
		return solanago.PublicKey{}, 0, fmt.Errorf("solanaibc: derive %s pda: %w", seed, err)
	}
	return pda, bump, nil
}

// HeaderChunkPDA derives the account holding one chunk of an oversize
// Tendermint header upload (C2's UploadHeaderChunk), keyed by
// (submitter, target_height, index) so it cannot be reused across upload
// sessions per §4.2's "Invariant".
func HeaderChunkPDA(programID, submitter solanago.PublicKey, targetHeight uint64, index uint32) (solanago.PublicKey, uint8, error) {
	heightBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(heightBytes, targetHeight)
	indexBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(indexBytes, index)

	pda, bump, err := solanago.FindProgramAddress(
		[][]byte{[]byte(seedHeaderChunk), submitter.Bytes(), heightBytes, indexBytes},
		programID,
	)
	if err != nil {
		return solanago.PublicKey{}, 0, fmt.Errorf("solanaibc: derive header chunk pda: %w", err)
	}
	return pda, bump, nil
}

// SignatureMarkerPDA derives the PreVerifySignature marker account, keyed
// by keccak256(pubkey||msg||sig) per spec §4.2, scoped additionally to
// (submitter, target_height) so markers cannot be replayed into a
// different upload session.
func SignatureMarkerPDA(programID, submitter solanago.PublicKey, targetHeight uint64, markerHash [32]byte) (solanago.PublicKey, uint8, error) {
	heightBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(heightBytes, targetHeight)

	pda, bump, err := solanago.FindProgramAddress(
		[][]byte{[]byte(seedSigMarker), submitter.Bytes(), heightBytes, markerHash[:]},
		programID,
	)
	if err != nil {
		return solanago.PublicKey{}, 0, fmt.Errorf("solanaibc: derive signature marker pda: %w", err)
	}
	return pda, bump, nil
}
