package tendermintlightclient

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

// Store is the persistence surface the chunking sub-protocol needs: a
// size-bounded on-chain VM backs this with PDAs/accounts, an in-process
// relayer test backs it with a map. All operations key on (submitter,
// targetHeight) so sessions never collide across callers.
type Store interface {
	MarkSignature(key [32]byte) error
	HasSignature(key [32]byte) bool

	PutChunk(submitter [32]byte, height uint64, index uint8, data []byte) error
	GetChunk(submitter [32]byte, height uint64, index uint8) ([]byte, bool)
	PutMetadata(submitter [32]byte, height uint64, meta ChunkMetadata) error
	GetMetadata(submitter [32]byte, height uint64) (ChunkMetadata, bool)
	DeleteUploadSession(submitter [32]byte, height uint64) error
}

// ChunkMetadata describes one in-flight header upload: how many chunks it
// was split into and the hash its reassembly must match.
type ChunkMetadata struct {
	TotalChunks       uint8
	HeaderCommitment  [32]byte
	Submitter         [32]byte
}

// PreVerifySignature persists a marker keyed by keccak256(pubkey||msg||sig)
// so AssembleAndUpdateClient can later count voting power without
// re-verifying the Ed25519 signature itself. The caller is responsible for
// having already verified sig against pubKey/msg in the same transaction
// (e.g. via a native Ed25519 precompile) before calling this.
func PreVerifySignature(store Store, pubKey [32]byte, msg []byte, sig [64]byte) ([32]byte, error) {
	key := signatureMarkerKey(pubKey, msg, sig)
	if err := store.MarkSignature(key); err != nil {
		return [32]byte{}, fmt.Errorf("tendermintlightclient: mark signature: %w", err)
	}
	return key, nil
}

func signatureMarkerKey(pubKey [32]byte, msg []byte, sig [64]byte) [32]byte {
	h := crypto.NewKeccakState()
	h.Write(pubKey[:])
	h.Write(msg)
	h.Write(sig[:])
	var out [32]byte
	h.Read(out[:])
	return out
}

// UploadHeaderChunk uploads one segment of a header whose concatenation
// must hash to headerCommitment. Re-uploading identical bytes at the same
// index is a no-op (content-addressed idempotency); uploading different
// bytes at the same index overwrites the slot.
func UploadHeaderChunk(store Store, submitter [32]byte, targetHeight uint64, index, totalChunks uint8, headerCommitment [32]byte, data []byte) error {
	if index >= totalChunks {
		return fmt.Errorf("%w: index=%d total=%d", ErrInvalidChunkIndex, index, totalChunks)
	}

	if existing, ok := store.GetChunk(submitter, targetHeight, index); ok && bytes.Equal(existing, data) {
		return nil
	}

	meta, ok := store.GetMetadata(submitter, targetHeight)
	if !ok {
		meta = ChunkMetadata{TotalChunks: totalChunks, HeaderCommitment: headerCommitment, Submitter: submitter}
		if err := store.PutMetadata(submitter, targetHeight, meta); err != nil {
			return fmt.Errorf("tendermintlightclient: put metadata: %w", err)
		}
	} else if meta.Submitter != submitter {
		return ErrUploadSessionNotOwned
	}

	return store.PutChunk(submitter, targetHeight, index, data)
}

// AssembleAndUpdateClient reassembles the uploaded chunks in order and
// validates their combined hash against the session's declared commitment,
// then runs the ordinary skip-verification acceptance predicate on header,
// re-deriving the canonical precommit votes from header.Commit and counting
// voting power from the signature markers PreVerifySignature left behind.
// header is the caller's argument: it is not decoded from, or compared
// with, the assembled bytes. Markers are read, not deleted; the session's
// chunks and metadata are deleted on success.
func AssembleAndUpdateClient(store Store, client *ClientState, trusted *ConsensusState, submitter [32]byte, targetHeight uint64, header *Header, now time.Time) (*ConsensusState, *ClientState, error) {
	meta, ok := store.GetMetadata(submitter, targetHeight)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no upload session for height %d", ErrMissingChunk, targetHeight)
	}

	var assembled bytes.Buffer
	for i := uint8(0); i < meta.TotalChunks; i++ {
		chunk, ok := store.GetChunk(submitter, targetHeight, i)
		if !ok {
			return nil, nil, fmt.Errorf("%w: index %d", ErrMissingChunk, i)
		}
		assembled.Write(chunk)
	}
	if got := [32]byte(crypto.Keccak256Hash(assembled.Bytes())); got != meta.HeaderCommitment {
		return nil, nil, fmt.Errorf("%w: got %x want %x", ErrMismatchedChunkHash, got, meta.HeaderCommitment)
	}

	verifier := markerVerifier{store: store, chainID: client.ChainID, commit: header.Commit}
	if err := VerifyHeader(client, trusted, header, now, verifier); err != nil {
		return nil, nil, err
	}

	if err := store.DeleteUploadSession(submitter, targetHeight); err != nil {
		return nil, nil, fmt.Errorf("tendermintlightclient: delete upload session: %w", err)
	}

	newConsensus, newClient := ApplyUpdate(client, header)
	return newConsensus, newClient, nil
}

// markerVerifier adapts the signature markers left by PreVerifySignature
// into a SignatureVerifier, so AssembleAndUpdateClient reuses the ordinary
// acceptance predicate unchanged instead of duplicating its power-threshold
// logic.
type markerVerifier struct {
	store   Store
	chainID string
	commit  Commit
}

func (m markerVerifier) Verify(pubKey [32]byte, msg, sig []byte) bool {
	if len(sig) != 64 {
		return false
	}
	var sigArr [64]byte
	copy(sigArr[:], sig)
	key := signatureMarkerKey(pubKey, msg, sigArr)
	return m.store.HasSignature(key)
}

// CleanupIncompleteUpload refunds rent for an abandoned upload session.
// Only the original submitter may call it; it is a no-op if no session
// exists for the given height.
func CleanupIncompleteUpload(store Store, submitter [32]byte, targetHeight uint64) error {
	meta, ok := store.GetMetadata(submitter, targetHeight)
	if !ok {
		return nil
	}
	if meta.Submitter != submitter {
		return ErrUploadSessionNotOwned
	}
	return store.DeleteUploadSession(submitter, targetHeight)
}
