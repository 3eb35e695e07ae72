package tendermintlightclient

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestUploadHeaderChunkIsIdempotent(t *testing.T) {
	store := NewMemStore()
	submitter := [32]byte{1}
	commitment := [32]byte{2}

	if err := UploadHeaderChunk(store, submitter, 100, 0, 2, commitment, []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := UploadHeaderChunk(store, submitter, 100, 0, 2, commitment, []byte("first")); err != nil {
		t.Fatalf("expected re-upload of identical bytes to be a no-op, got %v", err)
	}

	data, ok := store.GetChunk(submitter, 100, 0)
	if !ok || string(data) != "first" {
		t.Fatalf("expected chunk 0 to contain %q, got %q (ok=%v)", "first", data, ok)
	}
}

func TestUploadHeaderChunkOverwritesDifferentBytes(t *testing.T) {
	store := NewMemStore()
	submitter := [32]byte{1}
	commitment := [32]byte{2}

	if err := UploadHeaderChunk(store, submitter, 100, 0, 2, commitment, []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := UploadHeaderChunk(store, submitter, 100, 0, 2, commitment, []byte("second")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := store.GetChunk(submitter, 100, 0)
	if string(data) != "second" {
		t.Fatalf("expected chunk to be overwritten, got %q", data)
	}
}

func TestUploadHeaderChunkRejectsOutOfRangeIndex(t *testing.T) {
	store := NewMemStore()
	err := UploadHeaderChunk(store, [32]byte{1}, 100, 5, 2, [32]byte{}, []byte("x"))
	if !errors.Is(err, ErrInvalidChunkIndex) {
		t.Fatalf("expected ErrInvalidChunkIndex, got %v", err)
	}
}

func TestUploadHeaderChunkRejectsForeignSubmitter(t *testing.T) {
	store := NewMemStore()
	a := [32]byte{1}
	b := [32]byte{2}
	commitment := [32]byte{3}

	if err := UploadHeaderChunk(store, a, 100, 0, 2, commitment, []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := UploadHeaderChunk(store, b, 100, 1, 2, commitment, []byte("y"))
	if !errors.Is(err, ErrUploadSessionNotOwned) {
		t.Fatalf("expected ErrUploadSessionNotOwned, got %v", err)
	}
}

func TestCleanupIncompleteUploadRemovesSessionAndIsIdempotent(t *testing.T) {
	store := NewMemStore()
	submitter := [32]byte{1}
	commitment := [32]byte{2}
	_ = UploadHeaderChunk(store, submitter, 100, 0, 2, commitment, []byte("x"))

	if err := CleanupIncompleteUpload(store, submitter, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.GetMetadata(submitter, 100); ok {
		t.Fatalf("expected metadata to be removed")
	}
	// Cleaning up again (no session left) must be a no-op, not an error.
	if err := CleanupIncompleteUpload(store, submitter, 100); err != nil {
		t.Fatalf("expected idempotent cleanup, got %v", err)
	}
}

func TestPreVerifySignatureMarkerRoundTrips(t *testing.T) {
	store := NewMemStore()
	pub := [32]byte{7}
	msg := []byte("vote bytes")
	sig := [64]byte{9}

	key, err := PreVerifySignature(store, pub, msg, sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.HasSignature(key) {
		t.Fatalf("expected signature marker to be recorded")
	}

	want := crypto.Keccak256Hash(append(append(append([]byte{}, pub[:]...), msg...), sig[:]...))
	if [32]byte(want) != key {
		t.Fatalf("expected marker key to match keccak256(pubkey||msg||sig)")
	}
}
