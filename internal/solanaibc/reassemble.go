package solanaibc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// ErrMismatchedChunkHash mirrors spec §7's "size-bounded assembly" failure
// category: the concatenated chunk bytes don't hash to the commitment the
// uploader declared up front.
var ErrMismatchedChunkHash = errors.New("solanaibc: reassembled chunks do not match declared commitment")

// ErrMissingChunk is returned when an index in [0, totalChunks) has no
// uploaded bytes at reassembly time.
var ErrMissingChunk = errors.New("solanaibc: missing chunk at reassembly")

// ChunkFetcher reads one previously-uploaded chunk by index; bound to a
// single (client, sequence, payload/proof index) upload session by the
// caller.
type ChunkFetcher func(chunkIdx uint32) ([]byte, bool)

// Reassemble concatenates totalChunks chunks in strict index order and
// verifies the result hashes to commitment, the check spec §4.4 requires
// before a RecvPacket/AckPacket/TimeoutPacket finalizing instruction may
// consume chunk PDAs. Uses keccak256 to match the on-chain commitment
// scheme the router already uses for receipts (§6).
func Reassemble(fetch ChunkFetcher, totalChunks uint32, commitment [32]byte) ([]byte, error) {
	var buf bytes.Buffer
	for i := uint32(0); i < totalChunks; i++ {
		chunk, ok := fetch(i)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrMissingChunk, i)
		}
		buf.Write(chunk)
	}
	assembled := buf.Bytes()
	if got := crypto.Keccak256Hash(assembled); [32]byte(got) != commitment {
		return nil, fmt.Errorf("%w: got %x want %x", ErrMismatchedChunkHash, got, commitment)
	}
	return assembled, nil
}

// ChunkCommitment computes the commitment a chunked upload must reassemble
// to, so the relayer can populate UploadPayloadChunk/UploadProofChunk's
// metadata before the first chunk goes out.
func ChunkCommitment(data []byte) [32]byte {
	return crypto.Keccak256Hash(data)
}
