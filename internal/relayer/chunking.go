package relayer

// ChunkDataSize bounds a single chunk upload, sized to fit comfortably
// inside one host-chain transaction alongside its instruction overhead.
const ChunkDataSize = 900

// MaxAccountsWithoutALT is the largest account list a single transaction
// can carry before the relayer must fall back to an Address Lookup Table.
const MaxAccountsWithoutALT = 20

// ALTExtendBatchSize bounds how many addresses one "extend ALT" submission
// adds at a time.
const ALTExtendBatchSize = 20

// SplitChunks splits data into ChunkDataSize-sized pieces in order; the
// final piece may be shorter. Re-uploading the same split at the same
// index is idempotent at the chunk-store layer (see
// tendermintlightclient.UploadHeaderChunk), so callers may retry freely.
func SplitChunks(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(data)+ChunkDataSize-1)/ChunkDataSize)
	for start := 0; start < len(data); start += ChunkDataSize {
		end := start + ChunkDataSize
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// NeedsAddressLookupTable reports whether a transaction carrying
// accountCount accounts must use an ALT instead of an inline account list.
func NeedsAddressLookupTable(accountCount int) bool {
	return accountCount > MaxAccountsWithoutALT
}

// ALTExtendBatches splits addresses into ALTExtendBatchSize-sized batches
// for sequential "extend ALT" submissions (a single instruction cannot add
// an unbounded number of addresses to a lookup table).
func ALTExtendBatches(addresses [][32]byte) [][][32]byte {
	if len(addresses) == 0 {
		return nil
	}
	batches := make([][][32]byte, 0, (len(addresses)+ALTExtendBatchSize-1)/ALTExtendBatchSize)
	for start := 0; start < len(addresses); start += ALTExtendBatchSize {
		end := start + ALTExtendBatchSize
		if end > len(addresses) {
			end = len(addresses)
		}
		batches = append(batches, addresses[start:end])
	}
	return batches
}
