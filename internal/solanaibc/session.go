package solanaibc

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUploadSessionID tags one chunk-upload attempt for observability
// (logs, metrics labels, retry correlation); it has no bearing on PDA
// derivation, which is keyed deterministically by (payer, client,
// sequence, index) so retries of the same logical upload always resolve
// to the same accounts regardless of which session id logged them.
func NewUploadSessionID() string {
	return uuid.NewString()
}

// EncodePubkey base58-encodes a raw 32-byte Solana public key, the format
// used on the wire and in CLI output; solanago.PublicKey.String() does the
// same internally, but proof material and chunk metadata often arrive as
// plain [32]byte before being wrapped in a typed PublicKey.
func EncodePubkey(raw [32]byte) string {
	return base58.Encode(raw[:])
}

// DecodePubkey parses a base58-encoded Solana public key into raw bytes.
func DecodePubkey(s string) ([32]byte, error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], decoded)
	return out, nil
}
