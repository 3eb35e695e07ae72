package proof

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
)

func TestAccountRLPRoundTrip(t *testing.T) {
	acc := account{Nonce: 1, Balance: big.NewInt(42), Root: [32]byte{0xBB}, CodeHash: []byte{0xCC}}

	encoded, err := rlp.EncodeToBytes(&acc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded account
	if err := rlp.DecodeBytes(encoded, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Nonce != acc.Nonce || decoded.Balance.Cmp(acc.Balance) != 0 || decoded.Root != acc.Root {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, acc)
	}
}

func TestVerifyAccountProofRejectsMalformedProof(t *testing.T) {
	_, err := VerifyAccountProof([32]byte{0xFF}, [20]byte{0xAA}, AccountProof{Proof: [][]byte{{0x01, 0x02}}})
	if err == nil {
		t.Fatalf("expected malformed proof nodes to fail verification")
	}
}

func TestVerifyStorageProofRejectsUnresolvableRoot(t *testing.T) {
	// An empty proof database cannot resolve any non-empty root; this is a
	// failed verification, distinct from a genuine non-membership result
	// (which requires a proof walking down to the point of absence).
	_, err := VerifyStorageProof([32]byte{0xFF}, StorageProof{Key: [32]byte{1}, Proof: nil})
	if err == nil {
		t.Fatalf("expected an error when the proof database cannot resolve the root")
	}
}
