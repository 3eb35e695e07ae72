package proof

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

var (
	// ErrAccountNotFound means the account proof resolved to an absent leaf;
	// the IBC contract must exist, so this is always an error, never a
	// legitimate non-membership result.
	ErrAccountNotFound   = errors.New("proof: ibc contract account not found in state trie")
	ErrStorageProofFailed = errors.New("proof: storage proof verification failed")
	ErrAccountProofFailed = errors.New("proof: account proof verification failed")
)

// account mirrors go-ethereum's internal state account RLP layout: [nonce,
// balance, storageRoot, codeHash].
type account struct {
	Nonce    uint64
	Balance  *big.Int
	Root     common.Hash
	CodeHash []byte
}

func buildProofDB(nodes [][]byte) *memorydb.Database {
	db := memorydb.New()
	for _, n := range nodes {
		key := crypto.Keccak256(n)
		_ = db.Put(key, n)
	}
	return db
}

// VerifyAccountProof verifies that contractAddress's account RLP is
// included in the trie rooted at stateRoot, and returns its storage root.
func VerifyAccountProof(stateRoot [32]byte, contractAddress [20]byte, p AccountProof) ([32]byte, error) {
	db := buildProofDB(p.Proof)
	key := crypto.Keccak256(contractAddress[:])

	value, err := trie.VerifyProof(common.Hash(stateRoot), key, db)
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w: %s", ErrAccountProofFailed, err)
	}
	if value == nil {
		return [32]byte{}, ErrAccountNotFound
	}

	var acc account
	if err := rlp.DecodeBytes(value, &acc); err != nil {
		return [32]byte{}, fmt.Errorf("proof: decode account rlp: %w", err)
	}
	return [32]byte(acc.Root), nil
}

// VerifyStorageProof verifies a single storage slot against storageRoot,
// returning the 32-byte big-endian value (all-zero for non-membership).
func VerifyStorageProof(storageRoot [32]byte, p StorageProof) ([32]byte, error) {
	db := buildProofDB(p.Proof)
	key := crypto.Keccak256(p.Key[:])

	value, err := trie.VerifyProof(common.Hash(storageRoot), key, db)
	if err != nil {
		return [32]byte{}, fmt.Errorf("%w: %s", ErrStorageProofFailed, err)
	}
	if value == nil {
		return [32]byte{}, nil // absent slot: treated as zero, i.e. non-membership
	}

	var decoded []byte
	if err := rlp.DecodeBytes(value, &decoded); err != nil {
		return [32]byte{}, fmt.Errorf("proof: decode storage value rlp: %w", err)
	}
	var out [32]byte
	copy(out[32-len(decoded):], decoded)
	return out, nil
}

// VerifyEthereumMembership chains an account proof and a storage proof:
// verify the IBC contract's account against stateRoot, then verify the
// storage slot against the account's storage root. ok=false with a nil
// error means non-membership (all-zero slot value).
func VerifyEthereumMembership(stateRoot [32]byte, contractAddress [20]byte, envelope EthereumMembershipProof) (value [32]byte, ok bool, err error) {
	storageRoot, err := VerifyAccountProof(stateRoot, contractAddress, envelope.Account)
	if err != nil {
		return [32]byte{}, false, err
	}
	if storageRoot != envelope.Account.StorageRoot {
		return [32]byte{}, false, fmt.Errorf("%w: storage root mismatch between proof and account", ErrAccountProofFailed)
	}

	value, err = VerifyStorageProof(storageRoot, envelope.Storage)
	if err != nil {
		return [32]byte{}, false, err
	}
	return value, value != ([32]byte{}), nil
}
