package ibccommitment

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// Path tags distinguishing the three commitment kinds stored under the
// same client-id prefix.
const (
	PathTagSend    byte = 0x01
	PathTagReceipt byte = 0x02
	PathTagAck     byte = 0x03
)

// CommitmentPath returns the counterparty-observable path bytes
// `client_id || tag || seq_be8`.
func CommitmentPath(clientID string, tag byte, sequence uint64) []byte {
	path := make([]byte, 0, len(clientID)+1+8)
	path = append(path, []byte(clientID)...)
	path = append(path, tag)
	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], sequence)
	path = append(path, seqBytes[:]...)
	return path
}

func SendCommitmentPath(clientID string, sequence uint64) []byte {
	return CommitmentPath(clientID, PathTagSend, sequence)
}

func ReceiptPath(clientID string, sequence uint64) []byte {
	return CommitmentPath(clientID, PathTagReceipt, sequence)
}

func AckCommitmentPath(clientID string, sequence uint64) []byte {
	return CommitmentPath(clientID, PathTagAck, sequence)
}

// EthereumStorageKey computes the storage key used inside the Ethereum-side
// Solidity mapping: keccak256(path_bytes || slot_be32). commitmentSlot is
// ClientState.IBCCommitmentSlot, already a 32-byte big-endian word.
func EthereumStorageKey(path []byte, commitmentSlot [32]byte) [32]byte {
	buf := make([]byte, 0, len(path)+32)
	buf = append(buf, path...)
	buf = append(buf, commitmentSlot[:]...)
	return [32]byte(crypto.Keccak256Hash(buf))
}

// Ics23Path builds the ICS-23 path for the Tendermint side: ["ibc", <commitment-subpath>].
func Ics23Path(commitmentSubpath []byte) [][]byte {
	return [][]byte{[]byte("ibc"), commitmentSubpath}
}
