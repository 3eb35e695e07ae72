// Package ibccommitment computes the bit-exact commitment hashes the router
// (C3) writes at commitment paths and the light clients (C1/C2) verify
// against counterparty state roots.
package ibccommitment

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// IBCVersionByte prefixes every packet/ack commitment hash, reserving room
// for a future commitment format without breaking existing proofs.
const IBCVersionByte byte = 0x01

// Payload is the generic application payload carried by a packet; the
// router never inspects Value.
type Payload struct {
	SourcePort string
	DestPort   string
	Version    string
	Encoding   string
	Value      []byte
}

// Packet is the wire packet the router commits and the relayer proves.
type Packet struct {
	Sequence        uint64
	SourceClient    string
	DestClient      string
	TimeoutTimestamp uint64
	Payloads        []Payload
}

func sha256Sum(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// PayloadHash hashes one payload per the §6 schema: sha256 of each field,
// concatenated and hashed again.
func PayloadHash(p Payload) [32]byte {
	sourcePort := sha256Sum([]byte(p.SourcePort))
	destPort := sha256Sum([]byte(p.DestPort))
	version := sha256Sum([]byte(p.Version))
	encoding := sha256Sum([]byte(p.Encoding))
	value := sha256Sum(p.Value)

	buf := make([]byte, 0, 5*32)
	buf = append(buf, sourcePort[:]...)
	buf = append(buf, destPort[:]...)
	buf = append(buf, version[:]...)
	buf = append(buf, encoding[:]...)
	buf = append(buf, value[:]...)
	return sha256Sum(buf)
}

// PacketCommitmentHash computes the commitment value stored at
// commitments/<source_client>/<sequence>.
func PacketCommitmentHash(p Packet) [32]byte {
	destClient := sha256Sum([]byte(p.DestClient))

	var timeoutBytes [8]byte
	binary.BigEndian.PutUint64(timeoutBytes[:], p.TimeoutTimestamp)
	timeout := sha256Sum(timeoutBytes[:])

	var payloadsBuf []byte
	for _, payload := range p.Payloads {
		h := PayloadHash(payload)
		payloadsBuf = append(payloadsBuf, h[:]...)
	}
	payloads := sha256Sum(payloadsBuf)

	buf := make([]byte, 0, 1+32*3)
	buf = append(buf, IBCVersionByte)
	buf = append(buf, destClient[:]...)
	buf = append(buf, timeout[:]...)
	buf = append(buf, payloads[:]...)
	return sha256Sum(buf)
}

// UniversalErrorAck is the sentinel acknowledgement an app returns on any
// processing error; the relayer detects it to trigger refund logic
// elsewhere (the router itself never interprets acknowledgement contents).
var UniversalErrorAck = sha256Sum([]byte("UNIVERSAL_ERROR_ACKNOWLEDGEMENT"))

// AcksCommitmentHash computes the commitment value stored at
// acks/<dest_client>/<sequence>. Requires at least one acknowledgement.
func AcksCommitmentHash(acks [][]byte) ([32]byte, bool) {
	if len(acks) == 0 {
		return [32]byte{}, false
	}
	var buf []byte
	buf = append(buf, IBCVersionByte)
	for _, ack := range acks {
		h := sha256Sum(ack)
		buf = append(buf, h[:]...)
	}
	return sha256Sum(buf), true
}

// ReceiptCommitmentHash computes the value stored at
// receipts/<dest_client>/<sequence>: keccak256 of the borsh-serialized
// packet, matching the Solana-side router's account encoding.
func ReceiptCommitmentHash(borshEncodedPacket []byte) [32]byte {
	return [32]byte(crypto.Keccak256Hash(borshEncodedPacket))
}
