// Package router implements the packet state machine (C3): per-client
// sequencing, commitment storage, and the send/receive/acknowledge/timeout
// lifecycle, verified against counterparty consensus via the light clients.
package router

import (
	"time"

	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
)

// MaxCleanupBatchSize bounds how many stale records CleanupPacketData
// closes in a single call.
const MaxCleanupBatchSize = 32

// CleanupGracePeriod is how long a receipt/ack/commitment record must sit
// past its CreatedAt (delivery time for a receipt or ack, send time for a
// send commitment) before it becomes eligible for cleanup.
const CleanupGracePeriod = 7 * 24 * time.Hour

// MaxTimeoutDuration bounds how far in the future SendPacket may set
// timeout_timestamp, a few weeks by default (spec §4.3).
const MaxTimeoutDuration = 28 * 24 * time.Hour

type Payload = ibccommitment.Payload
type Packet = ibccommitment.Packet

// ClientRecord binds a client id to its counterparty client id and tracks
// whether it still accepts traffic.
type ClientRecord struct {
	ClientID             string
	CounterpartyClientID string
	Frozen               bool
}

// PortRecord binds a port id to the identifier of the program/app
// authorized to send and receive on it. The router never inspects payload
// contents; it only checks the caller against this binding.
type PortRecord struct {
	PortID      string
	AppIdentity string
}

// CommitmentRecord is a stored 32-byte commitment plus its creation time,
// used by cleanup to find records past their grace period.
type CommitmentRecord struct {
	Value     [32]byte
	CreatedAt time.Time
}

// PacketStatus is the terminal outcome reported back to the sending
// application.
type PacketStatus int

const (
	PacketStatusPending PacketStatus = iota
	PacketStatusAcknowledged
	PacketStatusTimedOut
)
