// Package relayer implements the control loop (C4): classifying events from
// both chains into the ordered message batch a destination client accepts,
// fetching the light-client updates that batch depends on, and driving the
// chunked-transmission and attested-mode variants two families of
// destination chain need.
package relayer

import "github.com/cosmos/ibc-relay-core/internal/router"

// EventWithHeight pairs a router event with the height it was observed at,
// the minimal extra context the relayer needs to fetch a membership proof
// for it later.
type EventWithHeight struct {
	Event  router.Event
	Height uint64
}

// MessageKind distinguishes the four message types a relay transaction
// assembles, always in this order: client updates, timeouts, receives,
// acknowledgements.
type MessageKind int

const (
	MessageKindUpdateClient MessageKind = iota
	MessageKindTimeout
	MessageKindRecv
	MessageKindAck
)

// Message is one chain-agnostic instruction the destination Module
// translates into a concrete transaction; the engine only ever orders and
// deduplicates these, it never inspects payload contents.
type Message struct {
	Kind        MessageKind
	ClientID    string
	Sequence    uint64
	Packet      router.Packet
	Ack         []byte
	ProofHeight uint64
	ClientUpdate any // opaque header/update payload a Module supplies
}

// TxBatch is the ordered set of messages RelayEvents assembles for one
// submission. Module implementations split it across multiple host
// transactions when size-bounded (see chunking.go).
type TxBatch struct {
	Messages []Message
}
