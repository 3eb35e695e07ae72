package relayer

import (
	"testing"

	"github.com/cosmos/ibc-relay-core/internal/router"
)

const (
	testSrcClient = "07-tendermint-0"
	testDstClient = "08-wasm-0"
)

func sendEvent(seq uint64, timeout int64) EventWithHeight {
	return EventWithHeight{
		Height: 10,
		Event: router.SendPacketEvent{
			ClientID: testSrcClient,
			Sequence: seq,
			Packet: router.Packet{
				Sequence:         seq,
				SourceClient:     testSrcClient,
				DestClient:       testDstClient,
				TimeoutTimestamp: uint64(timeout),
			},
			TimeoutTimestamp: timeout,
		},
	}
}

func ackEvent(seq uint64) EventWithHeight {
	return EventWithHeight{
		Height: 11,
		Event: router.WriteAcknowledgementEvent{
			ClientID: testDstClient,
			Sequence: seq,
			Packet: router.Packet{
				Sequence:     seq,
				SourceClient: testDstClient,
				DestClient:   testSrcClient,
			},
			Ack: []byte("ack"),
		},
	}
}

func TestClassifySendAndAckEventsBasic(t *testing.T) {
	events := []EventWithHeight{sendEvent(1, 2000), ackEvent(2)}
	recv, ack := ClassifySendAndAckEvents(events, testSrcClient, testDstClient, 1000, nil, nil)

	if len(recv) != 1 || recv[0].Sequence != 1 {
		t.Fatalf("expected one recv message for sequence 1, got %+v", recv)
	}
	if len(ack) != 1 || ack[0].Sequence != 2 {
		t.Fatalf("expected one ack message for sequence 2, got %+v", ack)
	}
}

func TestClassifySendAndAckEventsDropsExpiredSend(t *testing.T) {
	events := []EventWithHeight{sendEvent(1, 500)}
	recv, _ := ClassifySendAndAckEvents(events, testSrcClient, testDstClient, 1000, nil, nil)
	if len(recv) != 0 {
		t.Fatalf("expected no recv messages for an already-expired send, got %d", len(recv))
	}
}

func TestClassifySendAndAckEventsIgnoresOtherClientPairs(t *testing.T) {
	events := []EventWithHeight{sendEvent(1, 2000)}
	recv, _ := ClassifySendAndAckEvents(events, "07-tendermint-1", testDstClient, 1000, nil, nil)
	if len(recv) != 0 {
		t.Fatalf("expected no recv messages for a non-matching client pair, got %d", len(recv))
	}
}

func TestClassifySendAndAckEventsSeqFilter(t *testing.T) {
	events := []EventWithHeight{sendEvent(1, 2000), sendEvent(2, 2000), ackEvent(3), ackEvent(4)}
	recv, ack := ClassifySendAndAckEvents(events, testSrcClient, testDstClient, 1000, []uint64{2}, []uint64{4})

	if len(recv) != 1 || recv[0].Sequence != 2 {
		t.Fatalf("expected only sequence 2 to pass the src filter, got %+v", recv)
	}
	if len(ack) != 1 || ack[0].Sequence != 4 {
		t.Fatalf("expected only sequence 4 to pass the dst filter, got %+v", ack)
	}
}

func TestClassifyTimeoutEventsElapsedOnly(t *testing.T) {
	events := []EventWithHeight{
		{Height: 20, Event: router.SendPacketEvent{
			Packet: router.Packet{Sequence: 1, SourceClient: testDstClient, DestClient: testSrcClient, TimeoutTimestamp: 500},
		}},
		{Height: 21, Event: router.SendPacketEvent{
			Packet: router.Packet{Sequence: 2, SourceClient: testDstClient, DestClient: testSrcClient, TimeoutTimestamp: 2000},
		}},
	}
	timeouts := ClassifyTimeoutEvents(events, testSrcClient, testDstClient, 1000, nil)
	if len(timeouts) != 1 || timeouts[0].Sequence != 1 {
		t.Fatalf("expected only the elapsed timeout (seq 1), got %+v", timeouts)
	}
}

func TestClassifyTimeoutEventsSeqFilter(t *testing.T) {
	events := []EventWithHeight{
		{Height: 20, Event: router.SendPacketEvent{
			Packet: router.Packet{Sequence: 1, SourceClient: testDstClient, DestClient: testSrcClient, TimeoutTimestamp: 500},
		}},
		{Height: 20, Event: router.SendPacketEvent{
			Packet: router.Packet{Sequence: 2, SourceClient: testDstClient, DestClient: testSrcClient, TimeoutTimestamp: 500},
		}},
	}
	timeouts := ClassifyTimeoutEvents(events, testSrcClient, testDstClient, 1000, []uint64{2})
	if len(timeouts) != 1 || timeouts[0].Sequence != 2 {
		t.Fatalf("expected only sequence 2 to pass the filter, got %+v", timeouts)
	}
}

func TestAssembleBatchOrdering(t *testing.T) {
	clientUpdates := []Message{{Kind: MessageKindUpdateClient}}
	timeouts := []Message{{Kind: MessageKindTimeout}}
	recv := []Message{{Kind: MessageKindRecv}}
	ack := []Message{{Kind: MessageKindAck}}

	batch := AssembleBatch(clientUpdates, timeouts, recv, ack)
	if len(batch.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(batch.Messages))
	}
	wantOrder := []MessageKind{MessageKindUpdateClient, MessageKindTimeout, MessageKindRecv, MessageKindAck}
	for i, want := range wantOrder {
		if batch.Messages[i].Kind != want {
			t.Fatalf("message %d: expected kind %v, got %v", i, want, batch.Messages[i].Kind)
		}
	}
}
