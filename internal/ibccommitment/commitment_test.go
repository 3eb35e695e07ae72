package ibccommitment

import (
	"crypto/sha256"
	"testing"
)

func examplePacket() Packet {
	return Packet{
		Sequence:         1,
		SourceClient:     "07-tendermint-0",
		DestClient:       "08-wasm-0",
		TimeoutTimestamp: 1_700_000_000,
		Payloads: []Payload{{
			SourcePort: "transfer",
			DestPort:   "transfer",
			Version:    "ics20-1",
			Encoding:   "application/json",
			Value:      []byte(`{"amount":"100","denom":"uatom"}`),
		}},
	}
}

func TestPacketCommitmentHashChangesWithAnyFieldChange(t *testing.T) {
	base := examplePacket()
	baseHash := PacketCommitmentHash(base)

	// Sequence and source_client bind the commitment's storage path, not its
	// value (§6): the hash only covers dest_client, timeout, and payloads.
	destChanged := base
	destChanged.DestClient = "08-wasm-1"
	if PacketCommitmentHash(destChanged) == baseHash {
		t.Fatalf("expected commitment to change when dest_client changes")
	}

	timeoutChanged := base
	timeoutChanged.TimeoutTimestamp = base.TimeoutTimestamp + 1
	if PacketCommitmentHash(timeoutChanged) == baseHash {
		t.Fatalf("expected commitment to change when timeout_timestamp changes")
	}

	valueChanged := base
	valueChanged.Payloads = []Payload{{
		SourcePort: base.Payloads[0].SourcePort,
		DestPort:   base.Payloads[0].DestPort,
		Version:    base.Payloads[0].Version,
		Encoding:   base.Payloads[0].Encoding,
		Value:      []byte(`{"amount":"101","denom":"uatom"}`),
	}}
	if PacketCommitmentHash(valueChanged) == baseHash {
		t.Fatalf("expected commitment to change when payload value changes")
	}
}

func TestPacketCommitmentHashOrderSensitiveAcrossPayloads(t *testing.T) {
	a := Payload{SourcePort: "transfer", DestPort: "transfer", Version: "ics20-1", Encoding: "application/json", Value: []byte("a")}
	b := Payload{SourcePort: "transfer", DestPort: "transfer", Version: "ics20-1", Encoding: "application/json", Value: []byte("b")}

	p1 := Packet{Sequence: 1, DestClient: "x", TimeoutTimestamp: 1, Payloads: []Payload{a, b}}
	p2 := Packet{Sequence: 1, DestClient: "x", TimeoutTimestamp: 1, Payloads: []Payload{b, a}}

	if PacketCommitmentHash(p1) == PacketCommitmentHash(p2) {
		t.Fatalf("expected reordering payloads to change the commitment")
	}
}

func TestAcksCommitmentHashRejectsEmpty(t *testing.T) {
	if _, ok := AcksCommitmentHash(nil); ok {
		t.Fatalf("expected an empty ack list to be rejected")
	}
}

func TestAcksCommitmentHashOrderSensitive(t *testing.T) {
	h1, ok1 := AcksCommitmentHash([][]byte{[]byte("success"), []byte("transfer_complete")})
	h2, ok2 := AcksCommitmentHash([][]byte{[]byte("transfer_complete"), []byte("success")})
	if !ok1 || !ok2 {
		t.Fatalf("expected both non-empty ack lists to be accepted")
	}
	if h1 == h2 {
		t.Fatalf("expected reordering acks to change the commitment")
	}
}

func TestUniversalErrorAckMatchesPrecomputedConstant(t *testing.T) {
	want := sha256.Sum256([]byte("UNIVERSAL_ERROR_ACKNOWLEDGEMENT"))
	if UniversalErrorAck != want {
		t.Fatalf("UniversalErrorAck does not match sha256(\"UNIVERSAL_ERROR_ACKNOWLEDGEMENT\")")
	}
}

func TestSendCommitmentPathLayout(t *testing.T) {
	path := SendCommitmentPath("07-tendermint-0", 1)
	if len(path) != len("07-tendermint-0")+1+8 {
		t.Fatalf("unexpected path length %d", len(path))
	}
	if path[len("07-tendermint-0")] != PathTagSend {
		t.Fatalf("expected send path tag at the fixed offset")
	}
}
