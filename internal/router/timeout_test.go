package router

import "testing"

func TestTimeoutPacketClearsCommitmentOnceCounterpartyCrossesDeadline(t *testing.T) {
	r, store := newTestRouter(3000)
	store.PutClient(ClientRecord{ClientID: "client-a", CounterpartyClientID: "client-b"})
	app := &fakeApp{}
	r.RegisterIBCApp("port-a", "app-a", app)
	r.Verifier = &fakeVerifier{counterpartyTimestamp: 2500}

	packet := testPacket() // TimeoutTimestamp: 2000
	commitment := packetCommitmentFor(packet)
	store.PutCommitment(CommitmentKindSend, "client-a", packet.Sequence, CommitmentRecord{Value: commitment})

	ev, err := r.TimeoutPacket(packet, []byte("proof"), 42)
	if err != nil {
		t.Fatalf("timeout: %v", err)
	}
	if _, ok := ev.(TimeoutPacketEvent); !ok {
		t.Fatalf("expected TimeoutPacketEvent, got %T", ev)
	}
	if app.timeoutCalls != 1 {
		t.Fatalf("expected one app invocation, got %d", app.timeoutCalls)
	}
	if _, exists := store.GetCommitment(CommitmentKindSend, "client-a", packet.Sequence); exists {
		t.Fatalf("expected the send commitment to be cleared")
	}
}

func TestTimeoutPacketRejectsWhenCounterpartyHasNotCrossedDeadline(t *testing.T) {
	r, store := newTestRouter(1500)
	store.PutClient(ClientRecord{ClientID: "client-a", CounterpartyClientID: "client-b"})
	r.RegisterIBCApp("port-a", "app-a", &fakeApp{})
	r.Verifier = &fakeVerifier{counterpartyTimestamp: 1500} // packet times out at 2000

	packet := testPacket()
	commitment := packetCommitmentFor(packet)
	store.PutCommitment(CommitmentKindSend, "client-a", packet.Sequence, CommitmentRecord{Value: commitment})

	if _, err := r.TimeoutPacket(packet, []byte("proof"), 42); err != ErrTimeoutNotReached {
		t.Fatalf("expected ErrTimeoutNotReached, got %v", err)
	}
}

func TestTimeoutPacketIsNoopWhenCommitmentAlreadyCleared(t *testing.T) {
	r, store := newTestRouter(3000)
	store.PutClient(ClientRecord{ClientID: "client-a", CounterpartyClientID: "client-b"})
	r.RegisterIBCApp("port-a", "app-a", &fakeApp{})
	r.Verifier = &fakeVerifier{counterpartyTimestamp: 2500}

	packet := testPacket()

	ev, err := r.TimeoutPacket(packet, []byte("proof"), 42)
	if err != nil {
		t.Fatalf("timeout: %v", err)
	}
	if _, ok := ev.(NoopEvent); !ok {
		t.Fatalf("expected NoopEvent, got %T", ev)
	}
}

func TestTimeoutPacketRejectsWrongCounterpartyClient(t *testing.T) {
	r, store := newTestRouter(3000)
	store.PutClient(ClientRecord{ClientID: "client-a", CounterpartyClientID: "client-other"})
	r.RegisterIBCApp("port-a", "app-a", &fakeApp{})

	packet := testPacket() // DestClient is "client-b"
	if _, err := r.TimeoutPacket(packet, []byte("proof"), 42); err != ErrInvalidCounterpartyClient {
		t.Fatalf("expected ErrInvalidCounterpartyClient, got %v", err)
	}
}
