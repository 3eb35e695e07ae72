package router

import "github.com/cosmos/ibc-relay-core/internal/ibccommitment"

func packetCommitmentFor(p Packet) [32]byte {
	return ibccommitment.PacketCommitmentHash(p)
}

type fakeVerifier struct {
	membershipErr         error
	nonMembershipErr      error
	counterpartyTimestamp uint64
}

func (f *fakeVerifier) VerifyMembership(clientID string, proofHeight uint64, path []byte, value []byte, proof []byte) (uint64, error) {
	if f.membershipErr != nil {
		return 0, f.membershipErr
	}
	return f.counterpartyTimestamp, nil
}

func (f *fakeVerifier) VerifyNonMembership(clientID string, proofHeight uint64, path []byte, proof []byte) (uint64, error) {
	if f.nonMembershipErr != nil {
		return 0, f.nonMembershipErr
	}
	return f.counterpartyTimestamp, nil
}

type fakeApp struct {
	recvAck     []byte
	recvErr     error
	ackErr      error
	timeoutErr  error
	recvCalls   int
	ackCalls    int
	timeoutCalls int
}

func (a *fakeApp) OnRecvPacket(packet Packet, payload Payload) ([]byte, error) {
	a.recvCalls++
	return a.recvAck, a.recvErr
}

func (a *fakeApp) OnAcknowledgementPacket(packet Packet, payload Payload, ack []byte) error {
	a.ackCalls++
	return a.ackErr
}

func (a *fakeApp) OnTimeoutPacket(packet Packet, payload Payload) error {
	a.timeoutCalls++
	return a.timeoutErr
}

func newTestRouter(now int64) (*Router, *MemStore) {
	store := NewMemStore()
	r := NewRouter(store, &fakeVerifier{}, func() int64 { return now })
	return r, store
}
