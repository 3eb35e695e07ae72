package router

import (
	"time"

	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
)

// RecvPacket verifies that packet was committed on the counterparty at
// proofHeight, then delivers it at most once: a receipt already on file is
// a noop, never a second app invocation.
func (r *Router) RecvPacket(packet Packet, proofCommitment []byte, proofHeight uint64) (Event, error) {
	client, err := r.activeClient(packet.DestClient)
	if err != nil {
		return nil, err
	}
	if packet.SourceClient != client.CounterpartyClientID {
		return nil, ErrInvalidCounterpartyClient
	}
	if len(packet.Payloads) != 1 {
		return nil, ErrMultiPayloadUnsupported
	}

	now := r.Now()
	if now >= int64(packet.TimeoutTimestamp) {
		return nil, ErrTimeoutElapsed
	}

	if _, exists := r.Store.GetCommitment(CommitmentKindReceipt, packet.DestClient, packet.Sequence); exists {
		return NoopEvent{}, nil
	}

	sendPath := ibccommitment.SendCommitmentPath(packet.SourceClient, packet.Sequence)
	expected := ibccommitment.PacketCommitmentHash(packet)
	if _, err := r.Verifier.VerifyMembership(packet.DestClient, proofHeight, sendPath, expected[:], proofCommitment); err != nil {
		return nil, err
	}

	payload := packet.Payloads[0]
	app, err := r.app(payload.DestPort)
	if err != nil {
		return nil, err
	}

	ack, err := app.OnRecvPacket(packet, payload)
	if err != nil {
		ack = ibccommitment.UniversalErrorAck[:]
	}

	receipt := ibccommitment.ReceiptCommitmentHash(ibccommitment.EncodePacketBorsh(packet))
	if err := r.Store.PutCommitment(CommitmentKindReceipt, packet.DestClient, packet.Sequence, CommitmentRecord{
		Value:     receipt,
		CreatedAt: time.Unix(now, 0),
	}); err != nil {
		return nil, err
	}

	if len(ack) > 0 {
		ackHash, _ := ibccommitment.AcksCommitmentHash([][]byte{ack})
		if err := r.Store.PutCommitment(CommitmentKindAck, packet.DestClient, packet.Sequence, CommitmentRecord{
			Value:     ackHash,
			CreatedAt: time.Unix(now, 0),
		}); err != nil {
			return nil, err
		}
	}

	return WriteAcknowledgementEvent{
		ClientID: packet.DestClient,
		Sequence: packet.Sequence,
		Packet:   packet,
		Ack:      ack,
	}, nil
}
