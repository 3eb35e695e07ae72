package router

import "github.com/cosmos/ibc-relay-core/internal/ibccommitment"

// TimeoutPacket verifies a non-membership proof that the counterparty never
// recorded a receipt for packet, and that the counterparty's timestamp at
// proofHeight has crossed packet.TimeoutTimestamp, then clears the source
// commitment. An already-cleared commitment is a noop; a stored commitment
// that does not match packet is rejected with ErrPacketCommitmentMismatch.
func (r *Router) TimeoutPacket(packet Packet, proofTimeout []byte, proofHeight uint64) (Event, error) {
	client, err := r.activeClient(packet.SourceClient)
	if err != nil {
		return nil, err
	}
	if len(packet.Payloads) != 1 {
		return nil, ErrMultiPayloadUnsupported
	}
	if packet.DestClient != client.CounterpartyClientID {
		return nil, ErrInvalidCounterpartyClient
	}

	receiptPath := ibccommitment.ReceiptPath(packet.DestClient, packet.Sequence)
	counterpartyTimestamp, err := r.Verifier.VerifyNonMembership(packet.SourceClient, proofHeight, receiptPath, proofTimeout)
	if err != nil {
		return nil, err
	}
	if counterpartyTimestamp < packet.TimeoutTimestamp {
		return nil, ErrTimeoutNotReached
	}

	stored, exists := r.Store.GetCommitment(CommitmentKindSend, packet.SourceClient, packet.Sequence)
	if !exists {
		return NoopEvent{}, nil
	}
	expected := ibccommitment.PacketCommitmentHash(packet)
	if stored.Value != expected {
		return nil, ErrPacketCommitmentMismatch
	}

	if _, ok := r.Store.DeleteCommitment(CommitmentKindSend, packet.SourceClient, packet.Sequence); !ok {
		return NoopEvent{}, nil
	}

	if app, err := r.app(packet.Payloads[0].SourcePort); err == nil {
		if err := app.OnTimeoutPacket(packet, packet.Payloads[0]); err != nil {
			return nil, err
		}
	}

	return TimeoutPacketEvent{
		ClientID: packet.SourceClient,
		Sequence: packet.Sequence,
		Packet:   packet,
	}, nil
}
