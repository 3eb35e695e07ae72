package router

import "github.com/cosmos/ibc-relay-core/internal/ibccommitment"

// AckPacket verifies the counterparty committed ackBytes for packet at
// proofHeight, then clears the source commitment. A send-commitment
// already cleared (or one that no longer matches packet) is a noop: the
// commitment is removed exactly once, by whichever of AckPacket or
// TimeoutPacket wins the race.
func (r *Router) AckPacket(packet Packet, ackBytes []byte, proofAcked []byte, proofHeight uint64) (Event, error) {
	if _, err := r.activeClient(packet.SourceClient); err != nil {
		return nil, err
	}

	stored, exists := r.Store.GetCommitment(CommitmentKindSend, packet.SourceClient, packet.Sequence)
	expected := ibccommitment.PacketCommitmentHash(packet)
	if !exists || stored.Value != expected {
		return NoopEvent{}, nil
	}

	ackPath := ibccommitment.AckCommitmentPath(packet.DestClient, packet.Sequence)
	ackHash, ok := ibccommitment.AcksCommitmentHash([][]byte{ackBytes})
	if !ok {
		return nil, ErrPacketCommitmentMismatch
	}
	if _, err := r.Verifier.VerifyMembership(packet.SourceClient, proofHeight, ackPath, ackHash[:], proofAcked); err != nil {
		return nil, err
	}

	if _, ok := r.Store.DeleteCommitment(CommitmentKindSend, packet.SourceClient, packet.Sequence); !ok {
		return NoopEvent{}, nil
	}

	if len(packet.Payloads) == 1 {
		if app, err := r.app(packet.Payloads[0].SourcePort); err == nil {
			if err := app.OnAcknowledgementPacket(packet, packet.Payloads[0], ackBytes); err != nil {
				return nil, err
			}
		}
	}

	return AckPacketEvent{
		ClientID: packet.SourceClient,
		Sequence: packet.Sequence,
		Packet:   packet,
	}, nil
}
