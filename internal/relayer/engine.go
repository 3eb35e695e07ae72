package relayer

import "github.com/cosmos/ibc-relay-core/internal/router"

// seqAllowed reports whether seq passes an optional allow-list filter: a
// nil/empty filter allows everything, matching spec §4.4 step 1's
// "(src_packet_seqs, dst_packet_seqs) filtering is optional" wording.
func seqAllowed(allowed []uint64, seq uint64) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, s := range allowed {
		if s == seq {
			return true
		}
	}
	return false
}

// ClassifySendAndAckEvents splits srcEvents (collected from the source
// chain) into RecvPacket and AckPacket messages, the way the original
// relayer's src_events_to_recv_and_ack_msgs does: a SendPacket is only
// relayable while its timeout is still in the future, and only between the
// exact client pair this destination cares about; a WriteAcknowledgement
// runs the same client-pair check in the opposite direction. srcPacketSeqs
// restricts which source-originated sequences become Recv messages and
// dstPacketSeqs restricts which destination-originated sequences become Ack
// messages (spec §4.4 step 1); either may be nil to relay every sequence.
func ClassifySendAndAckEvents(srcEvents []EventWithHeight, srcClientID, dstClientID string, now int64, srcPacketSeqs, dstPacketSeqs []uint64) (recv []Message, ack []Message) {
	for _, e := range srcEvents {
		switch ev := e.Event.(type) {
		case router.SendPacketEvent:
			if ev.Packet.SourceClient != srcClientID || ev.Packet.DestClient != dstClientID {
				continue
			}
			if now >= ev.TimeoutTimestamp {
				continue
			}
			if !seqAllowed(srcPacketSeqs, ev.Sequence) {
				continue
			}
			recv = append(recv, Message{
				Kind:        MessageKindRecv,
				ClientID:    dstClientID,
				Sequence:    ev.Sequence,
				Packet:      ev.Packet,
				ProofHeight: e.Height,
			})
		case router.WriteAcknowledgementEvent:
			if ev.Packet.SourceClient != dstClientID || ev.Packet.DestClient != srcClientID {
				continue
			}
			if !seqAllowed(dstPacketSeqs, ev.Sequence) {
				continue
			}
			ack = append(ack, Message{
				Kind:        MessageKindAck,
				ClientID:    dstClientID,
				Sequence:    ev.Sequence,
				Packet:      ev.Packet,
				Ack:         ev.Ack,
				ProofHeight: e.Height,
			})
		}
	}
	return recv, ack
}

// ClassifyTimeoutEvents turns dstEvents (collected from the destination
// chain, i.e. the chain that never received the packet) into TimeoutPacket
// messages submitted back on the source. Mirrors
// target_events_to_timeout_msgs: only packets whose timeout has actually
// elapsed, and only for the client pair in the opposite direction of recv.
// packetSeqs optionally restricts which source-originated sequences are
// considered, the same filter srcPacketSeqs applies to recv (spec §4.4
// step 1); nil relays every elapsed timeout.
func ClassifyTimeoutEvents(dstEvents []EventWithHeight, srcClientID, dstClientID string, now int64, packetSeqs []uint64) []Message {
	var timeouts []Message
	for _, e := range dstEvents {
		ev, ok := e.Event.(router.SendPacketEvent)
		if !ok {
			continue
		}
		if ev.Packet.SourceClient != dstClientID || ev.Packet.DestClient != srcClientID {
			continue
		}
		if uint64(now) < ev.Packet.TimeoutTimestamp {
			continue
		}
		if !seqAllowed(packetSeqs, ev.Sequence) {
			continue
		}
		timeouts = append(timeouts, Message{
			Kind:        MessageKindTimeout,
			ClientID:    srcClientID,
			Sequence:    ev.Sequence,
			Packet:      ev.Packet,
			ProofHeight: e.Height,
		})
	}
	return timeouts
}

// AssembleBatch orders messages the way every destination submits them:
// client updates, then timeouts, then receives, then acknowledgements.
// Passing a nil clientUpdate is valid when the destination's trusted state
// already covers every proof height in the batch.
func AssembleBatch(clientUpdates []Message, timeouts, recv, ack []Message) TxBatch {
	batch := TxBatch{}
	batch.Messages = append(batch.Messages, clientUpdates...)
	batch.Messages = append(batch.Messages, timeouts...)
	batch.Messages = append(batch.Messages, recv...)
	batch.Messages = append(batch.Messages, ack...)
	return batch
}
