package router

import (
	"time"

	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
)

// SendPacket assigns the next sequence for sourceClient, computes and
// stores the packet commitment, and returns the assigned sequence plus the
// event the relayer picks up. callerPort must be the port registered for
// payload.SourcePort; this stands in for the on-chain PDA-signer check the
// host VM performs.
func (r *Router) SendPacket(sourceClient, callerPort string, payload Payload, timeoutTimestamp uint64) (uint64, SendPacketEvent, error) {
	client, err := r.activeClient(sourceClient)
	if err != nil {
		return 0, SendPacketEvent{}, err
	}

	port, ok := r.Store.GetPort(payload.SourcePort)
	if !ok {
		return 0, SendPacketEvent{}, ErrPortNotRegistered
	}
	if port.PortID != callerPort {
		return 0, SendPacketEvent{}, ErrUnauthorizedSender
	}

	now := r.Now()
	if int64(timeoutTimestamp) <= now {
		return 0, SendPacketEvent{}, ErrInvalidTimeoutTimestamp
	}
	if time.Duration(int64(timeoutTimestamp)-now)*time.Second > MaxTimeoutDuration {
		return 0, SendPacketEvent{}, ErrInvalidTimeoutDuration
	}

	sequence := r.Store.NextSequenceSend(sourceClient)
	if err := r.Store.SetNextSequenceSend(sourceClient, sequence+1); err != nil {
		return 0, SendPacketEvent{}, err
	}

	packet := Packet{
		Sequence:         sequence,
		SourceClient:     sourceClient,
		DestClient:       client.CounterpartyClientID,
		TimeoutTimestamp: timeoutTimestamp,
		Payloads:         []Payload{payload},
	}

	commitment := ibccommitment.PacketCommitmentHash(packet)
	if err := r.Store.PutCommitment(CommitmentKindSend, sourceClient, sequence, CommitmentRecord{
		Value:     commitment,
		CreatedAt: time.Unix(now, 0),
	}); err != nil {
		return 0, SendPacketEvent{}, err
	}

	return sequence, SendPacketEvent{
		ClientID:         sourceClient,
		Sequence:         sequence,
		Packet:           packet,
		TimeoutTimestamp: int64(timeoutTimestamp),
	}, nil
}
