package ethlightclient

import "testing"

func TestApplyUpdateRotatesCommitteeOnPeriodAdvance(t *testing.T) {
	client := mainnetLikeClient()
	current := committeeOf(2)
	next := committeeOf(3)
	trusted := &ConsensusState{
		Slot:                 0, // period 0
		CurrentSyncCommittee: current,
		NextSyncCommittee:    next,
	}

	update := &LightClientUpdate{
		SignatureSlot: 256 * 32, // period 1
		FinalizedHeader: LightClientHeader{
			Beacon:    BeaconBlockHeader{Slot: 256 * 32, StateRoot: [32]byte{1}},
			Execution: ExecutionPayloadHeader{StateRoot: [32]byte{2}, Timestamp: 99},
		},
	}

	newConsensus, newClient := ApplyUpdate(client, trusted, update)

	if !newConsensus.CurrentSyncCommittee.Equal(next) {
		t.Fatalf("expected current sync committee to rotate to the previous next")
	}
	if newConsensus.NextSyncCommittee != nil {
		t.Fatalf("expected next sync committee to be cleared after rotation without a fresh one")
	}
	if newClient.LatestSlot != update.FinalizedHeader.Beacon.Slot {
		t.Fatalf("expected latest slot to advance to %d, got %d", update.FinalizedHeader.Beacon.Slot, newClient.LatestSlot)
	}
}

func TestApplyUpdateLearnsNextSyncCommittee(t *testing.T) {
	client := mainnetLikeClient()
	trusted := &ConsensusState{
		Slot:                 10,
		CurrentSyncCommittee: committeeOf(2),
	}
	learned := committeeOf(5)

	update := &LightClientUpdate{
		SignatureSlot:     11,
		NextSyncCommittee: learned,
		FinalizedHeader: LightClientHeader{
			Beacon: BeaconBlockHeader{Slot: 11},
		},
	}

	newConsensus, _ := ApplyUpdate(client, trusted, update)
	if !newConsensus.NextSyncCommittee.Equal(learned) {
		t.Fatalf("expected next sync committee to be learned")
	}
	if !newConsensus.CurrentSyncCommittee.Equal(trusted.CurrentSyncCommittee) {
		t.Fatalf("expected current sync committee unchanged within the same period")
	}
}
