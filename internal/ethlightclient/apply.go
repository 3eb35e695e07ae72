package ethlightclient

// ApplyUpdate computes the post-conditions of a LightClientUpdate that has
// already passed VerifyHeader: sync committee rotation, learning the next
// sync committee, and recording a new ConsensusState. It never mutates its
// inputs; callers persist the returned state.
func ApplyUpdate(client *ClientState, trusted *ConsensusState, update *LightClientUpdate) (*ConsensusState, *ClientState) {
	storePeriod := client.SyncCommitteePeriodAtSlot(trusted.Slot)
	signaturePeriod := client.SyncCommitteePeriodAtSlot(update.SignatureSlot)

	next := &ConsensusState{
		Slot:                 update.FinalizedHeader.Beacon.Slot,
		StateRoot:            update.FinalizedHeader.Beacon.StateRoot,
		StorageRoot:          update.FinalizedHeader.Execution.StateRoot,
		Timestamp:            update.FinalizedHeader.Execution.Timestamp,
		CurrentSyncCommittee: trusted.CurrentSyncCommittee,
		NextSyncCommittee:    trusted.NextSyncCommittee,
	}

	if signaturePeriod == storePeriod+1 {
		next.CurrentSyncCommittee = trusted.NextSyncCommittee
		next.NextSyncCommittee = nil
	}
	if update.NextSyncCommittee != nil {
		next.NextSyncCommittee = update.NextSyncCommittee
	}

	updatedClient := *client
	if next.Slot > updatedClient.LatestSlot {
		updatedClient.LatestSlot = next.Slot
	}

	return next, &updatedClient
}
