package ethlightclient

import (
	"fmt"

	"github.com/cosmos/ibc-relay-core/pkg/ssz"
)

// ExecutionPayloadGindex is the generalized index of the execution payload
// header within the beacon block body, for the deneb fork (the only fork
// this client models).
const ExecutionPayloadGindex uint64 = 25

// BlsVerifier abstracts the BLS12-381 fast-aggregate-verify primitive so
// ethlightclient stays a pure function of its inputs and is testable without
// linking the curve library (spec §1 "consumes ... BLS12-381 ... as black
// boxes").
type BlsVerifier interface {
	FastAggregateVerify(publicKeys [][48]byte, msg [32]byte, signature [96]byte) error
}

// isValidLightClientHeader checks that the execution payload header's
// fields are internally consistent and that ExecutionBranch proves it is
// included in the beacon block body at ExecutionPayloadGindex.
func isValidLightClientHeader(h LightClientHeader) error {
	leaves := []ssz.Root{
		ssz.Uint64ToRoot(h.Execution.BlockNumber),
		ssz.Uint64ToRoot(h.Execution.Timestamp),
		h.Execution.StateRoot,
	}
	executionRoot := ssz.Merkleize(leaves, 4)
	branch := ssz.NormalizeMerkleBranch(h.ExecutionBranch, ExecutionPayloadGindex)
	if !ssz.VerifyMerkleBranch(executionRoot, branch, ExecutionPayloadGindex, h.Beacon.BodyRoot) {
		return fmt.Errorf("%w: execution payload branch does not verify against body root", ErrInvalidLightClientHeader)
	}
	return nil
}

// VerifyHeader is the top-level entry point matching the original Rust
// `verify_header`: it builds a TrustedConsensusState-equivalent check (the
// header's claimed ActiveSyncCommittee must match what's stored), runs the
// full acceptance predicate, and re-checks the two invariants the original
// asserts after validate_light_client_update returns: 2/3 supermajority and
// strictly-advancing finalized slot.
func VerifyHeader(trusted *ConsensusState, client *ClientState, currentTimestamp uint64, header *Header, bls BlsVerifier) error {
	if client.IsFrozen {
		return ErrClientFrozen
	}
	stored := activeCommittee(trusted, client, header.ConsensusUpdate.SignatureSlot)
	if stored != nil && !stored.Equal(&header.ActiveSyncCommittee) {
		return ErrActiveSyncCommitteeMismatch
	}

	currentSlot, ok := client.SlotAtTime(currentTimestamp)
	if !ok {
		return ErrTimestampBeforeGenesis
	}

	if err := ValidateLightClientUpdate(client, trusted, &header.ConsensusUpdate, currentSlot, bls); err != nil {
		return err
	}

	committeeSize := len(header.ActiveSyncCommittee.Pubkeys)
	if !header.ConsensusUpdate.SyncAggregate.ValidateSignatureSupermajority(committeeSize) {
		return ErrNotEnoughSignatures
	}

	if header.ConsensusUpdate.FinalizedHeader.Beacon.Slot <= trusted.Slot {
		return fmt.Errorf("%w: update_finalized_slot=%d consensus_state_slot=%d",
			ErrIrrelevantUpdate, header.ConsensusUpdate.FinalizedHeader.Beacon.Slot, trusted.Slot)
	}

	updateFinalizedPeriod := client.SyncCommitteePeriodAtSlot(header.ConsensusUpdate.FinalizedHeader.Beacon.Slot)
	storePeriod := client.SyncCommitteePeriodAtSlot(trusted.Slot)
	if updateFinalizedPeriod > storePeriod && header.ConsensusUpdate.NextSyncCommitteeBranch == nil {
		return ErrExpectedNextSyncCommitteeUpdate
	}

	return nil
}

func activeCommittee(trusted *ConsensusState, client *ClientState, signatureSlot uint64) *SyncCommittee {
	storePeriod := client.SyncCommitteePeriodAtSlot(trusted.Slot)
	signaturePeriod := client.SyncCommitteePeriodAtSlot(signatureSlot)
	if signaturePeriod == storePeriod {
		return trusted.CurrentSyncCommittee
	}
	return trusted.NextSyncCommittee
}

// ValidateLightClientUpdate implements the consensus-spec
// validate_light_client_update / spec §4.1 acceptance predicate. It does
// not mutate trusted; callers apply ApplyUpdate separately on success.
func ValidateLightClientUpdate(client *ClientState, trusted *ConsensusState, update *LightClientUpdate, currentSlot uint64, bls BlsVerifier) error {
	committeeSize := activeCommitteeSize(trusted, client, update.SignatureSlot)
	if !update.SyncAggregate.HasSufficientParticipants(client.MinSyncCommitteeParticipants) {
		return fmt.Errorf("%w: got %d, need %d", ErrInsufficientSyncCommitteeParticipants,
			update.SyncAggregate.NumParticipants(), client.MinSyncCommitteeParticipants)
	}

	if err := isValidLightClientHeader(update.AttestedHeader); err != nil {
		return err
	}

	updateAttestedSlot := update.AttestedHeader.Beacon.Slot
	updateFinalizedSlot := update.FinalizedHeader.Beacon.Slot

	if updateFinalizedSlot == client.GenesisSlot {
		return ErrFinalizedSlotIsGenesis
	}
	if currentSlot < update.SignatureSlot {
		return fmt.Errorf("%w: current_slot=%d signature_slot=%d", ErrUpdateSignatureSlotInFuture, currentSlot, update.SignatureSlot)
	}
	if !(update.SignatureSlot > updateAttestedSlot && updateAttestedSlot >= updateFinalizedSlot) {
		return fmt.Errorf("%w: signature_slot=%d attested_slot=%d finalized_slot=%d",
			ErrInvalidSlotOrdering, update.SignatureSlot, updateAttestedSlot, updateFinalizedSlot)
	}

	storePeriod := client.SyncCommitteePeriodAtSlot(trusted.Slot)
	signaturePeriod := client.SyncCommitteePeriodAtSlot(update.SignatureSlot)
	isNextKnown := trusted.NextSyncCommittee != nil
	if isNextKnown {
		if !(signaturePeriod == storePeriod || signaturePeriod == storePeriod+1) {
			return fmt.Errorf("%w: signature_period=%d stored_period=%d", ErrInvalidSignaturePeriod, signaturePeriod, storePeriod)
		}
	} else if signaturePeriod != storePeriod {
		return fmt.Errorf("%w: signature_period=%d stored_period=%d", ErrInvalidSignaturePeriod, signaturePeriod, storePeriod)
	}

	updateAttestedPeriod := client.SyncCommitteePeriodAtSlot(updateAttestedSlot)
	isNextSyncCommitteeUpdate := update.NextSyncCommitteeBranch != nil
	updateHasNextSyncCommittee := !isNextKnown && isNextSyncCommitteeUpdate && updateAttestedPeriod == storePeriod

	if !(updateAttestedSlot > trusted.Slot || updateHasNextSyncCommittee) {
		return fmt.Errorf("%w: update_attested_slot=%d trusted_finalized_slot=%d", ErrIrrelevantUpdate, updateAttestedSlot, trusted.Slot)
	}

	if err := isValidLightClientHeader(update.FinalizedHeader); err != nil {
		return err
	}
	finalizedRoot := hashTreeRootBeaconBlockHeader(update.FinalizedHeader.Beacon)
	finalizedGindex := finalizedRootGindexAtSlot(client, update.AttestedHeader.Beacon.Slot)
	finalityBranch := ssz.NormalizeMerkleBranch(update.FinalityBranch, finalizedGindex)
	if !ssz.VerifyMerkleBranch(finalizedRoot, finalityBranch, finalizedGindex, update.AttestedHeader.Beacon.StateRoot) {
		return ErrFinalizedRootBranchFailed
	}

	if isNextSyncCommitteeUpdate {
		if updateAttestedPeriod == storePeriod && isNextKnown {
			if !update.NextSyncCommittee.Equal(trusted.NextSyncCommittee) {
				return ErrNextSyncCommitteeMismatch
			}
		}
		nscGindex := nextSyncCommitteeGindexAtSlot(client, update.AttestedHeader.Beacon.Slot)
		nscRoot := hashTreeRootSyncCommittee(*update.NextSyncCommittee)
		nscBranch := ssz.NormalizeMerkleBranch(update.NextSyncCommitteeBranch, nscGindex)
		if !ssz.VerifyMerkleBranch(nscRoot, nscBranch, nscGindex, update.AttestedHeader.Beacon.StateRoot) {
			return ErrNextSyncCommitteeBranchFailed
		}
	} else if update.NextSyncCommittee != nil {
		return ErrUnexpectedNextSyncCommittee
	}

	var syncCommittee *SyncCommittee
	if signaturePeriod == storePeriod {
		syncCommittee = trusted.CurrentSyncCommittee
		if syncCommittee == nil {
			return ErrExpectedCurrentSyncCommittee
		}
	} else {
		syncCommittee = trusted.NextSyncCommittee
		if syncCommittee == nil {
			return ErrExpectedNextSyncCommittee
		}
	}

	if int(update.SyncAggregate.NumParticipants()) > len(syncCommittee.Pubkeys) {
		return fmt.Errorf("%w: bitfield implies more participants than committee size %d", ErrSyncCommitteeLengthMismatch, len(syncCommittee.Pubkeys))
	}
	if len(update.SyncAggregate.SyncCommitteeBits)*8 < len(syncCommittee.Pubkeys) {
		return fmt.Errorf("%w: bitfield too short for committee size %d", ErrSyncCommitteeLengthMismatch, len(syncCommittee.Pubkeys))
	}

	participantBits := update.SyncAggregate.ParticipantBits(len(syncCommittee.Pubkeys))
	participants := make([][48]byte, 0, len(syncCommittee.Pubkeys))
	for i, included := range participantBits {
		if included {
			participants = append(participants, syncCommittee.Pubkeys[i])
		}
	}

	forkVersionSlot := update.SignatureSlot
	if forkVersionSlot > 0 {
		forkVersionSlot--
	}
	forkVersion, err := client.ComputeForkVersion(client.EpochAtSlot(forkVersionSlot))
	if err != nil {
		return err
	}
	domain := computeDomain(SyncCommitteeDomain, forkVersion, client.GenesisValidatorsRoot)
	signingRoot := computeSigningRoot(hashTreeRootBeaconBlockHeader(update.AttestedHeader.Beacon), domain)

	if err := bls.FastAggregateVerify(participants, signingRoot, update.SyncAggregate.SyncCommitteeSignature); err != nil {
		return fmt.Errorf("%w: %s", ErrFastAggregateVerifyFailed, err)
	}

	_ = committeeSize // only used for ValidateSignatureSupermajority in VerifyHeader
	return nil
}

func activeCommitteeSize(trusted *ConsensusState, client *ClientState, signatureSlot uint64) int {
	c := activeCommittee(trusted, client, signatureSlot)
	if c == nil {
		return 0
	}
	return len(c.Pubkeys)
}
