package ethlightclient

import (
	"errors"
	"testing"

	"github.com/cosmos/ibc-relay-core/pkg/ssz"
)

// validLightClientHeader builds a LightClientHeader whose ExecutionBranch
// actually verifies against its own BodyRoot, by running the same
// leaf-to-root combination isValidLightClientHeader checks, forwards.
func validLightClientHeader(slot uint64) LightClientHeader {
	exec := ExecutionPayloadHeader{BlockNumber: 1, Timestamp: 2, StateRoot: ssz.Root{3}}
	executionRoot := ssz.Merkleize([]ssz.Root{
		ssz.Uint64ToRoot(exec.BlockNumber),
		ssz.Uint64ToRoot(exec.Timestamp),
		exec.StateRoot,
	}, 4)

	depth := ssz.GeneralizedIndexDepth(ExecutionPayloadGindex)
	branch := make([][32]byte, depth)
	for i := range branch {
		branch[i] = ssz.Root{byte(i + 10)}
	}

	computed := executionRoot
	index := ExecutionPayloadGindex
	for i := 0; i < depth; i++ {
		if index&1 == 1 {
			computed = ssz.HashNode(branch[i], computed)
		} else {
			computed = ssz.HashNode(computed, branch[i])
		}
		index >>= 1
	}

	return LightClientHeader{
		Beacon:          BeaconBlockHeader{Slot: slot, BodyRoot: computed},
		Execution:       exec,
		ExecutionBranch: branch,
	}
}

type stubBls struct {
	err error
}

func (s stubBls) FastAggregateVerify(publicKeys [][48]byte, msg [32]byte, signature [96]byte) error {
	return s.err
}

func committeeOf(n int) *SyncCommittee {
	c := &SyncCommittee{Pubkeys: make([][48]byte, n)}
	for i := range c.Pubkeys {
		c.Pubkeys[i][0] = byte(i + 1)
	}
	return c
}

func fullBits(n int) []byte {
	bits := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bits[i/8] |= 1 << uint(i%8)
	}
	return bits
}

func TestVerifyHeaderRejectsFrozenClient(t *testing.T) {
	client := mainnetLikeClient()
	client.IsFrozen = true
	trusted := &ConsensusState{CurrentSyncCommittee: committeeOf(1)}

	err := VerifyHeader(trusted, client, client.GenesisTime, &Header{}, stubBls{})
	if !errors.Is(err, ErrClientFrozen) {
		t.Fatalf("expected ErrClientFrozen, got %v", err)
	}
}

func TestVerifyHeaderRejectsActiveSyncCommitteeMismatch(t *testing.T) {
	client := mainnetLikeClient()
	client.MinSyncCommitteeParticipants = 1
	trusted := &ConsensusState{
		Slot:                 0,
		CurrentSyncCommittee: committeeOf(2),
	}
	header := &Header{
		ActiveSyncCommittee: *committeeOf(3), // deliberately different
		ConsensusUpdate: LightClientUpdate{
			SignatureSlot: 1,
		},
	}

	err := VerifyHeader(trusted, client, client.GenesisTime+120, header, stubBls{})
	if !errors.Is(err, ErrActiveSyncCommitteeMismatch) {
		t.Fatalf("expected ErrActiveSyncCommitteeMismatch, got %v", err)
	}
}

func TestValidateLightClientUpdateRejectsInsufficientParticipants(t *testing.T) {
	client := mainnetLikeClient()
	client.MinSyncCommitteeParticipants = 10
	trusted := &ConsensusState{CurrentSyncCommittee: committeeOf(10)}

	update := &LightClientUpdate{
		SyncAggregate: SyncAggregate{SyncCommitteeBits: []byte{0x01}},
	}

	err := ValidateLightClientUpdate(client, trusted, update, 100, stubBls{})
	if !errors.Is(err, ErrInsufficientSyncCommitteeParticipants) {
		t.Fatalf("expected ErrInsufficientSyncCommitteeParticipants, got %v", err)
	}
}

func TestValidateLightClientUpdateRejectsFinalizedSlotAtGenesis(t *testing.T) {
	client := mainnetLikeClient()
	client.MinSyncCommitteeParticipants = 1
	trusted := &ConsensusState{CurrentSyncCommittee: committeeOf(4)}

	update := &LightClientUpdate{
		SyncAggregate:   SyncAggregate{SyncCommitteeBits: fullBits(4)},
		AttestedHeader:  validLightClientHeader(10),
		FinalizedHeader: LightClientHeader{Beacon: BeaconBlockHeader{Slot: 0}},
	}

	err := ValidateLightClientUpdate(client, trusted, update, 100, stubBls{})
	if !errors.Is(err, ErrFinalizedSlotIsGenesis) {
		t.Fatalf("expected ErrFinalizedSlotIsGenesis, got %v", err)
	}
}

func TestValidateLightClientUpdateRejectsFutureSignatureSlot(t *testing.T) {
	client := mainnetLikeClient()
	client.MinSyncCommitteeParticipants = 1
	trusted := &ConsensusState{CurrentSyncCommittee: committeeOf(4)}

	update := &LightClientUpdate{
		SyncAggregate:   SyncAggregate{SyncCommitteeBits: fullBits(4)},
		AttestedHeader:  validLightClientHeader(10),
		FinalizedHeader: LightClientHeader{Beacon: BeaconBlockHeader{Slot: 1}},
		SignatureSlot:   1000,
	}

	err := ValidateLightClientUpdate(client, trusted, update, 5, stubBls{})
	if !errors.Is(err, ErrUpdateSignatureSlotInFuture) {
		t.Fatalf("expected ErrUpdateSignatureSlotInFuture, got %v", err)
	}
}
