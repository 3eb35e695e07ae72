// Package ethlightclient implements the Beacon-chain light client (C1): it
// validates LightClientUpdates against a trusted ClientState/ConsensusState
// pair and advances the trusted sync committee and finalized header.
package ethlightclient

// ForkVersion identifies a hard fork by its 4-byte version and activation
// epoch, ordered ascending by Epoch in ClientState.ForkParameters.
type ForkVersion struct {
	Version [4]byte
	Epoch   uint64
}

// ClientState is immutable after creation except for IsFrozen and LatestSlot.
type ClientState struct {
	ChainID                      uint64
	GenesisValidatorsRoot        [32]byte
	GenesisTime                  uint64
	GenesisSlot                  uint64
	SecondsPerSlot               uint64
	SlotsPerEpoch                uint64
	EpochsPerSyncCommitteePeriod uint64
	ForkParameters                []ForkVersion // ascending by Epoch; ForkParameters[0] is genesis fork
	MinSyncCommitteeParticipants uint64
	IBCContractAddress           [20]byte
	IBCCommitmentSlot            [32]byte

	LatestSlot uint64
	IsFrozen   bool
}

// ConsensusState is the trusted state recorded at a given slot.
type ConsensusState struct {
	Slot                 uint64
	StateRoot            [32]byte
	StorageRoot          [32]byte
	Timestamp            uint64
	CurrentSyncCommittee *SyncCommittee
	NextSyncCommittee    *SyncCommittee // may be nil until learned
}

// SyncCommittee is the fixed-size (512 on mainnet, but left unsized here)
// committee of validator BLS pubkeys authorized to sign updates for one
// sync-committee period.
type SyncCommittee struct {
	Pubkeys         [][48]byte
	AggregatePubkey [48]byte
}

// Equal reports whether two sync committees hold the same ordered pubkeys.
func (c *SyncCommittee) Equal(other *SyncCommittee) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.AggregatePubkey != other.AggregatePubkey {
		return false
	}
	if len(c.Pubkeys) != len(other.Pubkeys) {
		return false
	}
	for i := range c.Pubkeys {
		if c.Pubkeys[i] != other.Pubkeys[i] {
			return false
		}
	}
	return true
}

// ExecutionPayloadHeader is the subset of the execution payload header
// needed to track the IBC contract's storage root on the execution chain.
type ExecutionPayloadHeader struct {
	StateRoot   [32]byte // execution state root (contains account trie)
	BlockNumber uint64
	Timestamp   uint64
}

// BeaconBlockHeader is the SSZ beacon block header.
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// LightClientHeader bundles a beacon block header with the execution payload
// header it commits to, plus the Merkle branch proving the execution payload
// header is included in the beacon block body.
type LightClientHeader struct {
	Beacon          BeaconBlockHeader
	Execution       ExecutionPayloadHeader
	ExecutionBranch [][32]byte
}

// SyncAggregate is the sync committee's aggregated BLS signature over a
// signing root, together with the participation bitfield.
type SyncAggregate struct {
	SyncCommitteeBits      []byte // bit i set iff committee member i signed
	SyncCommitteeSignature [96]byte
}

// NumParticipants returns the number of set bits in SyncCommitteeBits.
func (a SyncAggregate) NumParticipants() int {
	n := 0
	for _, b := range a.SyncCommitteeBits {
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				n++
			}
		}
	}
	return n
}

// HasSufficientParticipants reports whether at least min committee members
// signed.
func (a SyncAggregate) HasSufficientParticipants(min uint64) bool {
	return uint64(a.NumParticipants()) >= min
}

// ValidateSignatureSupermajority reports whether at least 2/3 of
// committeeSize members signed.
func (a SyncAggregate) ValidateSignatureSupermajority(committeeSize int) bool {
	return 3*a.NumParticipants() >= 2*committeeSize
}

// ParticipantBits returns true for each committee slot i that participated,
// honoring bit ordering (bit i of byte i/8).
func (a SyncAggregate) ParticipantBits(committeeSize int) []bool {
	bits := make([]bool, committeeSize)
	for i := 0; i < committeeSize; i++ {
		byteIdx := i / 8
		if byteIdx >= len(a.SyncCommitteeBits) {
			break
		}
		bits[i] = a.SyncCommitteeBits[byteIdx]&(1<<uint(i%8)) != 0
	}
	return bits
}

// LightClientUpdate is the wire message accepted by VerifyHeader/
// ValidateLightClientUpdate.
type LightClientUpdate struct {
	AttestedHeader         LightClientHeader
	FinalizedHeader        LightClientHeader
	FinalityBranch         [][32]byte
	NextSyncCommittee       *SyncCommittee
	NextSyncCommitteeBranch [][32]byte
	SyncAggregate          SyncAggregate
	SignatureSlot          uint64
}

// Header is the client message submitted to UpdateClient: a consensus
// update plus the sync committee the submitter believes is currently active
// (used to short-circuit verification against a stale committee before any
// Merkle/BLS work, mirroring TrustedConsensusState in the original Rust
// client).
type Header struct {
	ConsensusUpdate      LightClientUpdate
	ActiveSyncCommittee  SyncCommittee
}
