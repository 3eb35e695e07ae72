// Package tendermintlightclient implements the Tendermint (ICS-07) light
// client (C2): skip-verification of header transitions under a fractional
// trust threshold, plus the three-phase signature-streaming sub-protocol a
// size-bounded VM uses to assemble an update across many transactions.
package tendermintlightclient

import "time"

// Height identifies a block by its revision (fork) number and height within
// that revision, matching ibc-go's Height.
type Height struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// GT reports whether h is strictly greater than other.
func (h Height) GT(other Height) bool {
	if h.RevisionNumber != other.RevisionNumber {
		return h.RevisionNumber > other.RevisionNumber
	}
	return h.RevisionHeight > other.RevisionHeight
}

// TrustLevel is the fractional trust threshold f = Numerator/Denominator
// applied to the overlap between the untrusted validator set and the
// trusted next-validator set.
type TrustLevel struct {
	Numerator   uint64
	Denominator uint64
}

// ClientState holds the parameters governing header acceptance for one
// counterparty chain.
type ClientState struct {
	ChainID         string
	TrustLevel      TrustLevel
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
	MaxClockDrift   time.Duration
	LatestHeight    Height
	FrozenHeight    Height // zero value means not frozen
}

// IsFrozen reports whether the client has been frozen by misbehaviour.
func (c *ClientState) IsFrozen() bool {
	return c.FrozenHeight != (Height{})
}

// Validator is one member of a validator set: its consensus address
// (truncated SHA-256 of the pubkey, per Tendermint convention), its Ed25519
// public key, and its voting power.
type Validator struct {
	Address     [20]byte
	PubKey      [32]byte
	VotingPower int64
}

// ValidatorSet is an ordered collection of validators together with its
// precomputed hash (a Merkle root over the set, as stored in
// next_validators_hash on the following header).
type ValidatorSet struct {
	Validators []Validator
	Hash       [32]byte
}

// TotalVotingPower sums the voting power of every validator in the set.
func (vs *ValidatorSet) TotalVotingPower() int64 {
	var total int64
	for _, v := range vs.Validators {
		total += v.VotingPower
	}
	return total
}

// ByAddress returns the validator with the given consensus address, or
// ok=false if absent.
func (vs *ValidatorSet) ByAddress(addr [20]byte) (Validator, bool) {
	for _, v := range vs.Validators {
		if v.Address == addr {
			return v, true
		}
	}
	return Validator{}, false
}

// BlockID identifies a block by its hash and the Merkle root of its parts,
// as embedded in a canonical vote.
type BlockID struct {
	Hash          [32]byte
	PartSetHeader PartSetHeader
}

// PartSetHeader is the (total, hash) pair describing a block's part set.
type PartSetHeader struct {
	Total uint32
	Hash  [32]byte
}

// CommitSig is one validator's precommit vote within a Commit: the address
// that signed, the vote timestamp, and the Ed25519 signature bytes.
type CommitSig struct {
	ValidatorAddress [20]byte
	Timestamp        time.Time
	Signature        [64]byte
	BlockIDFlag      BlockIDFlag
}

// BlockIDFlag mirrors Tendermint's commit-sig absent/nil/commit flag.
type BlockIDFlag int

const (
	BlockIDFlagAbsent BlockIDFlag = iota
	BlockIDFlagCommit
	BlockIDFlagNil
)

// Commit bundles the precommit votes collected for one height/round.
type Commit struct {
	Height  uint64
	Round   int32
	BlockID BlockID
	Sigs    []CommitSig
}

// Header is the header submitted to UpdateClient: a signed header (the
// block header plus the commit that finalized it) together with the
// validator set that produced the commit and the validator set trusted to
// be active at the next height.
type Header struct {
	Height              Height
	Time                time.Time
	ValidatorsHash      [32]byte
	NextValidatorsHash  [32]byte
	ConsensusHash       [32]byte
	AppHash             [32]byte
	LastResultsHash     [32]byte
	ProposerAddress     [20]byte
	Commit              Commit
	ValidatorSet        ValidatorSet // "untrusted" set that produced Commit
	TrustedNextValSet   ValidatorSet // claimed to be trusted.NextValidatorsHash
}

// ConsensusState is the trusted state recorded at a given height.
type ConsensusState struct {
	Timestamp          time.Time
	Root               [32]byte // AppHash, the ICS-23 commitment root
	NextValidatorsHash [32]byte
}
