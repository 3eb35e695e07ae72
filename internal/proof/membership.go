// Package proof implements the two (non-)membership proof envelopes the
// router consumes: Ethereum Merkle-Patricia account/storage proofs verified
// against a Beacon ConsensusState, and ICS-23 commitment proofs verified
// against a Tendermint ConsensusState's app hash.
package proof

// AccountProof proves inclusion of an account's RLP encoding in the
// execution state trie at ConsensusState.state_root.
type AccountProof struct {
	Proof       [][]byte
	StorageRoot [32]byte
}

// StorageProof proves inclusion (or absence) of a single storage slot in
// the account's storage trie.
type StorageProof struct {
	Key   [32]byte
	Value []byte // big-endian; empty/all-zero means non-membership
	Proof [][]byte
}

// EthereumMembershipProof is the envelope described in spec §6: an account
// proof against the state root, chained into a storage proof against the
// account's storage root.
type EthereumMembershipProof struct {
	Account AccountProof
	Storage StorageProof
}

// TendermintMembershipProof wraps the ICS-23 commitment proofs resolved
// against a Tendermint ConsensusState's app hash, at path ["ibc",
// <commitment-subpath>].
type TendermintMembershipProof struct {
	Path   [][]byte
	Proofs [][]byte // serialized ics23.CommitmentProof, one per store layer
}

// Verifier describes a (non-)membership check that, for the router's
// timeout logic, also surfaces the consensus state's timestamp at the proven
// height. Nothing in this module implements it: EthereumVerifier and
// TendermintVerifier implement router.LightClientVerifier instead, which
// takes a client id and raw proof bytes.
type Verifier interface {
	VerifyMembership(proofHeightOrSlot uint64, path []byte, value []byte, envelope any) (timestampSeconds uint64, err error)
	VerifyNonMembership(proofHeightOrSlot uint64, path []byte, envelope any) (timestampSeconds uint64, err error)
}
