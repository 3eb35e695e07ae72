package tendermintlightclient

import "github.com/hdevalence/ed25519consensus"

// SignatureVerifier abstracts Ed25519 verification so the acceptance
// predicate stays a pure function of its inputs, testable without linking
// the curve library.
type SignatureVerifier interface {
	Verify(pubKey [32]byte, msg, sig []byte) bool
}

// ConsensusVerifier verifies signatures with ed25519consensus, the
// ZIP-215-compatible batch-safe verifier Tendermint itself uses so that
// light clients agree with full nodes on which signatures are valid.
type ConsensusVerifier struct{}

func (ConsensusVerifier) Verify(pubKey [32]byte, msg, sig []byte) bool {
	if len(sig) != 64 {
		return false
	}
	return ed25519consensus.Verify(pubKey[:], msg, sig)
}
