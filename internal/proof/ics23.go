package proof

import (
	"bytes"
	"errors"
	"fmt"

	ics23 "github.com/cosmos/ics23/go"
)

// ErrIcs23ProofFailed covers any ICS-23 verification failure: malformed
// proof bytes, membership check failure, or non-membership check failure.
var ErrIcs23ProofFailed = errors.New("proof: ics23 verification failed")

// VerifyTendermintMembership verifies that key maps to value at appHash,
// walking the chained proof layers (outermost store proof last, matching
// ibc-go's MerkleProof convention: proofs[0] verifies against the
// innermost module store, proofs[len-1] against the chain's app hash).
func VerifyTendermintMembership(appHash [32]byte, envelope TendermintMembershipProof, value []byte) error {
	if len(envelope.Proofs) == 0 || len(envelope.Path) == 0 {
		return fmt.Errorf("%w: empty proof or path", ErrIcs23ProofFailed)
	}

	expectedValue := value
	var lastRoot []byte
	for i, raw := range envelope.Proofs {
		cp := &ics23.CommitmentProof{}
		if err := cp.Unmarshal(raw); err != nil {
			return fmt.Errorf("%w: unmarshal layer %d: %s", ErrIcs23ProofFailed, i, err)
		}
		layerRoot, err := ics23.CalculateRoot(cp)
		if err != nil {
			return fmt.Errorf("%w: calculate root at layer %d: %s", ErrIcs23ProofFailed, i, err)
		}
		key := envelope.Path[len(envelope.Path)-1-i]
		if !ics23.VerifyMembership(ics23.TendermintSpec, layerRoot, cp, key, expectedValue) {
			return fmt.Errorf("%w: membership check failed at layer %d", ErrIcs23ProofFailed, i)
		}
		// Each outer layer proves membership of the *inner layer's root*,
		// not the original leaf value.
		expectedValue = layerRoot
		lastRoot = layerRoot
	}

	if !bytes.Equal(lastRoot, appHash[:]) {
		return fmt.Errorf("%w: final computed root does not match app hash", ErrIcs23ProofFailed)
	}
	return nil
}

// VerifyTendermintNonMembership verifies that key is absent at the
// innermost layer's root, resolved up to appHash via the remaining proof
// layers.
func VerifyTendermintNonMembership(appHash [32]byte, envelope TendermintMembershipProof) error {
	if len(envelope.Proofs) == 0 || len(envelope.Path) == 0 {
		return fmt.Errorf("%w: empty proof or path", ErrIcs23ProofFailed)
	}

	innermost := &ics23.CommitmentProof{}
	if err := innermost.Unmarshal(envelope.Proofs[0]); err != nil {
		return fmt.Errorf("%w: unmarshal innermost layer: %s", ErrIcs23ProofFailed, err)
	}
	innerRoot, err := ics23.CalculateRoot(innermost)
	if err != nil {
		return fmt.Errorf("%w: calculate innermost root: %s", ErrIcs23ProofFailed, err)
	}
	if !ics23.VerifyNonMembership(ics23.TendermintSpec, innerRoot, innermost, envelope.Path[len(envelope.Path)-1]) {
		return fmt.Errorf("%w: non-membership check failed", ErrIcs23ProofFailed)
	}

	if len(envelope.Proofs) == 1 {
		if !bytes.Equal(innerRoot, appHash[:]) {
			return fmt.Errorf("%w: innermost root does not match app hash", ErrIcs23ProofFailed)
		}
		return nil
	}

	chained := TendermintMembershipProof{
		Path:   envelope.Path[:len(envelope.Path)-1],
		Proofs: envelope.Proofs[1:],
	}
	return VerifyTendermintMembership(appHash, chained, innerRoot)
}
