package tendermintlightclient

import (
	"fmt"
	"time"
)

// VerifyHeader implements the ICS-07 skip-verification algorithm (spec
// §4.2): it checks height/time bounds, validator-set continuity, the two
// power thresholds, and every collected signature, without requiring
// verification of every intermediate header between trusted and header.
func VerifyHeader(client *ClientState, trusted *ConsensusState, header *Header, now time.Time, verifier SignatureVerifier) error {
	if client.IsFrozen() {
		return ErrClientFrozen
	}
	if header.Height.RevisionNumber != client.LatestHeight.RevisionNumber {
		return ErrRevisionMismatch
	}
	if !header.Height.GT(client.LatestHeight) {
		return ErrHeightNotIncreasing
	}
	if now.Sub(header.Time) > client.TrustingPeriod-client.MaxClockDrift {
		return ErrHeaderExpired
	}
	if !header.Time.After(trusted.Timestamp) {
		return ErrHeaderNotMonotonic
	}
	if header.Time.After(now.Add(client.MaxClockDrift)) {
		return ErrHeaderInFuture
	}
	if header.TrustedNextValSet.Hash != trusted.NextValidatorsHash {
		return ErrNextValidatorSetMismatch
	}

	if err := verifyCommitThresholds(client, header, verifier); err != nil {
		return err
	}

	return nil
}

// verifyCommitThresholds checks the commit against both power thresholds
// and verifies every signature it counts. Voting power is double-counted
// against two denominators: the full untrusted set (for basic commit
// validity) and the trusted next-validator set (for the trust transition),
// restricted to the overlap of validators present in both sets.
func verifyCommitThresholds(client *ClientState, header *Header, verifier SignatureVerifier) error {
	seen := make(map[[20]byte]bool)
	var untrustedSignedPower int64
	var trustedOverlapPower int64

	for _, sig := range header.Commit.Sigs {
		if sig.BlockIDFlag != BlockIDFlagCommit {
			continue
		}
		if seen[sig.ValidatorAddress] {
			return fmt.Errorf("%w: %x", ErrDuplicateSigner, sig.ValidatorAddress)
		}
		seen[sig.ValidatorAddress] = true

		untrustedVal, ok := header.ValidatorSet.ByAddress(sig.ValidatorAddress)
		if !ok {
			return fmt.Errorf("%w: %x", ErrUnknownSigner, sig.ValidatorAddress)
		}

		msg, err := canonicalPrecommitBytes(client.ChainID, header.Commit, sig)
		if err != nil {
			return fmt.Errorf("tendermintlightclient: build canonical vote bytes: %w", err)
		}
		if !verifier.Verify(untrustedVal.PubKey, msg, sig.Signature[:]) {
			return fmt.Errorf("%w: validator %x", ErrInvalidSignature, sig.ValidatorAddress)
		}

		untrustedSignedPower += untrustedVal.VotingPower
		if trustedVal, ok := header.TrustedNextValSet.ByAddress(sig.ValidatorAddress); ok {
			trustedOverlapPower += trustedVal.VotingPower
		}
	}

	untrustedTotal := header.ValidatorSet.TotalVotingPower()
	if 3*untrustedSignedPower < 2*untrustedTotal {
		return fmt.Errorf("%w: signed=%d total=%d", ErrInsufficientUntrustedPower, untrustedSignedPower, untrustedTotal)
	}

	trustedTotal := header.TrustedNextValSet.TotalVotingPower()
	if client.TrustLevel.Denominator > 0 &&
		trustedOverlapPower*int64(client.TrustLevel.Denominator) < trustedTotal*int64(client.TrustLevel.Numerator) {
		return fmt.Errorf("%w: overlap=%d total=%d threshold=%d/%d",
			ErrInsufficientTrustedOverlap, trustedOverlapPower, trustedTotal,
			client.TrustLevel.Numerator, client.TrustLevel.Denominator)
	}

	return nil
}

// ApplyUpdate computes the post-conditions of a Header that has already
// passed VerifyHeader: a new ConsensusState at header.Height and the
// client's LatestHeight advancing to match.
func ApplyUpdate(client *ClientState, header *Header) (*ConsensusState, *ClientState) {
	next := &ConsensusState{
		Timestamp:          header.Time,
		Root:               header.AppHash,
		NextValidatorsHash: header.NextValidatorsHash,
	}
	updated := *client
	if header.Height.GT(updated.LatestHeight) {
		updated.LatestHeight = header.Height
	}
	return next, &updated
}
