package tendermintlightclient

import (
	"crypto/ed25519"
	"errors"
	"testing"
	"time"
)

func addressOf(pub ed25519.PublicKey) [20]byte {
	var addr [20]byte
	copy(addr[:], pub[:20])
	return addr
}

type testValidator struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	addr [20]byte
}

func newTestValidator(t *testing.T) testValidator {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return testValidator{priv: priv, pub: pub, addr: addressOf(pub)}
}

func buildSignedHeader(t *testing.T, chainID string, val testValidator, height uint64, headerTime time.Time, power int64) Header {
	t.Helper()

	vs := ValidatorSet{Validators: []Validator{{Address: val.addr, VotingPower: power}}}
	copy(vs.Validators[0].PubKey[:], val.pub)

	commit := Commit{
		Height:  height,
		Round:   0,
		BlockID: BlockID{Hash: [32]byte{1, 2, 3}},
		Sigs: []CommitSig{{
			ValidatorAddress: val.addr,
			Timestamp:        headerTime,
			BlockIDFlag:      BlockIDFlagCommit,
		}},
	}

	msg, err := canonicalPrecommitBytes(chainID, commit, commit.Sigs[0])
	if err != nil {
		t.Fatalf("canonical precommit bytes: %v", err)
	}
	sig := ed25519.Sign(val.priv, msg)
	copy(commit.Sigs[0].Signature[:], sig)

	return Header{
		Height:             Height{RevisionNumber: 0, RevisionHeight: height},
		Time:               headerTime,
		NextValidatorsHash: vs.Hash,
		AppHash:            [32]byte{9},
		Commit:             commit,
		ValidatorSet:       vs,
		TrustedNextValSet:  vs,
	}
}

func TestVerifyHeaderAcceptsValidTransition(t *testing.T) {
	chainID := "testchain-1"
	val := newTestValidator(t)
	now := time.Now()

	client := &ClientState{
		ChainID:         chainID,
		TrustLevel:      TrustLevel{Numerator: 1, Denominator: 3},
		TrustingPeriod:  24 * time.Hour,
		MaxClockDrift:   10 * time.Minute,
		LatestHeight:    Height{RevisionNumber: 0, RevisionHeight: 10},
	}
	trusted := &ConsensusState{
		Timestamp:          now.Add(-time.Hour),
		NextValidatorsHash: [32]byte{},
	}

	header := buildSignedHeader(t, chainID, val, 11, now.Add(-time.Minute), 100)
	trusted.NextValidatorsHash = header.TrustedNextValSet.Hash

	if err := VerifyHeader(client, trusted, &header, now, ConsensusVerifier{}); err != nil {
		t.Fatalf("expected header to verify, got %v", err)
	}
}

func TestVerifyHeaderRejectsFrozenClient(t *testing.T) {
	client := &ClientState{FrozenHeight: Height{RevisionHeight: 5}}
	err := VerifyHeader(client, &ConsensusState{}, &Header{}, time.Now(), ConsensusVerifier{})
	if !errors.Is(err, ErrClientFrozen) {
		t.Fatalf("expected ErrClientFrozen, got %v", err)
	}
}

func TestVerifyHeaderRejectsHeightNotIncreasing(t *testing.T) {
	client := &ClientState{LatestHeight: Height{RevisionHeight: 10}}
	header := &Header{Height: Height{RevisionHeight: 5}}
	err := VerifyHeader(client, &ConsensusState{}, header, time.Now(), ConsensusVerifier{})
	if !errors.Is(err, ErrHeightNotIncreasing) {
		t.Fatalf("expected ErrHeightNotIncreasing, got %v", err)
	}
}

func TestVerifyHeaderRejectsInsufficientUntrustedPower(t *testing.T) {
	chainID := "testchain-1"
	signer := newTestValidator(t)
	absent := newTestValidator(t)
	now := time.Now()

	client := &ClientState{
		ChainID:        chainID,
		TrustLevel:     TrustLevel{Numerator: 1, Denominator: 3},
		TrustingPeriod: 24 * time.Hour,
		MaxClockDrift:  10 * time.Minute,
		LatestHeight:   Height{RevisionHeight: 10},
	}
	trusted := &ConsensusState{Timestamp: now.Add(-time.Hour)}

	header := buildSignedHeader(t, chainID, signer, 11, now.Add(-time.Minute), 10)
	// Add a second, much heavier validator who never signed.
	header.ValidatorSet.Validators = append(header.ValidatorSet.Validators, Validator{
		Address: absent.addr, VotingPower: 1000,
	})
	header.TrustedNextValSet = header.ValidatorSet
	header.NextValidatorsHash = header.ValidatorSet.Hash
	trusted.NextValidatorsHash = header.NextValidatorsHash

	err := VerifyHeader(client, trusted, &header, now, ConsensusVerifier{})
	if !errors.Is(err, ErrInsufficientUntrustedPower) {
		t.Fatalf("expected ErrInsufficientUntrustedPower, got %v", err)
	}
}
