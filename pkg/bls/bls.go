// Package bls wraps github.com/herumi/bls-eth-go-binary/bls for the single
// operation the Beacon light client needs: fast-aggregate-verify of a sync
// committee signature against an ordered set of participant public keys.
// Grounded on prysmaticlabs/prysm's go.mod, which vendors the same binding
// for its own sync-committee verification path.
package bls

import (
	"fmt"
	"sync"

	herumi "github.com/herumi/bls-eth-go-binary/bls"
)

var initOnce sync.Once
var initErr error

func ensureInit() error {
	initOnce.Do(func() {
		initErr = herumi.Init(herumi.BLS12_381)
		if initErr != nil {
			return
		}
		initErr = herumi.SetETHmode(herumi.EthModeDraft07)
	})
	return initErr
}

// PublicKey is a 48-byte compressed BLS12-381 G1 public key.
type PublicKey = [48]byte

// Signature is a 96-byte compressed BLS12-381 G2 signature.
type Signature = [96]byte

// Verifier performs fast-aggregate-verify: a single signature checked
// against the aggregate of many public keys over one message.
type Verifier struct{}

// NewVerifier constructs a Verifier, initializing the underlying curve
// library on first use.
func NewVerifier() (*Verifier, error) {
	if err := ensureInit(); err != nil {
		return nil, fmt.Errorf("bls: init curve: %w", err)
	}
	return &Verifier{}, nil
}

// FastAggregateVerify verifies that signature is a valid aggregate BLS
// signature by all of publicKeys over msg. Returns an error (never a
// boolean false) so the caller can wrap it into a typed light-client error.
func (Verifier) FastAggregateVerify(publicKeys []PublicKey, msg [32]byte, signature Signature) error {
	if len(publicKeys) == 0 {
		return fmt.Errorf("bls: fast aggregate verify: no public keys")
	}
	pubs := make([]herumi.PublicKey, len(publicKeys))
	for i, pk := range publicKeys {
		if err := pubs[i].Deserialize(pk[:]); err != nil {
			return fmt.Errorf("bls: deserialize public key %d: %w", i, err)
		}
	}
	var sig herumi.Sign
	if err := sig.Deserialize(signature[:]); err != nil {
		return fmt.Errorf("bls: deserialize signature: %w", err)
	}
	if !sig.FastAggregateVerify(pubs, msg[:]) {
		return fmt.Errorf("bls: fast aggregate verify: signature invalid")
	}
	return nil
}

// Aggregate combines public keys into a single aggregate public key, used
// when recomputing a sync committee's AggregatePubkey for equality checks.
func (Verifier) Aggregate(publicKeys []PublicKey) (PublicKey, error) {
	if len(publicKeys) == 0 {
		return PublicKey{}, fmt.Errorf("bls: aggregate: no public keys")
	}
	var agg herumi.PublicKey
	for i, pk := range publicKeys {
		var cur herumi.PublicKey
		if err := cur.Deserialize(pk[:]); err != nil {
			return PublicKey{}, fmt.Errorf("bls: deserialize public key %d: %w", i, err)
		}
		if i == 0 {
			agg = cur
		} else {
			agg.Add(&cur)
		}
	}
	out := agg.Serialize()
	var result PublicKey
	copy(result[:], out)
	return result, nil
}
