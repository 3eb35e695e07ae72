package tendermintlightclient

import "time"

// Misbehaviour bundles two headers for the same height submitted against
// the same trusted consensus state: both independently pass VerifyHeader
// yet commit to different application state. Submitting it freezes the
// client.
type Misbehaviour struct {
	HeaderA Header
	HeaderB Header
}

// DetectMisbehaviour validates both headers and reports whether they
// conflict. ok=true means m is genuine misbehaviour and the caller should
// freeze the client via Freeze.
func DetectMisbehaviour(client *ClientState, trusted *ConsensusState, now time.Time, m *Misbehaviour, verifier SignatureVerifier) (ok bool, err error) {
	if err := VerifyHeader(client, trusted, &m.HeaderA, now, verifier); err != nil {
		return false, err
	}
	if err := VerifyHeader(client, trusted, &m.HeaderB, now, verifier); err != nil {
		return false, err
	}

	if m.HeaderA.Height == m.HeaderB.Height && m.HeaderA.AppHash != m.HeaderB.AppHash {
		return true, nil
	}
	return false, ErrMisbehaviourNotDetected
}

// Freeze marks a client as no longer accepting updates, pinning
// FrozenHeight to the conflicting height so on-chain verifiers can explain
// why the client stopped.
func Freeze(client *ClientState, at Height) {
	client.FrozenHeight = at
}
