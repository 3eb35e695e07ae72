package ethlightclient

// Misbehaviour bundles two conflicting headers submitted against the same
// trusted consensus state: both independently pass ValidateLightClientUpdate
// yet finalize the same slot with a different beacon state root or proposer
// index. Headers that finalize different slots are never reported as
// conflicting. Submitting it freezes the client (spec §4.1 "misbehaviour
// handling").
type Misbehaviour struct {
	HeaderA Header
	HeaderB Header
}

// DetectMisbehaviour validates both headers against the same trusted state
// and reports whether they conflict. A nil error with ok=true means m is
// genuine misbehaviour and the caller should freeze the client via Freeze.
func DetectMisbehaviour(client *ClientState, trusted *ConsensusState, m *Misbehaviour, bls BlsVerifier) (ok bool, err error) {
	if err := VerifyHeader(trusted, client, client.LatestSlot, &m.HeaderA, bls); err != nil {
		return false, err
	}
	if err := VerifyHeader(trusted, client, client.LatestSlot, &m.HeaderB, bls); err != nil {
		return false, err
	}

	a := m.HeaderA.ConsensusUpdate.FinalizedHeader.Beacon
	b := m.HeaderB.ConsensusUpdate.FinalizedHeader.Beacon

	if a.Slot == b.Slot && a.StateRoot != b.StateRoot {
		return true, nil
	}
	if a.Slot == b.Slot && a.ProposerIndex != b.ProposerIndex {
		return true, nil
	}
	return false, ErrMisbehaviourNotDetected
}

// Freeze marks a client state as no longer accepting updates. Freezing is
// permanent: no code path unfreezes a ClientState.
func Freeze(client *ClientState) {
	client.IsFrozen = true
}
