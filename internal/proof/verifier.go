package proof

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cosmos/ibc-relay-core/internal/ethlightclient"
	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
	"github.com/cosmos/ibc-relay-core/internal/tendermintlightclient"
)

// EthereumConsensusStateStore resolves a client id to its trusted
// ClientState and the ConsensusState recorded at a given Beacon slot, the
// lookup EthereumVerifier needs to check a membership claim against a
// prior StorageRoot.
type EthereumConsensusStateStore interface {
	GetClientState(clientID string) (*ethlightclient.ClientState, bool)
	GetConsensusState(clientID string, slot uint64) (*ethlightclient.ConsensusState, bool)
}

// EthereumVerifier implements router.LightClientVerifier against C1: it
// decodes the wire envelope proof.EthereumBuilder produced, recomputes the
// storage key from path via ibccommitment.EthereumStorageKey so a proof
// cannot smuggle in a different slot than the one the client trusts, and
// delegates the actual trie walk to VerifyEthereumMembership.
type EthereumVerifier struct {
	Store EthereumConsensusStateStore
}

func (v *EthereumVerifier) lookup(clientID string, proofHeight uint64) (*ethlightclient.ClientState, *ethlightclient.ConsensusState, error) {
	client, ok := v.Store.GetClientState(clientID)
	if !ok {
		return nil, nil, fmt.Errorf("proof: no ethereum client state for %q", clientID)
	}
	cs, ok := v.Store.GetConsensusState(clientID, proofHeight)
	if !ok {
		return nil, nil, fmt.Errorf("proof: no ethereum consensus state for %q at slot %d", clientID, proofHeight)
	}
	return client, cs, nil
}

func (v *EthereumVerifier) decode(client *ethlightclient.ClientState, path []byte, rawProof []byte) (EthereumMembershipProof, error) {
	var envelope EthereumMembershipProof
	if err := json.Unmarshal(rawProof, &envelope); err != nil {
		return EthereumMembershipProof{}, fmt.Errorf("proof: decode ethereum membership proof: %w", err)
	}
	wantKey := storageKeyFor(client, path)
	if envelope.Storage.Key != wantKey {
		return EthereumMembershipProof{}, fmt.Errorf("%w: storage key does not match path", ErrStorageProofFailed)
	}
	return envelope, nil
}

// VerifyMembership implements router.LightClientVerifier.
func (v *EthereumVerifier) VerifyMembership(clientID string, proofHeight uint64, path []byte, value []byte, rawProof []byte) (uint64, error) {
	client, cs, err := v.lookup(clientID, proofHeight)
	if err != nil {
		return 0, err
	}
	envelope, err := v.decode(client, path, rawProof)
	if err != nil {
		return 0, err
	}
	got, ok, err := VerifyEthereumMembership(cs.StorageRoot, client.IBCContractAddress, envelope)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: expected membership, proof resolved absent", ErrStorageProofFailed)
	}
	if !bytes.Equal(got[:], value) {
		return 0, fmt.Errorf("%w: committed value mismatch", ErrStorageProofFailed)
	}
	return cs.Timestamp, nil
}

// VerifyNonMembership implements router.LightClientVerifier.
func (v *EthereumVerifier) VerifyNonMembership(clientID string, proofHeight uint64, path []byte, rawProof []byte) (uint64, error) {
	client, cs, err := v.lookup(clientID, proofHeight)
	if err != nil {
		return 0, err
	}
	envelope, err := v.decode(client, path, rawProof)
	if err != nil {
		return 0, err
	}
	_, ok, err := VerifyEthereumMembership(cs.StorageRoot, client.IBCContractAddress, envelope)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, fmt.Errorf("%w: expected non-membership, proof resolved present", ErrStorageProofFailed)
	}
	return cs.Timestamp, nil
}

func storageKeyFor(client *ethlightclient.ClientState, path []byte) [32]byte {
	return ibccommitment.EthereumStorageKey(path, client.IBCCommitmentSlot)
}

// EthereumClientRegistry is an in-memory EthereumConsensusStateStore,
// usable as a default when no host-backed registry (PDAs/accounts) is
// wired in; a size-bounded on-chain VM backs the same interface against
// its own client/consensus-state accounts instead.
type EthereumClientRegistry struct {
	mu        sync.Mutex
	clients   map[string]*ethlightclient.ClientState
	consensus map[string]map[uint64]*ethlightclient.ConsensusState
}

// NewEthereumClientRegistry builds an empty registry.
func NewEthereumClientRegistry() *EthereumClientRegistry {
	return &EthereumClientRegistry{
		clients:   make(map[string]*ethlightclient.ClientState),
		consensus: make(map[string]map[uint64]*ethlightclient.ConsensusState),
	}
}

func (r *EthereumClientRegistry) PutClientState(clientID string, cs *ethlightclient.ClientState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[clientID] = cs
}

func (r *EthereumClientRegistry) PutConsensusState(clientID string, slot uint64, cs *ethlightclient.ConsensusState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consensus[clientID] == nil {
		r.consensus[clientID] = make(map[uint64]*ethlightclient.ConsensusState)
	}
	r.consensus[clientID][slot] = cs
}

func (r *EthereumClientRegistry) GetClientState(clientID string) (*ethlightclient.ClientState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, ok := r.clients[clientID]
	return cs, ok
}

func (r *EthereumClientRegistry) GetConsensusState(clientID string, slot uint64) (*ethlightclient.ConsensusState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byHeight, ok := r.consensus[clientID]
	if !ok {
		return nil, false
	}
	cs, ok := byHeight[slot]
	return cs, ok
}

// TendermintConsensusStateStore resolves a client id to its trusted
// ClientState and the ConsensusState recorded at a given height.
type TendermintConsensusStateStore interface {
	GetClientState(clientID string) (*tendermintlightclient.ClientState, bool)
	GetConsensusState(clientID string, height tendermintlightclient.Height) (*tendermintlightclient.ConsensusState, bool)
}

// TendermintVerifier implements router.LightClientVerifier against C2,
// decoding the ICS-23 envelope proof.TendermintBuilder produced and
// delegating to VerifyTendermintMembership/VerifyTendermintNonMembership.
type TendermintVerifier struct {
	Store TendermintConsensusStateStore
}

func (v *TendermintVerifier) lookup(clientID string, proofHeight uint64) (*tendermintlightclient.ClientState, *tendermintlightclient.ConsensusState, error) {
	client, ok := v.Store.GetClientState(clientID)
	if !ok {
		return nil, nil, fmt.Errorf("proof: no tendermint client state for %q", clientID)
	}
	height := tendermintlightclient.Height{RevisionNumber: client.LatestHeight.RevisionNumber, RevisionHeight: proofHeight}
	cs, ok := v.Store.GetConsensusState(clientID, height)
	if !ok {
		return nil, nil, fmt.Errorf("proof: no tendermint consensus state for %q at height %d", clientID, proofHeight)
	}
	return client, cs, nil
}

func decodeTendermintEnvelope(rawProof []byte) (TendermintMembershipProof, error) {
	var envelope TendermintMembershipProof
	if err := json.Unmarshal(rawProof, &envelope); err != nil {
		return TendermintMembershipProof{}, fmt.Errorf("proof: decode tendermint membership proof: %w", err)
	}
	return envelope, nil
}

// VerifyMembership implements router.LightClientVerifier.
func (v *TendermintVerifier) VerifyMembership(clientID string, proofHeight uint64, path []byte, value []byte, rawProof []byte) (uint64, error) {
	_, cs, err := v.lookup(clientID, proofHeight)
	if err != nil {
		return 0, err
	}
	envelope, err := decodeTendermintEnvelope(rawProof)
	if err != nil {
		return 0, err
	}
	if err := VerifyTendermintMembership(cs.Root, envelope, value); err != nil {
		return 0, err
	}
	return uint64(cs.Timestamp.Unix()), nil
}

// VerifyNonMembership implements router.LightClientVerifier.
func (v *TendermintVerifier) VerifyNonMembership(clientID string, proofHeight uint64, path []byte, rawProof []byte) (uint64, error) {
	_, cs, err := v.lookup(clientID, proofHeight)
	if err != nil {
		return 0, err
	}
	envelope, err := decodeTendermintEnvelope(rawProof)
	if err != nil {
		return 0, err
	}
	if err := VerifyTendermintNonMembership(cs.Root, envelope); err != nil {
		return 0, err
	}
	return uint64(cs.Timestamp.Unix()), nil
}

// TendermintClientRegistry is an in-memory TendermintConsensusStateStore,
// the same default-registry role EthereumClientRegistry plays for C1.
type TendermintClientRegistry struct {
	mu        sync.Mutex
	clients   map[string]*tendermintlightclient.ClientState
	consensus map[string]map[tendermintlightclient.Height]*tendermintlightclient.ConsensusState
}

// NewTendermintClientRegistry builds an empty registry.
func NewTendermintClientRegistry() *TendermintClientRegistry {
	return &TendermintClientRegistry{
		clients:   make(map[string]*tendermintlightclient.ClientState),
		consensus: make(map[string]map[tendermintlightclient.Height]*tendermintlightclient.ConsensusState),
	}
}

func (r *TendermintClientRegistry) PutClientState(clientID string, cs *tendermintlightclient.ClientState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[clientID] = cs
}

func (r *TendermintClientRegistry) PutConsensusState(clientID string, height tendermintlightclient.Height, cs *tendermintlightclient.ConsensusState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.consensus[clientID] == nil {
		r.consensus[clientID] = make(map[tendermintlightclient.Height]*tendermintlightclient.ConsensusState)
	}
	r.consensus[clientID][height] = cs
}

func (r *TendermintClientRegistry) GetClientState(clientID string) (*tendermintlightclient.ClientState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, ok := r.clients[clientID]
	return cs, ok
}

func (r *TendermintClientRegistry) GetConsensusState(clientID string, height tendermintlightclient.Height) (*tendermintlightclient.ConsensusState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byHeight, ok := r.consensus[clientID]
	if !ok {
		return nil, false
	}
	cs, ok := byHeight[height]
	return cs, ok
}
