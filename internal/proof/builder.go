package proof

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ClientFamily distinguishes which light client (and therefore which
// membership proof format) a client id belongs to.
type ClientFamily int

const (
	ClientFamilyUnknown ClientFamily = iota
	ClientFamilyTendermint
	ClientFamilyEthereum
)

// tendermintPrefix/wasmPrefix follow ibc-go's client id convention:
// "<light-client-type>-<sequence>".
const (
	tendermintPrefix = "07-tendermint-"
	wasmPrefix       = "08-wasm-" // wraps a Beacon light client behind a wasm contract
)

// ClassifyClientID picks the client family from its id prefix, the dynamic
// dispatch point spec §9 calls out: the relayer selects a proof builder by
// examining the destination client_id prefix rather than threading a type
// tag through every call.
func ClassifyClientID(clientID string) ClientFamily {
	switch {
	case strings.HasPrefix(clientID, tendermintPrefix):
		return ClientFamilyTendermint
	case strings.HasPrefix(clientID, wasmPrefix):
		return ClientFamilyEthereum
	default:
		return ClientFamilyUnknown
	}
}

// Builder is the two-method interface spec §9 describes: an Ethereum-family
// builder and a Tendermint-family builder share it behind dynamic dispatch
// on client id prefix; both implementations here encode as JSON. raw is the proof material the
// relayer already fetched from the source chain (eth_getProof result or
// an ICS-23 abci_query proof); BuildMembershipProof reshapes it into the
// wire envelope the destination's RecvPacket/AckPacket/TimeoutPacket
// message expects, and BuildClientMessage does the same for an
// UpdateClient payload.
type Builder interface {
	BuildMembershipProof(raw any) ([]byte, error)
	BuildClientMessage(header any) ([]byte, error)
}

// SelectBuilder returns the Builder grounded on clientID's family.
func SelectBuilder(clientID string, eth *EthereumBuilder, tm *TendermintBuilder) (Builder, error) {
	switch ClassifyClientID(clientID) {
	case ClientFamilyEthereum:
		return eth, nil
	case ClientFamilyTendermint:
		return tm, nil
	default:
		return nil, fmt.Errorf("proof: no builder registered for client id %q", clientID)
	}
}

// EthereumBuilder builds the envelope for an Ethereum-family destination
// client ("08-wasm-", a Wasm-wrapped Beacon light client): the
// account+storage MPT proof pair, RLP-free here since the router itself
// re-derives RLP when verifying (mpt.go); the relayer only needs to ship the
// node lists and the claimed value across the wire, which it does as plain
// JSON matching the rest of this package's wire types.
type EthereumBuilder struct{}

func (EthereumBuilder) BuildMembershipProof(raw any) ([]byte, error) {
	envelope, ok := raw.(EthereumMembershipProof)
	if !ok {
		return nil, fmt.Errorf("proof: EthereumBuilder expects an EthereumMembershipProof, got %T", raw)
	}
	return json.Marshal(envelope)
}

func (EthereumBuilder) BuildClientMessage(header any) ([]byte, error) {
	return json.Marshal(header)
}

// TendermintBuilder builds the ICS-23 JSON envelope for a Tendermint-family
// destination client ("07-tendermint-").
type TendermintBuilder struct{}

func (TendermintBuilder) BuildMembershipProof(raw any) ([]byte, error) {
	envelope, ok := raw.(TendermintMembershipProof)
	if !ok {
		return nil, fmt.Errorf("proof: TendermintBuilder expects a TendermintMembershipProof, got %T", raw)
	}
	return json.Marshal(envelope)
}

func (TendermintBuilder) BuildClientMessage(header any) ([]byte, error) {
	return json.Marshal(header)
}
