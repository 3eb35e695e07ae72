package ethmodule

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient/gethclient"

	"github.com/cosmos/ibc-relay-core/internal/ibccommitment"
	"github.com/cosmos/ibc-relay-core/internal/proof"
)

// RPCProofFetcher satisfies ProofFetcher against a live execution client's
// eth_getProof (spec §6's storage-proof source). It derives the exact
// storage slot ContractAddress/CommitmentSlot governs for a commitment path
// through ibccommitment.EthereumStorageKey, the same derivation
// proof.EthereumVerifier recomputes when checking StorageProof.Key, so a
// proof fetched here can never be rejected for claiming the wrong slot.
type RPCProofFetcher struct {
	Client          *gethclient.Client
	ContractAddress common.Address
	CommitmentSlot  [32]byte
}

// GetProof fetches the account+storage proof for the IBC commitment at path,
// at blockNumber, via eth_getProof.
func (f *RPCProofFetcher) GetProof(ctx context.Context, blockNumber uint64, path []byte) (proof.EthereumMembershipProof, error) {
	key := ibccommitment.EthereumStorageKey(path, f.CommitmentSlot)

	result, err := f.Client.GetProof(ctx, f.ContractAddress, []string{hexutil.Encode(key[:])}, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return proof.EthereumMembershipProof{}, fmt.Errorf("ethmodule: eth_getProof at block %d: %w", blockNumber, err)
	}
	if len(result.StorageProof) != 1 {
		return proof.EthereumMembershipProof{}, fmt.Errorf("ethmodule: expected exactly one storage proof, got %d", len(result.StorageProof))
	}
	sp := result.StorageProof[0]

	accountNodes, err := decodeHexNodes(result.AccountProof)
	if err != nil {
		return proof.EthereumMembershipProof{}, fmt.Errorf("ethmodule: decode account proof: %w", err)
	}
	storageNodes, err := decodeHexNodes(sp.Proof)
	if err != nil {
		return proof.EthereumMembershipProof{}, fmt.Errorf("ethmodule: decode storage proof: %w", err)
	}

	var storageRoot [32]byte
	copy(storageRoot[:], result.StorageHash.Bytes())

	var value []byte
	if sp.Value != nil {
		value = sp.Value.ToInt().Bytes()
	}

	return proof.EthereumMembershipProof{
		Account: proof.AccountProof{Proof: accountNodes, StorageRoot: storageRoot},
		Storage: proof.StorageProof{Key: key, Value: value, Proof: storageNodes},
	}, nil
}

func decodeHexNodes(nodes []string) ([][]byte, error) {
	out := make([][]byte, len(nodes))
	for i, n := range nodes {
		decoded, err := hexutil.Decode(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out[i] = decoded
	}
	return out, nil
}
