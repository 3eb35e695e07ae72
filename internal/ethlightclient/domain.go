package ethlightclient

import "github.com/cosmos/ibc-relay-core/pkg/ssz"

// SyncCommitteeDomain is the domain type (the purpose a signing domain was
// computed for) of sync committee signatures, the only one C1 needs.
var SyncCommitteeDomain = [4]byte{0x07, 0x00, 0x00, 0x00}

// Domain is a 32-byte value mixed into every signing root: the first 4
// bytes are the domain type, the remaining 28 are the fork data root.
type Domain [32]byte

// computeForkDataRoot hashes {current_version, genesis_validators_root}.
func computeForkDataRoot(currentVersion [4]byte, genesisValidatorsRoot [32]byte) ssz.Root {
	leaves := []ssz.Root{
		ssz.VersionToRoot(currentVersion),
		genesisValidatorsRoot,
	}
	return ssz.Merkleize(leaves, 2)
}

// computeDomain implements compute_domain from the consensus spec:
// domain = domain_type || fork_data_root[:28].
func computeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) Domain {
	root := computeForkDataRoot(forkVersion, genesisValidatorsRoot)
	var d Domain
	copy(d[:4], domainType[:])
	copy(d[4:], root[:28])
	return d
}

// computeSigningRoot hashes {object_root, domain} into the root that gets
// BLS-signed.
func computeSigningRoot(objectRoot ssz.Root, domain Domain) ssz.Root {
	var domainRoot ssz.Root
	copy(domainRoot[:], domain[:])
	leaves := []ssz.Root{objectRoot, domainRoot}
	return ssz.Merkleize(leaves, 2)
}
