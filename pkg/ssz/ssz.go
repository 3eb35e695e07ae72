// Package ssz implements the small slice of SSZ Merkleization the Beacon
// light client needs: container hash-tree-roots for beacon block headers,
// fork-data/signing-data domains, and generalized-index Merkle branch
// verification. It intentionally does not implement general-purpose SSZ
// encoding/decoding (ferranbt/fastssz covers that for full beacon types);
// this package only carries the handful of primitives the light client's
// acceptance predicate needs, expressed the way fastssz's hasher does.
package ssz

import "crypto/sha256"

// Root is a 32-byte SSZ hash tree root.
type Root = [32]byte

var zeroHashes = computeZeroHashes(64)

func computeZeroHashes(levels int) []Root {
	zh := make([]Root, levels)
	for i := 1; i < levels; i++ {
		zh[i] = HashNode(zh[i-1], zh[i-1])
	}
	return zh
}

// ZeroHash returns the zero-value root for the given Merkle tree depth.
func ZeroHash(depth int) Root {
	if depth < len(zeroHashes) {
		return zeroHashes[depth]
	}
	return computeZeroHashes(depth + 1)[depth]
}

// HashNode is the SSZ/Merkle-Patricia style sha256(left || right) combiner.
func HashNode(left, right Root) Root {
	h := sha256.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Root
	h.Sum(out[:0])
	return out
}

// Merkleize computes the root of a binary Merkle tree over leaves, padding
// with zero hashes up to the next power of two (or to limit, if given and
// larger). This mirrors how SSZ containers/vectors are tree-hashed.
func Merkleize(leaves []Root, limit int) Root {
	count := len(leaves)
	if limit > count {
		count = limit
	}
	depth := 0
	for (1 << depth) < count {
		depth++
	}
	layer := make([]Root, 1<<depth)
	copy(layer, leaves)
	for d := depth; d > 0; d-- {
		next := make([]Root, 1<<(d-1))
		for i := range next {
			next[i] = HashNode(layer[2*i], layer[2*i+1])
		}
		layer = next
	}
	if len(layer) == 0 {
		return ZeroHash(0)
	}
	return layer[0]
}

// Uint64ToRoot little-endian-encodes an integer into the low 8 bytes of a
// 32-byte SSZ leaf, per the "basic type" packing rule.
func Uint64ToRoot(v uint64) Root {
	var r Root
	for i := 0; i < 8; i++ {
		r[i] = byte(v >> (8 * i))
	}
	return r
}

// VersionToRoot left-packs a 4-byte fork version into an SSZ leaf.
func VersionToRoot(v [4]byte) Root {
	var r Root
	copy(r[:4], v[:])
	return r
}

// GeneralizedIndexDepth returns floor(log2(gindex)), i.e. the number of
// sibling hashes a Merkle branch at that generalized index must carry.
func GeneralizedIndexDepth(gindex uint64) int {
	depth := 0
	for gindex > 1 {
		gindex >>= 1
		depth++
	}
	return depth
}

// NormalizeMerkleBranch pads a branch with zero hashes (from the deepest
// level of the expected depth) or drops its deepest (leaf-side) entries,
// keeping the root-side ones, until its length matches the depth implied
// by gindex. This matches the light client's
// tolerance for chain-specific generalized index changes across forks,
// which can shift the expected branch depth; verification still rejects any
// length mismatch that survives normalization.
func NormalizeMerkleBranch(branch []Root, gindex uint64) []Root {
	depth := GeneralizedIndexDepth(gindex)
	if len(branch) == depth {
		out := make([]Root, depth)
		copy(out, branch)
		return out
	}
	out := make([]Root, depth)
	if len(branch) > depth {
		// Keep the most significant `depth` entries (closest to the root).
		copy(out, branch[len(branch)-depth:])
		return out
	}
	// Pad missing low levels with zero hashes of the appropriate depth.
	missing := depth - len(branch)
	for i := 0; i < missing; i++ {
		out[i] = ZeroHash(i)
	}
	copy(out[missing:], branch)
	return out
}

// VerifyMerkleBranch checks that leaf, combined with branch along the path
// implied by gindex, reconstructs root. branch must already be normalized
// to the expected depth (see NormalizeMerkleBranch); a length mismatch is a
// caller error surfaced as a failed verification rather than a panic.
func VerifyMerkleBranch(leaf Root, branch []Root, gindex uint64, root Root) bool {
	depth := GeneralizedIndexDepth(gindex)
	if len(branch) != depth {
		return false
	}
	computed := leaf
	index := gindex
	for i := 0; i < depth; i++ {
		if index&1 == 1 {
			computed = HashNode(branch[i], computed)
		} else {
			computed = HashNode(computed, branch[i])
		}
		index >>= 1
	}
	return computed == root
}
