package ssz

import "testing"

func TestMerkleizeSingleLeafReturnsLeaf(t *testing.T) {
	leaf := Root{1}
	got := Merkleize([]Root{leaf}, 1)
	if got != leaf {
		t.Fatalf("single-leaf merkleize with limit 1 should return the leaf itself")
	}
}

func TestVerifyMerkleBranchRoundTrip(t *testing.T) {
	leaves := []Root{{1}, {2}, {3}, {4}}
	root := Merkleize(leaves, 4)

	// gindex 4 addresses leaves[0] at depth 2 (binary tree of 4 leaves).
	gindex := uint64(4)
	branch := []Root{leaves[1], HashNode(leaves[2], leaves[3])}

	if !VerifyMerkleBranch(leaves[0], branch, gindex, root) {
		t.Fatalf("expected branch to verify")
	}
	if VerifyMerkleBranch(leaves[1], branch, gindex, root) {
		t.Fatalf("expected a different leaf to fail verification")
	}
}

func TestNormalizeMerkleBranchPadsShortBranch(t *testing.T) {
	gindex := uint64(8) // depth 3
	short := []Root{{9}}
	normalized := NormalizeMerkleBranch(short, gindex)
	if len(normalized) != 3 {
		t.Fatalf("expected normalized branch of depth 3, got %d", len(normalized))
	}
	if normalized[2] != short[0] {
		t.Fatalf("expected the supplied entry to land at the root-side (last) level")
	}
}

func TestGeneralizedIndexDepth(t *testing.T) {
	cases := map[uint64]int{1: 0, 2: 1, 3: 1, 4: 2, 105: 6, 55: 5}
	for gindex, want := range cases {
		if got := GeneralizedIndexDepth(gindex); got != want {
			t.Fatalf("GeneralizedIndexDepth(%d) = %d, want %d", gindex, got, want)
		}
	}
}
