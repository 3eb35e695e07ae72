package ethmodule

import "testing"

func TestDecodeHexNodes(t *testing.T) {
	nodes, err := decodeHexNodes([]string{"0x0102", "0xff"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if len(nodes[0]) != 2 || nodes[0][0] != 0x01 || nodes[0][1] != 0x02 {
		t.Fatalf("unexpected first node: %x", nodes[0])
	}
	if len(nodes[1]) != 1 || nodes[1][0] != 0xff {
		t.Fatalf("unexpected second node: %x", nodes[1])
	}
}

func TestDecodeHexNodesRejectsInvalidHex(t *testing.T) {
	if _, err := decodeHexNodes([]string{"not-hex"}); err == nil {
		t.Fatalf("expected an error for invalid hex")
	}
}

func TestDecodeHexNodesEmpty(t *testing.T) {
	nodes, err := decodeHexNodes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(nodes))
	}
}
