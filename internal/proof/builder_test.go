package proof

import "testing"

func TestClassifyClientID(t *testing.T) {
	cases := map[string]ClientFamily{
		"07-tendermint-0": ClientFamilyTendermint,
		"07-tendermint-5": ClientFamilyTendermint,
		"08-wasm-0":       ClientFamilyEthereum,
		"unknown-client":  ClientFamilyUnknown,
	}
	for id, want := range cases {
		if got := ClassifyClientID(id); got != want {
			t.Fatalf("ClassifyClientID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestSelectBuilderDispatchesByFamily(t *testing.T) {
	eth := &EthereumBuilder{}
	tm := &TendermintBuilder{}

	b, err := SelectBuilder("08-wasm-0", eth, tm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != Builder(eth) {
		t.Fatalf("expected the ethereum builder to be selected")
	}

	b, err = SelectBuilder("07-tendermint-0", eth, tm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != Builder(tm) {
		t.Fatalf("expected the tendermint builder to be selected")
	}

	if _, err := SelectBuilder("nope", eth, tm); err == nil {
		t.Fatalf("expected an error for an unrecognized client id")
	}
}
