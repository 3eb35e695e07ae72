package solanaibc

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
)

func TestPayloadChunkPDADeterministic(t *testing.T) {
	program := solanago.NewWallet().PublicKey()
	payer := solanago.NewWallet().PublicKey()

	pda1, bump1, err := PayloadChunkPDA(program, payer, "07-tendermint-0", 1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pda2, bump2, err := PayloadChunkPDA(program, payer, "07-tendermint-0", 1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pda1 != pda2 || bump1 != bump2 {
		t.Fatalf("expected deterministic PDA derivation for identical seeds")
	}

	other, _, err := PayloadChunkPDA(program, payer, "07-tendermint-0", 2, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other == pda1 {
		t.Fatalf("expected different sequence to derive a different PDA")
	}
}

func TestSignatureMarkerPDAScopedToSession(t *testing.T) {
	program := solanago.NewWallet().PublicKey()
	submitter := solanago.NewWallet().PublicKey()
	var marker [32]byte
	marker[0] = 0x42

	pdaA, _, err := SignatureMarkerPDA(program, submitter, 100, marker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pdaB, _, err := SignatureMarkerPDA(program, submitter, 200, marker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pdaA == pdaB {
		t.Fatalf("expected different target heights to derive different marker PDAs")
	}
}
