// Command solana-ibc provides a thin CLI around the Solana chunk-upload
// surface (spec §4.4 "Size-bounded transmission"): reclaiming rent from
// abandoned chunk uploads. Adapted from tools/solana-ibc/main.go's cobra
// root + flag style; the account-lookup-table and compute-budget concerns
// that tool also covered are on-Solana transaction-size management, which
// spec §1 excludes from the core.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/cosmos/ibc-relay-core/internal/solanaibc"
)

var rootCmd = &cobra.Command{
	Use:   "solana-ibc",
	Short: "CLI for Solana-side chunk-upload maintenance",
}

var cleanupChunksCmd = &cobra.Command{
	Use:   "cleanup-chunks <program-id> <payer-keypair> <client-id> <sequence> <chunk-pda...>",
	Short: "Close chunk PDAs for a (client, sequence) and reclaim rent",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		programID := solanago.MustPublicKeyFromBase58(args[0])
		payer, err := loadWallet(args[1])
		if err != nil {
			return err
		}
		clientID := args[2]
		var sequence uint64
		if _, err := fmt.Sscanf(args[3], "%d", &sequence); err != nil {
			return fmt.Errorf("solana-ibc: invalid sequence %q: %w", args[3], err)
		}

		var chunkPDAs []solanago.PublicKey
		for _, raw := range args[4:] {
			chunkPDAs = append(chunkPDAs, solanago.MustPublicKeyFromBase58(raw))
		}

		ix, err := solanaibc.NewCleanupChunksInstruction(programID, payer.PublicKey(), chunkPDAs, clientID, sequence)
		if err != nil {
			return fmt.Errorf("solana-ibc: build cleanup instruction: %w", err)
		}

		sig, err := submit(cmd.Context(), args[0], payer, []solanago.Instruction{ix})
		if err != nil {
			return err
		}
		fmt.Printf("cleanup submitted: %s\n", sig)
		return nil
	},
}

func loadWallet(keypairPath string) (*solanago.Wallet, error) {
	data, err := os.ReadFile(keypairPath)
	if err != nil {
		return nil, fmt.Errorf("solana-ibc: read keypair %s: %w", keypairPath, err)
	}
	wallet, err := solanago.WalletFromPrivateKeyBase58(string(data))
	if err != nil {
		return nil, fmt.Errorf("solana-ibc: parse keypair: %w", err)
	}
	return wallet, nil
}

// submit is a placeholder transaction submission path; wiring an RPC
// client and blockhash fetch is transport-level plumbing the core spec
// treats as an external collaborator (spec §1).
func submit(ctx context.Context, clusterURL string, wallet *solanago.Wallet, instructions []solanago.Instruction) (solanago.Signature, error) {
	return solanago.Signature{}, fmt.Errorf("solana-ibc: submit is a thin wrapper the host binary must bind to a cluster RPC client")
}

func init() {
	rootCmd.AddCommand(cleanupChunksCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
