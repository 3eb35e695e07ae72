// Command relayer loads the control loop's (C4) config file and builds each
// direction's router; it does not run the loop itself, because all
// transport-level chain clients are injected by the host binary
// that imports internal/relayer (spec §1 Non-goals), so this command only
// owns config parsing, logging/metrics startup, and process lifecycle —
// the host-chain plumbing spec.md explicitly excludes from the core.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmos/ibc-relay-core/internal/config"
	"github.com/cosmos/ibc-relay-core/internal/proof"
	"github.com/cosmos/ibc-relay-core/internal/router"
	"github.com/cosmos/ibc-relay-core/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// buildRouter constructs a Router for one direction, dispatching the
// LightClientVerifier it's wired to by dstClientID's family (spec §9): a
// "07-tendermint-" destination gets a TendermintVerifier over C2, a
// "08-wasm-" destination (a Wasm-wrapped Beacon client) gets an
// EthereumVerifier over C1. The registries start empty; populating them
// from UpdateClient traffic is the host binary's job (spec §1), the same
// boundary relayer.Module's ProofFetcher/UpdateFetcher interfaces draw.
func buildRouter(dstClientID string) (*router.Router, error) {
	var verifier router.LightClientVerifier
	switch proof.ClassifyClientID(dstClientID) {
	case proof.ClientFamilyEthereum:
		verifier = &proof.EthereumVerifier{Store: proof.NewEthereumClientRegistry()}
	case proof.ClientFamilyTendermint:
		verifier = &proof.TendermintVerifier{Store: proof.NewTendermintClientRegistry()}
	default:
		return nil, fmt.Errorf("relayer: unrecognized destination client family for %q", dstClientID)
	}
	return router.NewRouter(router.NewMemStore(), verifier, func() int64 { return time.Now().Unix() }), nil
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "relayer",
	Short: "Packet relay engine: observes both chains and drives UpdateClient/Recv/Ack/Timeout",
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Load config, start logging/metrics and build each direction's router",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("relayer: load config: %w", err)
		}

		logger, err := telemetry.NewLogger(false)
		if err != nil {
			return fmt.Errorf("relayer: init logger: %w", err)
		}
		defer logger.Sync()

		reg := prometheus.NewRegistry()
		// NewMetrics registers the relayer's collectors on reg so /metrics
		// serves them; this command keeps no handle to them and records
		// nothing itself.
		telemetry.NewMetrics(reg)

		if cfg.MetricsAddr != "" {
			go func() {
				if err := telemetry.ServeMetrics(cfg.MetricsAddr, reg); err != nil {
					logger.Sugar().Errorw("metrics server stopped", "error", err)
				}
			}()
		}

		logger.Sugar().Infow("relayer config loaded", "directions", len(cfg.Directions), "chains", len(cfg.Chains))

		routers := make(map[string]*router.Router, len(cfg.Directions))
		for name, dir := range cfg.Directions {
			r, err := buildRouter(dir.DstClientID)
			if err != nil {
				return fmt.Errorf("relayer: direction %q: %w", name, err)
			}
			routers[name] = r
			logger.Sugar().Infow("router constructed", "direction", name, "dst_client_id", dir.DstClientID, "mode", dir.Mode)
		}

		logger.Sugar().Warnw("core control loop requires host-supplied chain clients; see internal/relayer.Module")
		return nil
	},
}

var txCmd = &cobra.Command{
	Use:   "tx <direction>",
	Short: "Check that a direction exists in the config and print its mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("relayer: load config: %w", err)
		}
		direction := args[0]
		if _, ok := cfg.Directions[direction]; !ok {
			return fmt.Errorf("relayer: unknown direction %q", direction)
		}
		fmt.Printf("relaying direction %s in mode %s\n", direction, cfg.Directions[direction].Mode)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "relayer.json", "path to relayer.json")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(txCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
