package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relayer.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadAppliesFinalityDefaults(t *testing.T) {
	path := writeTempConfig(t, `{
		"chains": {"eth": {"chain_id": "1", "rpc_addr": "http://localhost:8545", "signer_address": "0xabc"}},
		"directions": {"eth-to-cosmos": {"mode": "sp1"}}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dir := cfg.Directions["eth-to-cosmos"]
	if dir.FinalityPollInterval != DefaultFinalityPollInterval {
		t.Fatalf("expected default poll interval, got %v", dir.FinalityPollInterval)
	}
	if dir.FinalityTotalDeadline != DefaultFinalityTotalDeadline {
		t.Fatalf("expected default total deadline, got %v", dir.FinalityTotalDeadline)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	path := writeTempConfig(t, `{
		"chains": {},
		"directions": {"bad": {"mode": "groth16"}}
	}`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unrecognized mode")
	}
}

func TestGenerateJSONRoundTrips(t *testing.T) {
	cfg := &Config{
		Chains:     map[string]ChainEndpoint{"eth": {ChainID: "1", RPCAddr: "http://localhost:8545"}},
		Directions: map[string]DirectionConfig{"eth-to-cosmos": {Mode: ModeAttested}},
	}
	out, err := cfg.GenerateJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty JSON output")
	}
}
