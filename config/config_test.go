package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	main := DefaultMainnet()
	if err := Validate(main); err != nil {
		t.Errorf("mainnet defaults invalid: %v", err)
	}
	if main.Protocol.NetworkID != 1 {
		t.Errorf("mainnet network id = %d, want 1", main.Protocol.NetworkID)
	}

	test := DefaultTestnet()
	if err := Validate(test); err != nil {
		t.Errorf("testnet defaults invalid: %v", err)
	}
	if test.Protocol.NetworkID != 0 {
		t.Errorf("testnet network id = %d, want 0", test.Protocol.NetworkID)
	}
	if test.Protocol.MinFeeA != main.Protocol.MinFeeA {
		t.Error("fee policy should match across networks")
	}
}

func TestFeePolicyBridging(t *testing.T) {
	policy := MainnetParams().FeePolicy()
	// fee(size) = minFeeB + minFeeA * size
	if got := policy.Fee(300); got != 168581 {
		t.Errorf("Fee(300) = %d, want 168581", got)
	}
	if policy.KeyDeposit != DefaultKeyDeposit {
		t.Errorf("key deposit = %d, want %d", policy.KeyDeposit, DefaultKeyDeposit)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nil guarded separately", nil},
		{"bad network", func(c *Config) { c.Network = "devnet" }},
		{"empty datadir", func(c *Config) { c.DataDir = "" }},
		{"zero fee policy", func(c *Config) { c.Protocol.MinFeeA = 0; c.Protocol.MinFeeB = 0 }},
		{"negative fee", func(c *Config) { c.Protocol.MinFeeA = -1 }},
		{"zero tx size", func(c *Config) { c.Protocol.MaxTxSize = 0 }},
		{"zero ttl window", func(c *Config) { c.Protocol.TTLWindow = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"oversized network id", func(c *Config) { c.Protocol.NetworkID = 16 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate == nil {
				if err := Validate(nil); err == nil {
					t.Error("expected error for nil config")
				}
				return
			}
			cfg := DefaultMainnet()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Network != Mainnet {
		t.Errorf("missing file should yield mainnet defaults, got %q", cfg.Network)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.yaml")
	body := "network: testnet\nlog:\n  level: debug\nprotocol:\n  key_deposit: 5000000\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Network != Testnet {
		t.Errorf("network = %q, want testnet", cfg.Network)
	}
	if cfg.Protocol.NetworkID != 0 {
		t.Errorf("network id = %d, want testnet defaults", cfg.Protocol.NetworkID)
	}
	if cfg.Protocol.KeyDeposit != 5_000_000 {
		t.Errorf("key deposit = %d, want override 5000000", cfg.Protocol.KeyDeposit)
	}
	// Untouched fields keep their defaults.
	if cfg.Protocol.MinFeeB != DefaultMinFeeB {
		t.Errorf("min fee b = %f, want default", cfg.Protocol.MinFeeB)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.yaml")
	orig := DefaultTestnet()
	orig.Log.Level = "warn"

	if err := SaveFile(orig, path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Network != orig.Network || loaded.Log.Level != "warn" {
		t.Error("round trip changed config")
	}
	if loaded.Protocol != orig.Protocol {
		t.Error("round trip changed protocol parameters")
	}
}

func TestFlagsApply(t *testing.T) {
	cfg := DefaultMainnet()
	f := &Flags{Network: "testnet", DataDir: "/tmp/w", LogLevel: "debug"}
	if err := f.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Network != Testnet || cfg.Protocol.NetworkID != 0 {
		t.Error("network flag did not switch protocol params")
	}
	if cfg.DataDir != "/tmp/w" {
		t.Errorf("datadir = %q", cfg.DataDir)
	}

	bad := &Flags{Network: "devnet"}
	if err := bad.Apply(DefaultMainnet()); err == nil {
		t.Error("expected error for unknown network")
	}
}
