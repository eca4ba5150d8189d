package wallet

import (
	"bytes"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

const (
	vectorMnemonic12 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	vectorMnemonic24 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
)

func TestSeedFromMnemonic(t *testing.T) {
	seed, err := SeedFromMnemonic(vectorMnemonic24, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	if len(seed) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(seed), SeedSize)
	}
	if bytes.Equal(seed, make([]byte, SeedSize)) {
		t.Error("seed is all zeros")
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	a, err := SeedFromMnemonic(vectorMnemonic12, "test")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	b, err := SeedFromMnemonic(vectorMnemonic12, "test")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same mnemonic and passphrase produced different seeds")
	}
}

func TestSeedFromMnemonic_PassphraseKeysKDF(t *testing.T) {
	plain, err := SeedFromMnemonic(vectorMnemonic12, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	keyed, err := SeedFromMnemonic(vectorMnemonic12, "my passphrase")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	if bytes.Equal(plain, keyed) {
		t.Error("different passphrases produced the same seed")
	}
}

func TestSeedFromMnemonic_DistinctMnemonics(t *testing.T) {
	a, err := SeedFromMnemonic(vectorMnemonic12, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	b, err := SeedFromMnemonic(vectorMnemonic24, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("different mnemonics produced the same seed")
	}
}

func TestSeedFromMnemonic_SaltedWithEntropyNotText(t *testing.T) {
	// The Icarus KDF must not coincide with the BIP-39 seed KDF,
	// which is keyed by the mnemonic text instead of its entropy.
	seed, err := SeedFromMnemonic(vectorMnemonic12, "x")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	bipSeed := bip39.NewSeed(vectorMnemonic12, "x")
	if bytes.Equal(seed, bipSeed) {
		t.Error("seed matches the text-keyed BIP-39 derivation")
	}
}

func TestSeedFromMnemonic_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
	}{
		{"empty", ""},
		{"unknown words", "not valid words here"},
		{"broken checksum", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"},
		{"single word", "abandon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SeedFromMnemonic(tt.mnemonic, ""); err == nil {
				t.Errorf("SeedFromMnemonic(%q) succeeded, want error", tt.mnemonic)
			}
		})
	}
}
