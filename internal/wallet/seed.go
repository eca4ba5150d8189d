package wallet

import (
	"crypto/sha512"
	"fmt"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length of the derived root seed in bytes (512 bits).
const SeedSize = 64

// seedRounds is the PBKDF2 iteration count for root seed stretching,
// matching the Icarus master-key derivation.
const seedRounds = 4096

// SeedFromMnemonic derives the root seed the Icarus way: the KDF is
// keyed by the spending passphrase and salted with the mnemonic's raw
// entropy rather than its text, so the wallet is a function of the
// entropy alone.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return pbkdf2.Key([]byte(passphrase), entropy, seedRounds, SeedSize, sha512.New), nil
}
