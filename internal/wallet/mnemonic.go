// Package wallet implements HD key management, the encrypted keystore,
// and coin selection on top of the transaction layer.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicWords is the recovery phrase length for new wallets. 24
// words carry 256 bits of entropy, the strongest size BIP-39 defines.
const MnemonicWords = 24

// GenerateMnemonic creates a fresh 24-word recovery phrase.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicWords * 32 / 3)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic reports whether the phrase has known words and an
// intact checksum. Imports accept any BIP-39 length, not just the 24
// words this wallet generates.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
