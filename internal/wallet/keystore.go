package wallet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shinchan121/cardano-wallet/internal/log"
)

// keystoreVersion is the on-disk wallet file format version.
const keystoreVersion = 1

// walletFile is the JSON envelope stored as <dir>/<name>.wallet.
type walletFile struct {
	Version          int            `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	EncryptedSeed    []byte         `json:"encrypted_seed"`
	Addresses        []AddressEntry `json:"addresses"`
	NextAddressIndex uint32         `json:"next_address_index"`
}

// AddressEntry records one derived address.
type AddressEntry struct {
	Index   uint32 `json:"index"`
	Role    uint32 `json:"role"` // RoleExternal or RoleInternal
	Name    string `json:"name"`
	Address string `json:"address"` // bech32-encoded
}

// Derivation returns the CIP-1852 (role, index) pair for this entry.
func (a AddressEntry) Derivation() (role, index uint32) {
	return a.Role, a.Index
}

// Keystore stores encrypted wallets, one file per wallet, under a
// single directory.
type Keystore struct {
	dir string
}

// NewKeystore opens (creating if needed) a keystore directory.
func NewKeystore(dir string) (*Keystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	return &Keystore{dir: dir}, nil
}

func (ks *Keystore) file(name string) string {
	return filepath.Join(ks.dir, name+".wallet")
}

// Create seals the seed under the password and writes a fresh wallet
// file. The name must not be in use.
func (ks *Keystore) Create(name string, seed, password []byte, params EncryptionParams) error {
	path := ks.file(name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("wallet %q already exists", name)
	}

	sealed, err := Encrypt(seed, password, params)
	if err != nil {
		return fmt.Errorf("seal seed: %w", err)
	}

	wf := walletFile{
		Version:       keystoreVersion,
		CreatedAt:     time.Now().UTC(),
		EncryptedSeed: sealed,
		Addresses:     []AddressEntry{},
	}
	if err := ks.write(path, &wf); err != nil {
		return err
	}

	log.Keystore.Info().Str("wallet", name).Msg("wallet created")
	return nil
}

// Load opens a wallet and returns the decrypted seed bytes.
func (ks *Keystore) Load(name string, password []byte) ([]byte, error) {
	wf, err := ks.read(ks.file(name))
	if err != nil {
		return nil, err
	}

	seed, err := Decrypt(wf.EncryptedSeed, password)
	if err != nil {
		return nil, fmt.Errorf("unlock wallet %q: %w", name, err)
	}

	log.Keystore.Debug().Str("wallet", name).Msg("wallet unlocked")
	return seed, nil
}

// AddAddress records a derived address in the wallet metadata. Adding
// an entry that already exists with the same address is a no-op; a
// conflicting entry for the same derivation path is an error.
func (ks *Keystore) AddAddress(name string, entry AddressEntry) error {
	return ks.update(name, func(wf *walletFile) error {
		for _, existing := range wf.Addresses {
			if existing.Role == entry.Role && existing.Index == entry.Index {
				if existing.Address == entry.Address {
					return nil
				}
				return fmt.Errorf("address path role=%d index=%d already exists", entry.Role, entry.Index)
			}
			if existing.Address != "" && existing.Address == entry.Address {
				return nil
			}
		}
		wf.Addresses = append(wf.Addresses, entry)
		return nil
	})
}

// ListAddresses returns the recorded address entries for a wallet.
func (ks *Keystore) ListAddresses(name string) ([]AddressEntry, error) {
	wf, err := ks.read(ks.file(name))
	if err != nil {
		return nil, err
	}
	return wf.Addresses, nil
}

// List returns the names of all wallets in the keystore.
func (ks *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext := filepath.Ext(name); ext == ".wallet" {
			names = append(names, name[:len(name)-len(ext)])
		}
	}
	return names, nil
}

// NextAddressIndex returns the next underived external address index.
func (ks *Keystore) NextAddressIndex(name string) (uint32, error) {
	wf, err := ks.read(ks.file(name))
	if err != nil {
		return 0, err
	}
	return wf.NextAddressIndex, nil
}

// SetNextAddressIndex records the next external address index.
func (ks *Keystore) SetNextAddressIndex(name string, idx uint32) error {
	return ks.update(name, func(wf *walletFile) error {
		wf.NextAddressIndex = idx
		return nil
	})
}

// AdvanceAddressIndex moves the next external address index forward
// by one.
func (ks *Keystore) AdvanceAddressIndex(name string) error {
	return ks.update(name, func(wf *walletFile) error {
		wf.NextAddressIndex++
		return nil
	})
}

// Delete removes a wallet file.
func (ks *Keystore) Delete(name string) error {
	path := ks.file(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("wallet %q not found", name)
	}
	if err := os.Remove(path); err != nil {
		return err
	}

	log.Keystore.Info().Str("wallet", name).Msg("wallet deleted")
	return nil
}

// update applies fn to the wallet file under a read-modify-write.
func (ks *Keystore) update(name string, fn func(*walletFile) error) error {
	path := ks.file(name)
	wf, err := ks.read(path)
	if err != nil {
		return err
	}
	if err := fn(wf); err != nil {
		return err
	}
	return ks.write(path, wf)
}

func (ks *Keystore) write(path string, wf *walletFile) error {
	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func (ks *Keystore) read(path string) (*walletFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	var wf walletFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if wf.Version != keystoreVersion {
		return nil, fmt.Errorf("unsupported wallet version: %d", wf.Version)
	}
	return &wf, nil
}
