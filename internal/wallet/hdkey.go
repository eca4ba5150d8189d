package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/shinchan121/cardano-wallet/pkg/crypto"
)

// CIP-1852 derivation path constants.
// Full path: m/1852'/1815'/account'/role'/index'
//
// Every step is hardened: ed25519 child keys cannot be derived from a
// parent public key, so there is no soft derivation and no watch-only
// master key.
const (
	// FirstHardenedChild marks the hardened half of the index space.
	FirstHardenedChild uint32 = 0x80000000

	// PurposeCIP1852 is the wallet purpose field (hardened).
	PurposeCIP1852 = FirstHardenedChild + 1852

	// CoinTypeAda is the registered ada coin type (hardened).
	CoinTypeAda = FirstHardenedChild + 1815

	// RoleExternal is for receiving addresses.
	RoleExternal = 0

	// RoleInternal is for change addresses.
	RoleInternal = 1

	// RoleStake is the single stake key of an account.
	RoleStake = 2
)

// hmacMasterKey is the SLIP-0010 domain separator for ed25519 curves.
var hmacMasterKey = []byte("ed25519 seed")

// HDKey is a hierarchical deterministic ed25519 key (SLIP-0010).
type HDKey struct {
	key       [32]byte
	chainCode [32]byte
	depth     uint8
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	mac := hmac.New(sha512.New, hmacMasterKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	var k HDKey
	copy(k.key[:], sum[:32])
	copy(k.chainCode[:], sum[32:])
	return &k, nil
}

// DeriveChild derives the hardened child key at the given index. The
// index must carry the hardened bit; soft derivation does not exist
// for ed25519.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	if index < FirstHardenedChild {
		return nil, fmt.Errorf("index %d is not hardened", index)
	}

	// data = 0x00 || parent key || ser32(index)
	data := make([]byte, 0, 1+32+4)
	data = append(data, 0x00)
	data = append(data, k.key[:]...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)

	child := &HDKey{depth: k.depth + 1}
	copy(child.key[:], sum[:32])
	copy(child.chainCode[:], sum[32:])
	return child, nil
}

// DerivePath derives a key along a sequence of hardened indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// DeriveAccountKey derives the account node at m/1852'/1815'/account'.
func (k *HDKey) DeriveAccountKey(account uint32) (*HDKey, error) {
	return k.DerivePath(
		PurposeCIP1852,
		CoinTypeAda,
		FirstHardenedChild+account,
	)
}

// DeriveAddressKey derives the key at m/1852'/1815'/account'/role'/index'.
func (k *HDKey) DeriveAddressKey(account, role, index uint32) (*HDKey, error) {
	return k.DerivePath(
		PurposeCIP1852,
		CoinTypeAda,
		FirstHardenedChild+account,
		FirstHardenedChild+role,
		FirstHardenedChild+index,
	)
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.depth
}

// Signer returns the ed25519 signing key seeded by this node.
func (k *HDKey) Signer() (*crypto.Ed25519Key, error) {
	return crypto.NewEd25519Key(k.key[:])
}
