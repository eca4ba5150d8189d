package tx

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/shinchan121/cardano-wallet/pkg/crypto"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// seededHash returns a deterministic 32-byte hash filled with b.
func seededHash(b byte) types.Hash {
	var h types.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

// testKey returns a deterministic Ed25519 key seeded with b.
func testKey(t *testing.T, b byte) *crypto.Ed25519Key {
	t.Helper()
	key, err := crypto.NewEd25519Key(bytes.Repeat([]byte{b}, crypto.KeySeedSize))
	if err != nil {
		t.Fatalf("test key: %v", err)
	}
	return key
}

// testAddress derives a testnet base address owned by key.
func testAddress(key *crypto.Ed25519Key) types.Address {
	stake := crypto.KeyHash([]byte("test-stake-key"))
	return types.NewBaseAddress(types.TestnetID, crypto.KeyHash(key.PublicKey()), stake)
}

// lookupFor builds a KeyLookup over the given keys, keyed by their
// test addresses.
func lookupFor(keys ...*crypto.Ed25519Key) KeyLookup {
	byAddr := make(map[string]crypto.SigningKey, len(keys))
	for _, k := range keys {
		byAddr[string(testAddress(k))] = k
	}
	return func(addr types.Address) (crypto.SigningKey, bool) {
		k, ok := byAddr[string(addr)]
		return k, ok
	}
}

// testRewardSigner returns a deterministic reward signer.
func testRewardSigner(t *testing.T) RewardSigner {
	t.Helper()
	key := testKey(t, 0xaa)
	return RewardSigner{
		Account: types.NewRewardAccount(types.TestnetID, crypto.KeyHash(key.PublicKey())),
		Key:     key,
	}
}

// unseal decodes sealed wire bytes into body and witness set for
// inspection.
func unseal(t *testing.T, sealed []byte) (Body, WitnessSet) {
	t.Helper()
	var raw struct {
		_         struct{} `cbor:",toarray"`
		Body      Body
		Witnesses WitnessSet
		Metadata  cbor.RawMessage
	}
	if err := txDecMode.Unmarshal(sealed, &raw); err != nil {
		t.Fatalf("unseal: %v", err)
	}
	return raw.Body, raw.Witnesses
}
