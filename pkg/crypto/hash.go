// Package crypto provides the hashing and signing primitives used by
// the transaction layer: BLAKE2b digests and Ed25519 keys.
package crypto

import (
	"github.com/shinchan121/cardano-wallet/pkg/types"
	"golang.org/x/crypto/blake2b"
)

// Hash computes the BLAKE2b-256 digest of data. Transaction ids are
// Hash(body bytes).
func Hash(data []byte) types.Hash {
	return blake2b.Sum256(data)
}

// KeyHash computes the BLAKE2b-224 digest of a verification key,
// producing a stake or payment credential.
func KeyHash(vkey []byte) types.KeyHash {
	h, err := blake2b.New(types.KeyHashSize, nil)
	if err != nil {
		// blake2b.New only fails for invalid sizes; 28 is valid.
		panic("crypto: blake2b-224 init: " + err.Error())
	}
	h.Write(vkey)
	var kh types.KeyHash
	copy(kh[:], h.Sum(nil))
	return kh
}
