package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// HashSize is the length of a transaction hash in bytes.
const HashSize = 32

// KeyHashSize is the length of a verification key hash in bytes.
const KeyHashSize = 28

// Hash represents a 256-bit BLAKE2b hash (transaction id, metadata hash).
type Hash [HashSize]byte

// KeyHash is a 224-bit BLAKE2b hash of a verification key, used as a
// stake credential.
type KeyHash [KeyHashSize]byte

// PoolID identifies a stake pool by the hash of its cold key.
type PoolID [KeyHashSize]byte

// IsZero returns true if the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// MarshalJSON encodes the hash as a hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a hex string into a hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := HexToHash(s)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// MarshalCBOR encodes the hash as a CBOR byte string.
func (h Hash) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(h[:])
}

// UnmarshalCBOR decodes a CBOR byte string into a hash.
func (h *Hash) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != HashSize {
		return fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return nil
}

// HexToHash converts a hex string to a Hash.
// Returns an error if the string is not exactly 64 hex characters.
func HexToHash(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// String returns the hex-encoded key hash.
func (k KeyHash) String() string {
	return hex.EncodeToString(k[:])
}

// MarshalCBOR encodes the key hash as a CBOR byte string.
func (k KeyHash) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(k[:])
}

// UnmarshalCBOR decodes a CBOR byte string into a key hash.
func (k *KeyHash) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != KeyHashSize {
		return fmt.Errorf("key hash must be %d bytes, got %d", KeyHashSize, len(b))
	}
	copy(k[:], b)
	return nil
}

// String returns the hex-encoded pool id.
func (p PoolID) String() string {
	return hex.EncodeToString(p[:])
}

// MarshalCBOR encodes the pool id as a CBOR byte string.
func (p PoolID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p[:])
}

// UnmarshalCBOR decodes a CBOR byte string into a pool id.
func (p *PoolID) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != KeyHashSize {
		return fmt.Errorf("pool id must be %d bytes, got %d", KeyHashSize, len(b))
	}
	copy(p[:], b)
	return nil
}

// HexToPoolID converts a hex string to a PoolID.
func HexToPoolID(s string) (PoolID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PoolID{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != KeyHashSize {
		return PoolID{}, fmt.Errorf("pool id must be %d bytes, got %d", KeyHashSize, len(b))
	}
	var p PoolID
	copy(p[:], b)
	return p, nil
}
