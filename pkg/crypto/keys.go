package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Ed25519 material sizes in bytes. The dummy-witness generator relies
// on these matching the real scheme exactly.
const (
	// VKeySize is the length of an Ed25519 verification key.
	VKeySize = ed25519.PublicKeySize
	// SignatureSize is the length of an Ed25519 signature.
	SignatureSize = ed25519.SignatureSize
	// KeySeedSize is the length of an Ed25519 private key seed.
	KeySeedSize = ed25519.SeedSize
)

// SigningKey is the capability exposed by the key store for producing
// witnesses. Implementations must be safe for concurrent use.
type SigningKey interface {
	// PublicKey returns the 32-byte verification key.
	PublicKey() []byte
	// Sign produces a 64-byte signature over the message.
	Sign(message []byte) ([]byte, error)
}

// Ed25519Key is a SigningKey backed by an in-memory Ed25519 private key.
type Ed25519Key struct {
	priv ed25519.PrivateKey
}

// NewEd25519Key creates a key from a 32-byte seed.
func NewEd25519Key(seed []byte) (*Ed25519Key, error) {
	if len(seed) != KeySeedSize {
		return nil, fmt.Errorf("key seed must be %d bytes, got %d", KeySeedSize, len(seed))
	}
	return &Ed25519Key{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// GenerateEd25519Key creates a new random key.
func GenerateEd25519Key() (*Ed25519Key, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &Ed25519Key{priv: priv}, nil
}

// PublicKey returns the 32-byte verification key.
func (k *Ed25519Key) PublicKey() []byte {
	pub := k.priv.Public().(ed25519.PublicKey)
	out := make([]byte, VKeySize)
	copy(out, pub)
	return out
}

// Sign produces an Ed25519 signature over the message.
func (k *Ed25519Key) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(k.priv, message), nil
}

// Verify checks an Ed25519 signature against a verification key and
// message. Returns false on any malformed input.
func Verify(vkey, message, signature []byte) bool {
	if len(vkey) != VKeySize || len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(vkey), message, signature)
}
