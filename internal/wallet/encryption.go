package wallet

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Sealed-seed envelope, version 1:
//
//	version(1) | salt(32) | iterations(4 BE) | memory(4 BE) | parallelism(1) | nonce(24) | ciphertext
//
// The header doubles as AEAD associated data, so a tampered version
// byte or KDF parameter fails authentication instead of silently
// deriving a wrong key.
const (
	sealVersion    = 1
	sealSaltSize   = 32
	sealHeaderSize = 1 + sealSaltSize + 4 + 4 + 1
)

// EncryptionParams holds the Argon2id cost parameters recorded in the
// envelope header.
type EncryptionParams struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns the cost parameters used for new wallets.
func DefaultParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 4,
	}
}

// sealKey stretches the passphrase into an XChaCha20 key.
func sealKey(password, salt []byte, params EncryptionParams) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

// Encrypt seals data under a passphrase with Argon2id and
// XChaCha20-Poly1305, producing a version-1 envelope.
func Encrypt(data, password []byte, params EncryptionParams) ([]byte, error) {
	salt := make([]byte, sealSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	header := make([]byte, 0, sealHeaderSize)
	header = append(header, sealVersion)
	header = append(header, salt...)
	header = binary.BigEndian.AppendUint32(header, params.Iterations)
	header = binary.BigEndian.AppendUint32(header, params.Memory)
	header = append(header, params.Parallelism)

	key := sealKey(password, salt, params)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, sealHeaderSize+len(nonce)+len(data)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, header), nil
}

// Decrypt opens an envelope produced by Encrypt.
func Decrypt(encrypted, password []byte) ([]byte, error) {
	minSize := sealHeaderSize + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
	if len(encrypted) < minSize {
		return nil, fmt.Errorf("sealed seed too short: %d bytes, need at least %d", len(encrypted), minSize)
	}
	if encrypted[0] != sealVersion {
		return nil, fmt.Errorf("unsupported seal version %d", encrypted[0])
	}

	header := encrypted[:sealHeaderSize]
	salt := header[1 : 1+sealSaltSize]
	params := EncryptionParams{
		Iterations:  binary.BigEndian.Uint32(header[1+sealSaltSize:]),
		Memory:      binary.BigEndian.Uint32(header[1+sealSaltSize+4:]),
		Parallelism: header[sealHeaderSize-1],
	}
	nonce := encrypted[sealHeaderSize : sealHeaderSize+chacha20poly1305.NonceSizeX]
	ciphertext := encrypted[sealHeaderSize+chacha20poly1305.NonceSizeX:]

	key := sealKey(password, salt, params)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("open sealed seed: %w", err)
	}
	return plaintext, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
