package crypto

import (
	"bytes"
	"testing"
)

func TestNewEd25519Key(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, KeySeedSize)
	key, err := NewEd25519Key(seed)
	if err != nil {
		t.Fatalf("NewEd25519Key: %v", err)
	}
	if len(key.PublicKey()) != VKeySize {
		t.Errorf("public key length = %d, want %d", len(key.PublicKey()), VKeySize)
	}

	// Same seed, same key.
	again, err := NewEd25519Key(seed)
	if err != nil {
		t.Fatalf("NewEd25519Key: %v", err)
	}
	if !bytes.Equal(key.PublicKey(), again.PublicKey()) {
		t.Error("key derivation from seed is not deterministic")
	}

	if _, err := NewEd25519Key(seed[:16]); err == nil {
		t.Error("expected error for short seed")
	}
}

func TestSignAndVerify(t *testing.T) {
	key, err := GenerateEd25519Key()
	if err != nil {
		t.Fatalf("GenerateEd25519Key: %v", err)
	}
	message := []byte("body hash stand-in")

	sig, err := key.Sign(message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != SignatureSize {
		t.Fatalf("signature length = %d, want %d", len(sig), SignatureSize)
	}
	if !Verify(key.PublicKey(), message, sig) {
		t.Error("valid signature did not verify")
	}

	tampered := append([]byte{}, message...)
	tampered[0] ^= 0xff
	if Verify(key.PublicKey(), tampered, sig) {
		t.Error("signature verified against tampered message")
	}

	other, _ := GenerateEd25519Key()
	if Verify(other.PublicKey(), message, sig) {
		t.Error("signature verified against wrong key")
	}
}

func TestVerifyMalformedInput(t *testing.T) {
	key, _ := GenerateEd25519Key()
	sig, _ := key.Sign([]byte("msg"))

	if Verify(key.PublicKey()[:16], []byte("msg"), sig) {
		t.Error("verified with short key")
	}
	if Verify(key.PublicKey(), []byte("msg"), sig[:32]) {
		t.Error("verified with short signature")
	}
	if Verify(nil, nil, nil) {
		t.Error("verified empty input")
	}
}

func TestPublicKeyIsCopy(t *testing.T) {
	key, _ := GenerateEd25519Key()
	pub := key.PublicKey()
	pub[0] ^= 0xff
	if bytes.Equal(pub, key.PublicKey()) {
		t.Error("PublicKey exposes internal state")
	}
}
