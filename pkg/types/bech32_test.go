package types

import (
	"bytes"
	"strings"
	"testing"
)

func TestBech32RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hrp  string
		data []byte
	}{
		{"empty payload", "addr", nil},
		{"short", "addr_test", []byte{0x01, 0x02, 0x03}},
		{"base address size", "addr", bytes.Repeat([]byte{0xab}, BaseAddressSize)},
		{"reward account size", "stake", bytes.Repeat([]byte{0xcd}, RewardAccountSize)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Bech32Encode(tt.hrp, tt.data)
			if err != nil {
				t.Fatalf("Bech32Encode: %v", err)
			}
			hrp, data, err := Bech32Decode(encoded)
			if err != nil {
				t.Fatalf("Bech32Decode: %v", err)
			}
			if hrp != tt.hrp {
				t.Errorf("hrp = %q, want %q", hrp, tt.hrp)
			}
			if !bytes.Equal(data, tt.data) {
				t.Errorf("data = %x, want %x", data, tt.data)
			}
		})
	}
}

func TestBech32NoLengthCap(t *testing.T) {
	// Shelley base addresses encode past the BIP-173 90-character cap.
	encoded, err := Bech32Encode("addr", bytes.Repeat([]byte{0x55}, BaseAddressSize))
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}
	if len(encoded) <= 90 {
		t.Fatalf("expected encoding longer than 90 chars, got %d", len(encoded))
	}
	if _, _, err := Bech32Decode(encoded); err != nil {
		t.Errorf("Bech32Decode rejected long address: %v", err)
	}
}

func TestBech32DecodeRejections(t *testing.T) {
	valid, err := Bech32Encode("addr", []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("Bech32Encode: %v", err)
	}

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no separator", "qqqqqq"},
		{"mixed case", "Addr" + valid[4:]},
		{"bad character", strings.Replace(valid, "1", "1b", 1)},
		{"corrupted checksum", valid[:len(valid)-1] + flipBech32Char(valid[len(valid)-1])},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Bech32Decode(tt.in); err == nil {
				t.Errorf("Bech32Decode(%q) succeeded, want error", tt.in)
			}
		})
	}
}

func TestBech32RejectsForeignPrefix(t *testing.T) {
	if _, err := Bech32Encode("foo", []byte{0x01}); err == nil {
		t.Error("Bech32Encode accepted a prefix outside the wallet set")
	}
	// A well-formed encoding from another chain must fail at the codec,
	// before any address parsing sees it.
	const btc = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	if _, _, err := Bech32Decode(btc); err == nil {
		t.Error("Bech32Decode accepted a non-wallet prefix")
	}
}

// flipBech32Char returns a different valid bech32 character.
func flipBech32Char(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}
