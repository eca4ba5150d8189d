package types

import (
	"fmt"
	"strings"
)

// bech32Alphabet is the BIP-173 data character set. Cardano drops the
// 90-character cap — Shelley base addresses encode to well over 100
// characters — so no length limit is applied on either side.
const bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// walletHRPs is the closed set of prefixes this codec handles. Both
// encode and decode reject anything else, so a syntactically valid
// bech32 string from another chain never reaches address parsing.
var walletHRPs = map[string]bool{
	MainnetAddrHRP:  true,
	TestnetAddrHRP:  true,
	MainnetStakeHRP: true,
	TestnetStakeHRP: true,
}

// Bech32Encode encodes payload bytes under one of the wallet's
// address prefixes.
func Bech32Encode(hrp string, payload []byte) (string, error) {
	if !walletHRPs[hrp] {
		return "", fmt.Errorf("bech32: unknown prefix %q", hrp)
	}

	groups, err := regroupBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(groups) + 6)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, g := range groups {
		sb.WriteByte(bech32Alphabet[g])
	}
	for _, g := range bech32Checksum(hrp, groups) {
		sb.WriteByte(bech32Alphabet[g])
	}
	return sb.String(), nil
}

// Bech32Decode decodes a bech32 string, returning the prefix and
// payload bytes. Only the wallet's address prefixes are accepted.
func Bech32Decode(s string) (string, []byte, error) {
	if len(s) == 0 {
		return "", nil, fmt.Errorf("bech32: empty string")
	}
	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		return "", nil, fmt.Errorf("bech32: mixed case")
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, '1')
	if sep < 1 {
		return "", nil, fmt.Errorf("bech32: missing separator")
	}
	if len(s)-sep-1 < 6 {
		return "", nil, fmt.Errorf("bech32: too short")
	}

	hrp := s[:sep]
	if !walletHRPs[hrp] {
		return "", nil, fmt.Errorf("bech32: unknown prefix %q", hrp)
	}

	groups := make([]byte, len(s)-sep-1)
	for i := 0; i < len(groups); i++ {
		v := strings.IndexByte(bech32Alphabet, s[sep+1+i])
		if v < 0 {
			return "", nil, fmt.Errorf("bech32: invalid character %q", s[sep+1+i])
		}
		groups[i] = byte(v)
	}

	if bech32Polymod(hrp, groups) != 1 {
		return "", nil, fmt.Errorf("bech32: invalid checksum")
	}

	payload, err := regroupBits(groups[:len(groups)-6], 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("bech32: %w", err)
	}
	return hrp, payload, nil
}

// bech32Polymod runs the BCH checksum polynomial over the expanded
// prefix followed by the 5-bit groups.
func bech32Polymod(hrp string, groups []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	step := func(v byte) {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	for i := 0; i < len(hrp); i++ {
		step(hrp[i] >> 5)
	}
	step(0)
	for i := 0; i < len(hrp); i++ {
		step(hrp[i] & 31)
	}
	for _, g := range groups {
		step(g)
	}
	return chk
}

// bech32Checksum derives the six trailing checksum groups.
func bech32Checksum(hrp string, groups []byte) []byte {
	padded := make([]byte, len(groups)+6)
	copy(padded, groups)
	mod := bech32Polymod(hrp, padded) ^ 1
	chk := make([]byte, 6)
	for i := range chk {
		chk[i] = byte(mod >> uint(5*(5-i)) & 31)
	}
	return chk
}

// regroupBits repacks a byte slice between group widths. Encoding
// (8→5) pads the final group with zeros; decoding (5→8) rejects
// leftover or non-zero padding bits.
func regroupBits(data []byte, src, dst uint, pad bool) ([]byte, error) {
	var (
		acc  uint32
		bits uint
	)
	mask := uint32(1)<<dst - 1
	out := make([]byte, 0, (len(data)*int(src)+int(dst)-1)/int(dst))

	for _, b := range data {
		if uint32(b)>>src != 0 {
			return nil, fmt.Errorf("group value %d exceeds %d bits", b, src)
		}
		acc = acc<<src | uint32(b)
		bits += src
		for bits >= dst {
			bits -= dst
			out = append(out, byte(acc>>bits&mask))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(dst-bits)&mask))
		}
	} else if bits >= src || acc<<(dst-bits)&mask != 0 {
		return nil, fmt.Errorf("non-zero padding")
	}
	return out, nil
}
