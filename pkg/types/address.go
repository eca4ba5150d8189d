package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// NetworkID is the Shelley address network discriminant, carried in the
// low nibble of the address header byte.
type NetworkID uint8

const (
	// TestnetID is the testnet network discriminant.
	TestnetID NetworkID = 0
	// MainnetID is the mainnet network discriminant.
	MainnetID NetworkID = 1
)

// Address header type nibbles (high 4 bits of the first byte).
const (
	headerBase   = 0x00 // payment keyhash + stake keyhash
	headerReward = 0xe0 // stake keyhash only
)

// Address sizes in bytes.
const (
	// BaseAddressSize is 1 header byte + payment key hash + stake key hash.
	BaseAddressSize = 1 + KeyHashSize + KeyHashSize
	// RewardAccountSize is 1 header byte + stake key hash.
	RewardAccountSize = 1 + KeyHashSize
)

// Bech32 human-readable parts for addresses.
const (
	MainnetAddrHRP  = "addr"
	TestnetAddrHRP  = "addr_test"
	MainnetStakeHRP = "stake"
	TestnetStakeHRP = "stake_test"
)

// Address is an opaque payment address. Equality is byte-exact.
type Address []byte

// RewardAccount identifies the stake reward account of a wallet. It is
// fixed-size so it can key a withdrawal map.
type RewardAccount [RewardAccountSize]byte

// NewBaseAddress builds a Shelley base address from a payment key hash
// and a stake key hash.
func NewBaseAddress(network NetworkID, payment, stake KeyHash) Address {
	addr := make(Address, 0, BaseAddressSize)
	addr = append(addr, headerBase|byte(network))
	addr = append(addr, payment[:]...)
	addr = append(addr, stake[:]...)
	return addr
}

// NewRewardAccount builds a reward (stake) account from a stake key hash.
func NewRewardAccount(network NetworkID, stake KeyHash) RewardAccount {
	var acct RewardAccount
	acct[0] = headerReward | byte(network)
	copy(acct[1:], stake[:])
	return acct
}

// Network returns the network discriminant encoded in the address header.
func (a Address) Network() NetworkID {
	if len(a) == 0 {
		return TestnetID
	}
	return NetworkID(a[0] & 0x0f)
}

// Equal reports whether two addresses are byte-identical.
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a, other)
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, len(a))
	copy(b, a)
	return b
}

// String returns the bech32-encoded address (e.g. "addr1..." or
// "addr_test1...").
func (a Address) String() string {
	hrp := MainnetAddrHRP
	if a.Network() == TestnetID {
		hrp = TestnetAddrHRP
	}
	s, err := Bech32Encode(hrp, a)
	if err != nil {
		// Fallback to hex if encoding fails (should never happen).
		return hex.EncodeToString(a)
	}
	return s
}

// MarshalJSON encodes the address as a bech32 string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a bech32 string into an address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress parses a bech32 payment address string.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return nil, fmt.Errorf("empty address")
	}
	hrp, data, err := Bech32Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	switch hrp {
	case MainnetAddrHRP, TestnetAddrHRP:
	default:
		return nil, fmt.Errorf("invalid address prefix %q", hrp)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty address payload")
	}
	return Address(data), nil
}

// String returns the bech32-encoded reward account ("stake1..." or
// "stake_test1...").
func (r RewardAccount) String() string {
	hrp := MainnetStakeHRP
	if NetworkID(r[0]&0x0f) == TestnetID {
		hrp = TestnetStakeHRP
	}
	s, err := Bech32Encode(hrp, r[:])
	if err != nil {
		return hex.EncodeToString(r[:])
	}
	return s
}

// Bytes returns a copy of the raw reward account bytes.
func (r RewardAccount) Bytes() []byte {
	b := make([]byte, RewardAccountSize)
	copy(b, r[:])
	return b
}

// MarshalCBOR encodes the reward account as a CBOR byte string.
func (r RewardAccount) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r[:])
}

// UnmarshalCBOR decodes a CBOR byte string into a reward account.
func (r *RewardAccount) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != RewardAccountSize {
		return fmt.Errorf("reward account must be %d bytes, got %d", RewardAccountSize, len(b))
	}
	copy(r[:], b)
	return nil
}
