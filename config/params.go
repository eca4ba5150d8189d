package config

import (
	"github.com/shinchan121/cardano-wallet/pkg/tx"
	"github.com/shinchan121/cardano-wallet/pkg/types"
)

// Params holds the protocol parameters a wallet needs to construct
// valid transactions. They mirror the chain's on-chain parameters;
// values that disagree with the chain produce transactions the ledger
// rejects, so overrides exist for test networks, not for tuning.
type Params struct {
	// NetworkID is the address discriminant (0 testnet, 1 mainnet).
	NetworkID uint8 `yaml:"network_id"`

	// MinFeeA is the per-byte fee coefficient in lovelace.
	MinFeeA float64 `yaml:"min_fee_a"`

	// MinFeeB is the constant fee term in lovelace.
	MinFeeB float64 `yaml:"min_fee_b"`

	// KeyDeposit is the refundable stake key registration deposit.
	KeyDeposit uint64 `yaml:"key_deposit"`

	// MaxTxSize is the largest accepted transaction in bytes.
	MaxTxSize int `yaml:"max_tx_size"`

	// TTLWindow is how many slots past the tip transactions stay valid.
	TTLWindow uint64 `yaml:"ttl_window"`

	// EpochLength is the epoch duration in slots.
	EpochLength uint64 `yaml:"epoch_length"`
}

// Fee and deposit defaults as of the Shelley hard fork.
const (
	DefaultMinFeeA     = 44
	DefaultMinFeeB     = 155381
	DefaultKeyDeposit  = 2_000_000
	DefaultMaxTxSize   = 16384
	DefaultTTLWindow   = 7200
	DefaultEpochLength = 432000
)

// MainnetParams returns the mainnet protocol parameters.
func MainnetParams() Params {
	return Params{
		NetworkID:   uint8(types.MainnetID),
		MinFeeA:     DefaultMinFeeA,
		MinFeeB:     DefaultMinFeeB,
		KeyDeposit:  DefaultKeyDeposit,
		MaxTxSize:   DefaultMaxTxSize,
		TTLWindow:   DefaultTTLWindow,
		EpochLength: DefaultEpochLength,
	}
}

// TestnetParams returns the testnet protocol parameters.
func TestnetParams() Params {
	p := MainnetParams()
	p.NetworkID = uint8(types.TestnetID)
	return p
}

// NetworkParams returns the protocol parameters for the given network.
func NetworkParams(network NetworkType) Params {
	if network == Testnet {
		return TestnetParams()
	}
	return MainnetParams()
}

// FeePolicy converts the parameters to the transaction layer's fee
// policy. Note the ledger convention: A scales size, B is constant.
func (p Params) FeePolicy() tx.FeePolicy {
	return tx.FeePolicy{
		A:          p.MinFeeB,
		B:          p.MinFeeA,
		KeyDeposit: types.Coin(p.KeyDeposit),
	}
}

// Network returns the address network discriminant.
func (p Params) Network() types.NetworkID {
	return types.NetworkID(p.NetworkID)
}
