package config

import "fmt"

// Validate checks wallet config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}

	p := cfg.Protocol
	if p.NetworkID > 0x0f {
		return fmt.Errorf("protocol.network_id must fit the address header nibble")
	}
	if p.MinFeeA < 0 || p.MinFeeB < 0 {
		return fmt.Errorf("fee coefficients must not be negative")
	}
	if p.MinFeeA == 0 && p.MinFeeB == 0 {
		return fmt.Errorf("fee policy must not be zero")
	}
	if p.MaxTxSize <= 0 {
		return fmt.Errorf("protocol.max_tx_size must be positive")
	}
	if p.TTLWindow == 0 {
		return fmt.Errorf("protocol.ttl_window must be positive")
	}
	if p.EpochLength == 0 {
		return fmt.Errorf("protocol.epoch_length must be positive")
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
