// Package config handles application configuration.
//
// Configuration is split into two categories:
//   - Protocol parameters: fee policy, deposits, size limits; fixed per
//     network and must match the chain or transactions get rejected
//   - Wallet settings: runtime configuration, can vary per installation
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Config holds wallet runtime configuration.
type Config struct {
	// Core
	Network NetworkType `yaml:"network"`
	DataDir string      `yaml:"datadir"`

	// Protocol parameters for the selected network.
	Protocol Params `yaml:"protocol"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.cardano-wallet
//	macOS:   ~/Library/Application Support/CardanoWallet
//	Windows: %APPDATA%\CardanoWallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardano-wallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "CardanoWallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "CardanoWallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "CardanoWallet")
	default:
		return filepath.Join(home, ".cardano-wallet")
	}
}

// NetworkDataDir returns the network-specific data directory.
func (c *Config) NetworkDataDir() string {
	return filepath.Join(c.DataDir, string(c.Network))
}

// KeystoreDir returns the keystore directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.NetworkDataDir(), "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "wallet.yaml")
}
