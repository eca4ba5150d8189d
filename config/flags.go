package config

import (
	"flag"
	"fmt"
)

// Flags holds parsed global command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	Network string
	DataDir string
	Config  string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool
}

// RegisterFlags registers the global flags on a flag set. Defaults are
// empty so that only flags the operator actually set override the
// config file.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	fs.BoolVar(&f.Help, "help", false, "Show usage")
	fs.BoolVar(&f.Version, "version", false, "Show version")

	fs.StringVar(&f.Network, "network", "", "Network to use (mainnet or testnet)")
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory")
	fs.StringVar(&f.Config, "config", "", "Path to config file")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file (JSON)")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Log JSON to the console")

	return f
}

// Apply overlays explicitly-set flags onto a config.
func (f *Flags) Apply(cfg *Config) error {
	switch f.Network {
	case "":
	case string(Mainnet), string(Testnet):
		cfg.Network = NetworkType(f.Network)
		cfg.Protocol = NetworkParams(cfg.Network)
	default:
		return fmt.Errorf("unknown network %q", f.Network)
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.LogJSON {
		cfg.Log.JSON = true
	}
	return nil
}
