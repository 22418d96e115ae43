package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds command-line flags shared by every subcommand.
type Flags struct {
	Network  string
	Testnet  bool
	DataDir  string
	Config   string
	Xprv     string
	XprvFile string

	WordlistDir string

	LogLevel string
	LogFile  string
	LogJSON  bool

	fs *pflag.FlagSet
}

// RegisterFlags binds the shared flags onto fs (typically a cobra
// command's persistent flag set).
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.Network, "network", "", "Network type (mainnet or testnet)")
	fs.BoolVar(&f.Testnet, "testnet", false, "Use testnet (shorthand for --network=testnet)")
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVarP(&f.Config, "config", "c", "", "Config file path (default: <datadir>/bip85.conf)")
	fs.StringVar(&f.Xprv, "xprv", "", "Master extended private key (prefer --xprv-file or the prompt)")
	fs.StringVar(&f.XprvFile, "xprv-file", "", "File holding the master extended private key")

	fs.StringVar(&f.WordlistDir, "wordlists", "", "Directory of extra <language>.txt wordlists")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// ApplyFlags applies explicitly set command-line flags to cfg.
func ApplyFlags(cfg *Config, f *Flags) error {
	if f.changed("network") {
		n, err := ParseNetworkType(f.Network)
		if err != nil {
			return err
		}
		cfg.Network = n
	}
	if f.Testnet {
		cfg.Network = Testnet
	}
	if f.changed("datadir") {
		cfg.DataDir = f.DataDir
	}
	if f.changed("xprv-file") {
		cfg.XprvFile = f.XprvFile
	}
	if f.changed("wordlists") {
		cfg.WordlistDir = f.WordlistDir
	}

	if f.changed("log-level") {
		cfg.Log.Level = strings.ToLower(f.LogLevel)
	}
	if f.changed("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.changed("log-json") {
		cfg.Log.JSON = f.LogJSON
	}
	return nil
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file
// 3. Command-line flags
func Load(f *Flags) (*Config, error) {
	network := Mainnet
	if f.changed("network") {
		n, err := ParseNetworkType(f.Network)
		if err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		network = n
	}
	if f.Testnet {
		network = Testnet
	}
	cfg := Default(network)

	if f.changed("datadir") {
		cfg.DataDir = f.DataDir
	}

	configPath := f.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	if err := ApplyFlags(cfg, f); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
