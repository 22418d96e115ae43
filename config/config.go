// Package config handles runtime configuration for the bip85 tool.
//
// Values are layered: built-in defaults, then the .conf file in the data
// directory, then command-line flags. Nothing here affects what a given
// master key derives; it only selects the network, where the master key
// and extra wordlists are read from, and how logging behaves.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Config holds runtime configuration.
type Config struct {
	// Core
	Network NetworkType `conf:"network"`
	DataDir string      `conf:"datadir"`

	// Master key source
	XprvFile string `conf:"xprv.file"`

	// Wordlists
	WordlistDir string `conf:"wordlists.dir"`

	// Logging
	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ParseNetworkType accepts every spelling hdkey.ParseNetwork does and
// returns the canonical name.
func ParseNetworkType(s string) (NetworkType, error) {
	n, err := hdkey.ParseNetwork(s)
	if err != nil {
		return "", err
	}
	return NetworkType(n.String()), nil
}

// HDNetwork maps the configured network to the key-encoding selector.
func (c *Config) HDNetwork() hdkey.Network {
	if c.Network == Testnet {
		return hdkey.Testnet
	}
	return hdkey.Mainnet
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.bip85
//	macOS:   ~/Library/Application Support/Bip85
//	Windows: %APPDATA%\Bip85
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bip85"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Bip85")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Bip85")
		}
		return filepath.Join(home, "AppData", "Roaming", "Bip85")
	default:
		return filepath.Join(home, ".bip85")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "bip85.conf")
}

// DefaultWordlistDir returns the directory probed for extra wordlists.
func (c *Config) DefaultWordlistDir() string {
	return filepath.Join(c.DataDir, "wordlists")
}

// WordlistDirs returns the directories searched for <language>.txt files,
// highest priority first: wordlists.dir, then DefaultWordlistDir if it
// exists.
func (c *Config) WordlistDirs() []string {
	var dirs []string
	if c.WordlistDir != "" {
		dirs = append(dirs, c.WordlistDir)
	}
	def := c.DefaultWordlistDir()
	if def != c.WordlistDir {
		if info, err := os.Stat(def); err == nil && info.IsDir() {
			dirs = append(dirs, def)
		}
	}
	return dirs
}
