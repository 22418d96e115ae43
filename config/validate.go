package config

import (
	"fmt"
	"os"

	"github.com/Klingon-tech/klingnet-bip85/internal/log"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Network != Mainnet && cfg.Network != Testnet {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	if cfg.WordlistDir != "" {
		info, err := os.Stat(cfg.WordlistDir)
		if err != nil {
			return fmt.Errorf("wordlists.dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("wordlists.dir %q is not a directory", cfg.WordlistDir)
		}
	}
	return nil
}
