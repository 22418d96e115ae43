package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "network":
		n, err := ParseNetworkType(value)
		if err != nil {
			return err
		}
		cfg.Network = n
	case "datadir":
		cfg.DataDir = value

	case "xprv.file":
		cfg.XprvFile = value
	case "wordlists.dir":
		cfg.WordlistDir = value

	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	case "xprv":
		// Keys belong in xprv.file (or a prompt), never inline in a config file.
		return fmt.Errorf("inline master keys are not accepted; use xprv.file")

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
func WriteDefaultConfig(path string, network NetworkType) error {
	content := `# bip85 configuration
#
# These settings select the network and where inputs are read from.
# They never change what a given master key derives.

# Network: mainnet or testnet
network = ` + string(network) + `

# Data directory (default: ~/.bip85)
# datadir = ~/.bip85

# File holding the serialized master key (xprv/tprv), one line.
# Without it the key is read from a terminal prompt or stdin.
# xprv.file = ~/.bip85/master.xprv

# Directory of extra wordlists named <language>.txt, one word per line.
# Lists found here take precedence over the built-in ones; the portuguese
# list is only available this way.
# wordlists.dir = ~/.bip85/wordlists

log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
