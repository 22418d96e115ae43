package hdkey

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the version bytes used when parsing and serializing keys.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

// ParseNetwork accepts "mainnet", "main", "testnet" or "test".
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "test":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q (want mainnet or testnet)", s)
	}
}

// Params returns the chain parameters backing this network.
func (n Network) Params() *chaincfg.Params {
	if n == Testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

func (n Network) privateVersion() []byte {
	id := n.Params().HDPrivateKeyID
	return id[:]
}

func (n Network) publicVersion() []byte {
	id := n.Params().HDPublicKeyID
	return id[:]
}
