// bip85 derives mnemonics, WIF keys, extended keys and hex entropy from a
// single BIP-32 master key.
package main

import (
	"os"

	"github.com/Klingon-tech/klingnet-bip85/cmd/bip85/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
