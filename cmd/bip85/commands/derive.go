package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-bip85/pkg/bip85"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

// runApp derives one application output and prints it on its own line.
func runApp(a *app, cmd *cobra.Command, req bip85.Application) error {
	// Validate before asking for the master key.
	if _, err := req.Path(); err != nil {
		return err
	}
	d, err := a.deriver(cmd)
	if err != nil {
		return err
	}
	out, err := d.Derive(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func mnemonicCmd(a *app) *cobra.Command {
	var (
		words int
		index uint32
		lang  string
	)
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Derive a BIP-39 mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := wordlist.ParseLanguage(lang)
			if err != nil {
				return err
			}
			return runApp(a, cmd, bip85.MnemonicRequest{Words: words, Index: index, Language: l})
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", 12, "Word count: 12, 15, 18, 21 or 24")
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Child index")
	cmd.Flags().StringVarP(&lang, "language", "l", "english", "Wordlist language")
	return cmd
}

func wifCmd(a *app) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "wif",
		Short: "Derive a WIF private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(a, cmd, bip85.WIFRequest{Index: index})
		},
	}
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Child index")
	return cmd
}

func xprvCmd(a *app) *cobra.Command {
	var index uint32
	cmd := &cobra.Command{
		Use:   "xprv",
		Short: "Derive an extended private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(a, cmd, bip85.XPRVRequest{Index: index})
		},
	}
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Child index")
	return cmd
}

func hexCmd(a *app) *cobra.Command {
	var (
		numBytes int
		index    uint32
	)
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Derive raw entropy as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(a, cmd, bip85.HexRequest{NumBytes: numBytes, Index: index})
		},
	}
	cmd.Flags().IntVarP(&numBytes, "bytes", "b", 64, "Number of bytes, 16 to 64")
	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Child index")
	return cmd
}
