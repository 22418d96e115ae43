package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-bip85/pkg/bip85"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

func fingerprintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the master key fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deriver(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bip85.Fingerprint(d.Master()))
			return nil
		},
	}
}

func xpubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "xpub",
		Short: "Print the master public extended key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deriver(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bip85.XPub(d.Master(), d.Network()))
			return nil
		},
	}
}

func fromMnemonicCmd(a *app) *cobra.Command {
	var (
		passphrase string
		lang       string
	)
	cmd := &cobra.Command{
		Use:   "from-mnemonic [words...]",
		Short: "Print the master xprv for a BIP-39 mnemonic",
		Long:  "Print the master extended private key for a BIP-39 mnemonic.\nWith no arguments the phrase is read from a prompt or stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := wordlist.ParseLanguage(lang)
			if err != nil {
				return err
			}
			phrase := strings.Join(args, " ")
			if phrase == "" {
				phrase, err = readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Mnemonic: ")
				if err != nil {
					return err
				}
			}
			master, err := bip85.MasterFromMnemonic(phrase, passphrase, l, a.words, a.cfg.HDNetwork())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), master.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP-39 passphrase")
	cmd.Flags().StringVarP(&lang, "language", "l", "english", "Wordlist language of the phrase")
	return cmd
}
