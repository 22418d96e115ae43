// Package commands implements the bip85 command tree.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-bip85/config"
	"github.com/Klingon-tech/klingnet-bip85/internal/log"
	"github.com/Klingon-tech/klingnet-bip85/pkg/bip85"
	"github.com/Klingon-tech/klingnet-bip85/pkg/wordlist"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	flags *config.Flags
	cfg   *config.Config
	words *wordlist.Cache
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bip85",
		Short:         "Derive independent secrets from one BIP-32 master key",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	a.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		mnemonicCmd(a),
		wifCmd(a),
		xprvCmd(a),
		hexCmd(a),
		fingerprintCmd(a),
		xpubCmd(a),
		fromMnemonicCmd(a),
		vectorsCmd(a),
		initCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	dirs := cfg.WordlistDirs()
	var srcs []wordlist.Source
	for _, dir := range dirs {
		srcs = append(srcs, wordlist.Dir(dir))
	}
	srcs = append(srcs, wordlist.Builtin())
	a.words = wordlist.NewCache(wordlist.Chain(srcs...), wordlist.WithLogger(log.Wordlist))

	log.CLI.Debug().
		Str("network", string(cfg.Network)).
		Strs("wordlists", dirs).
		Msg("configuration loaded")
	return nil
}

func (a *app) options() []bip85.Option {
	return []bip85.Option{
		bip85.WithWordlists(a.words),
		bip85.WithLogger(log.Derive),
	}
}

// deriver opens a session over the master key from --xprv, xprv.file, a
// terminal prompt or the first line of stdin, in that order.
func (a *app) deriver(cmd *cobra.Command) (*bip85.Deriver, error) {
	xprv, err := a.masterKey(cmd)
	if err != nil {
		return nil, err
	}
	return bip85.New(xprv, a.cfg.HDNetwork(), a.options()...)
}

func (a *app) masterKey(cmd *cobra.Command) (string, error) {
	if a.flags.Xprv != "" {
		return strings.TrimSpace(a.flags.Xprv), nil
	}
	if a.cfg.XprvFile != "" {
		b, err := os.ReadFile(a.cfg.XprvFile)
		if err != nil {
			return "", fmt.Errorf("read master key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Master key (xprv): ")
}

// readSecret prompts without echo on a terminal, otherwise reads one line.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read master key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read master key: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no master key given (use --xprv, --xprv-file or stdin)")
	}
	return line, nil
}
