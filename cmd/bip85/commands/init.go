package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-bip85/config"
)

func initCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.cfg.DataDir, 0o700); err != nil {
				return err
			}
			path := a.cfg.ConfigFile()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.WriteDefaultConfig(path, a.cfg.Network); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
