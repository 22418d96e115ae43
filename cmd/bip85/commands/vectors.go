package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/klingnet-bip85/internal/log"
	"github.com/Klingon-tech/klingnet-bip85/internal/vectors"
)

func vectorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vectors",
		Short: "Run the published test vectors and report pass/fail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Running BIP85 test vectors\n\n")

			res, err := vectors.Run(out, a.options()...)
			if err != nil {
				return err
			}
			log.CLI.Info().Int("passed", res.Passed).Int("failed", res.Failed).Msg("vectors finished")
			fmt.Fprintf(out, "%d passed, %d failed\n", res.Passed, res.Failed)
			return nil
		},
	}
}
