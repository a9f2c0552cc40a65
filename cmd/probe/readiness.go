package probe

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/common"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `Checks that every component initializes and the database answers.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			runProbe(cmd.Context(), func(ctx context.Context, s *api.Server) error {
				if err := common.ProbeReadiness(ctx, s); err != nil {
					return err
				}

				if verbose {
					fmt.Println("Ready.") //nolint:forbidigo
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}
