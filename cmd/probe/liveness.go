package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/common"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/router"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Probes the database, redis and the chain RPC.
Exits 1 as soon as one probe fails.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			runProbe(cmd.Context(), func(ctx context.Context, s *api.Server) error {
				str, errs := common.ProbeLiveness(ctx, s)
				if verbose {
					fmt.Print(str) //nolint:forbidigo
				}

				if len(errs) > 0 {
					return errs[0]
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runProbe(ctx context.Context, probe func(ctx context.Context, s *api.Server) error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	err = command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		if err := router.Init(s); err != nil {
			return err
		}

		probeCtx, cancel := context.WithTimeout(ctx, cfg.Management.LivenessTimeout)
		defer cancel()

		return probe(probeCtx, s)
	})
	if err != nil {
		log.Error().Err(err).Msg("Probe failed")
		os.Exit(1)
	}
}
