package action

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
)

const (
	currentIDFlag string = "current-id"
	newIDFlag     string = "new-id"
)

func newEvolve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolves an owned moonster",
		Run: func(cmd *cobra.Command, _ []string) {
			common := parseCommonFlags(cmd)

			currentID, err := cmd.Flags().GetInt64(currentIDFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			newID, err := cmd.Flags().GetInt64(newIDFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			runFlow(cmd.Context(), common.yes, func(ctx context.Context, s *api.Server) *action.Result {
				return s.Orchestrator.Evolve(ctx, action.EvolveRequest{
					CurrentID: currentID,
					NewID:     newID,
					Name:      common.name,
					Token:     common.token,
				})
			})
		},
	}

	cmd.Flags().Int64(currentIDFlag, 0, "Id of the owned moonster.")
	cmd.Flags().Int64(newIDFlag, 0, "Id of the evolution.")
	addCommonFlags(cmd)

	for _, flag := range []string{currentIDFlag, newIDFlag} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Fatal().Err(err).Msg("Failed to mark flag required")
		}
	}

	return cmd
}
