package action

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
)

const (
	idFlag     string = "id"
	chanceFlag string = "chance"
)

func newCapture() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Captures a moonster",
		Long: `Runs the capture flow from the configured player wallet:
fee check, token approval if needed and the capture transaction.`,
		Run: func(cmd *cobra.Command, _ []string) {
			common := parseCommonFlags(cmd)

			id, err := cmd.Flags().GetInt64(idFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			chance, err := cmd.Flags().GetInt64(chanceFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			runFlow(cmd.Context(), common.yes, func(ctx context.Context, s *api.Server) *action.Result {
				return s.Orchestrator.Capture(ctx, action.CaptureRequest{
					ID:     id,
					Chance: chance,
					Name:   common.name,
					Token:  common.token,
				})
			})
		},
	}

	cmd.Flags().Int64(idFlag, 0, "Moonster id.")
	cmd.Flags().Int64(chanceFlag, 0, "Capture chance shown to the player, must match the chain.")
	addCommonFlags(cmd)

	for _, flag := range []string{idFlag, chanceFlag} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Fatal().Err(err).Msg("Failed to mark flag required")
		}
	}

	return cmd
}
