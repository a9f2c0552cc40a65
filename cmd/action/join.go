package action

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
)

const (
	roundFlag    string = "round"
	moonsterFlag string = "moonster"
)

func newJoin() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Joins a battle round with an owned moonster",
		Long: `Joins a battle round. The fee token is required here,
there is no default for battles.`,
		Run: func(cmd *cobra.Command, _ []string) {
			common := parseCommonFlags(cmd)

			roundID, err := cmd.Flags().GetInt64(roundFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			moonsterID, err := cmd.Flags().GetInt64(moonsterFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			runFlow(cmd.Context(), common.yes, func(ctx context.Context, s *api.Server) *action.Result {
				return s.Orchestrator.JoinBattle(ctx, action.JoinRequest{
					RoundID:    roundID,
					MoonsterID: moonsterID,
					Name:       common.name,
					Token:      common.token,
				})
			})
		},
	}

	cmd.Flags().Int64(roundFlag, 0, "Battle round id.")
	cmd.Flags().Int64(moonsterFlag, 0, "Id of the moonster to fight with.")
	addCommonFlags(cmd)

	for _, flag := range []string{roundFlag, moonsterFlag, tokenFlag} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Fatal().Err(err).Msg("Failed to mark flag required")
		}
	}

	return cmd
}
