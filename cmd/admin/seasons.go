package admin

import (
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
)

func newDistributeRewards() *cobra.Command {
	cmd := newCommand("distribute-rewards", "Distributes the rewards of a season")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		runAdmin(cmd, action.DistributeSeasonRewardsCall(mustInt64(cmd, seasonFlag)))
	}

	cmd.Flags().Int64(seasonFlag, 0, "Season id.")
	required(cmd, seasonFlag)

	return cmd
}

func newEndSeason() *cobra.Command {
	cmd := newCommand("end-season", "Ends a season")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		runAdmin(cmd, action.EndSeasonCall(mustInt64(cmd, seasonFlag)))
	}

	cmd.Flags().Int64(seasonFlag, 0, "Season id.")
	required(cmd, seasonFlag)

	return cmd
}
