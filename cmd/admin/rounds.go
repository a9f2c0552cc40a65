package admin

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
)

const (
	startFlag      string = "start"
	endFlag        string = "end"
	maxPlayersFlag string = "max-players"
	winnerFlag     string = "winner"
)

func newCreateRound() *cobra.Command {
	cmd := newCommand("create-round", "Opens a battle round in a season")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		start := mustInt64(cmd, startFlag)
		end := mustInt64(cmd, endFlag)
		if end <= start {
			log.Fatal().Int64("start", start).Int64("end", end).Msg("End must be after start")
		}

		runAdmin(cmd, action.CreateRoundMatchCall(mustInt64(cmd, seasonFlag), start, end, mustInt64(cmd, maxPlayersFlag)))
	}

	cmd.Flags().Int64(seasonFlag, 0, "Season id.")
	cmd.Flags().Int64(startFlag, 0, "Start time in unix seconds.")
	cmd.Flags().Int64(endFlag, 0, "End time in unix seconds.")
	cmd.Flags().Int64(maxPlayersFlag, 0, "Maximum number of players.")
	required(cmd, seasonFlag, startFlag, endFlag, maxPlayersFlag)

	return cmd
}

func newTriggerPairing() *cobra.Command {
	cmd := newCommand("trigger-pairing", "Pairs the players of a round")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		runAdmin(cmd, action.TriggerPairingCall(mustInt64(cmd, roundFlag)))
	}

	cmd.Flags().Int64(roundFlag, 0, "Round id.")
	required(cmd, roundFlag)

	return cmd
}

func newUpdateResult() *cobra.Command {
	cmd := newCommand("update-result", "Records the winner of a pair match")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		winner, err := cmd.Flags().GetString(winnerFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse args")
		}

		if !common.IsHexAddress(winner) {
			log.Fatal().Str("winner", winner).Msg("Invalid winner address")
		}

		runAdmin(cmd, action.UpdateResultPairMatchCall(mustInt64(cmd, roundFlag), mustInt64(cmd, matchFlag), common.HexToAddress(winner)))
	}

	cmd.Flags().Int64(roundFlag, 0, "Round id.")
	cmd.Flags().Int64(matchFlag, 0, "Index of the pair match in the round.")
	cmd.Flags().String(winnerFlag, "", "Address of the winning player.")
	required(cmd, roundFlag, matchFlag, winnerFlag)

	return cmd
}

func newSendReward() *cobra.Command {
	cmd := newCommand("send-reward", "Pays out the reward of a pair match")
	cmd.Run = func(cmd *cobra.Command, _ []string) {
		runAdmin(cmd, action.SendRewardMatchCall(mustInt64(cmd, roundFlag), mustInt64(cmd, matchFlag)))
	}

	cmd.Flags().Int64(roundFlag, 0, "Round id.")
	cmd.Flags().Int64(matchFlag, 0, "Index of the pair match in the round.")
	required(cmd, roundFlag, matchFlag)

	return cmd
}
