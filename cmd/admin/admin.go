package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
)

const (
	seasonFlag string = "season"
	roundFlag  string = "round"
	matchFlag  string = "match"
	yesFlag    string = "yes"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("admin",
		newCreateRound(),
		newTriggerPairing(),
		newUpdateResult(),
		newSendReward(),
		newDistributeRewards(),
		newEndSeason(),
	)
}

func newCommand(use string, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.Flags().BoolP(yesFlag, "y", false, "Send the transaction without asking.")

	return cmd
}

func mustInt64(cmd *cobra.Command, flag string) int64 {
	v, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		log.Fatal().Err(err).Str("flag", flag).Msg("Failed to parse args")
	}

	return v
}

func required(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			log.Fatal().Err(err).Msg("Failed to mark flag required")
		}
	}
}

// runAdmin sends req from the player wallet once the owner check passed.
func runAdmin(cmd *cobra.Command, req action.SubmitRequest) {
	yes, err := cmd.Flags().GetBool(yesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := command.UnlockWallet(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to unlock wallet")
	}

	var res *action.Result
	err = command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		s.Wallet.WithApprover(command.ConfirmApprover(yes))

		var err error
		res, err = s.Admin.Run(ctx, req)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Str("method", req.Method).Msg("Failed to run admin operation")
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal result")
	}

	fmt.Println(string(out)) //nolint:forbidigo

	if !res.Succeeded() {
		os.Exit(1)
	}
}
