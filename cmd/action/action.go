package action

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
)

const (
	tokenFlag string = "token"
	nameFlag  string = "name"
	yesFlag   string = "yes"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("action",
		newCapture(),
		newEvolve(),
		newJoin(),
	)
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String(tokenFlag, "", "ERC-20 fee token, defaults to the configured default token.")
	cmd.Flags().String(nameFlag, "", "Display name used in messages.")
	cmd.Flags().BoolP(yesFlag, "y", false, "Send transactions without asking.")
}

type commonArgs struct {
	token common.Address
	name  string
	yes   bool
}

func parseCommonFlags(cmd *cobra.Command) commonArgs {
	token, err := cmd.Flags().GetString(tokenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	if len(token) > 0 && !common.IsHexAddress(token) {
		log.Fatal().Str("token", token).Msg("Invalid token address")
	}

	name, err := cmd.Flags().GetString(nameFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	yes, err := cmd.Flags().GetBool(yesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	args := commonArgs{name: name, yes: yes}
	if len(token) > 0 {
		args.token = common.HexToAddress(token)
	}

	return args
}

// runFlow unlocks the wallet, runs flow and prints its result. Exits 1 unless the flow succeeded.
func runFlow(ctx context.Context, yes bool, flow func(ctx context.Context, s *api.Server) *action.Result) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := command.UnlockWallet(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to unlock wallet")
	}

	var res *action.Result
	err = command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		s.Wallet.WithApprover(command.ConfirmApprover(yes))
		res = flow(ctx, s)
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run flow")
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
