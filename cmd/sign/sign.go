package sign

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
)

const (
	userFlag  string = "user"
	tokenFlag string = "token"
	urlFlag   string = "url"
)

func New() *cobra.Command {
	cmd := command.NewSubcommandGroup("sign",
		newCapture(),
		newEvolve(),
	)

	cmd.PersistentFlags().String(userFlag, "", "Player address.")
	cmd.PersistentFlags().String(tokenFlag, "", "ERC-20 fee token address.")
	cmd.PersistentFlags().String(urlFlag, "", "Base URL of a remote signature service, signs locally when empty.")

	return cmd
}

type target struct {
	user    string
	token   string
	service signature.Service
}

// resolve returns the signer to use: the remote service at --url or the configured key.
func resolve(cmd *cobra.Command) target {
	user, err := cmd.Flags().GetString(userFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	token, err := cmd.Flags().GetString(tokenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	url, err := cmd.Flags().GetString(urlFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse args")
	}

	if len(url) > 0 {
		return target{user: user, token: token, service: signature.NewClient(url, http.DefaultClient)}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	service, err := signature.NewService(cfg.Signature, time2.DefaultClock, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signature service")
	}

	return target{user: user, token: token, service: service}
}

type output struct {
	*signature.SignedAction
	Signer common.Address `json:"signer"`
}

func printSigned(signed *signature.SignedAction, signer common.Address) {
	out, err := json.MarshalIndent(output{SignedAction: signed, Signer: signer}, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal signature")
	}

	fmt.Println(string(out)) //nolint:forbidigo
}

func newCapture() *cobra.Command {
	var chance, id int64

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Signs a capture authorization",
		Run: func(cmd *cobra.Command, _ []string) {
			t := resolve(cmd)
			req := signature.CaptureRequest{User: t.user, Token: t.token, Chance: chance, ID: id}

			signed, err := t.service.SignCapture(cmd.Context(), req)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to sign capture")
			}

			signer, err := signature.VerifyCapture(req, *signed)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to recover signer")
			}

			printSigned(signed, signer)
		},
	}

	cmd.Flags().Int64Var(&chance, "chance", 0, "Capture chance.")
	cmd.Flags().Int64Var(&id, "id", 0, "Moonster id.")

	return cmd
}

func newEvolve() *cobra.Command {
	var currentID, newID int64

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Signs an evolve authorization",
		Run: func(cmd *cobra.Command, _ []string) {
			t := resolve(cmd)
			req := signature.EvolveRequest{User: t.user, Token: t.token, CurrentID: currentID, NewID: newID}

			signed, err := t.service.SignEvolve(cmd.Context(), req)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to sign evolve")
			}

			signer, err := signature.VerifyEvolve(req, *signed)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to recover signer")
			}

			printSigned(signed, signer)
		},
	}

	cmd.Flags().Int64Var(&currentID, "current-id", 0, "Id of the owned moonster.")
	cmd.Flags().Int64Var(&newID, "new-id", 0, "Id of the evolution.")

	return cmd
}
