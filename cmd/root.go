package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/admin"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/db"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/env"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/probe"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/server"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/sign"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/tx"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd/wallet"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Moonsters GameFi service: chain reads, action signatures and the capture, evolve
and battle transaction flows of a player wallet.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		action.New(),
		admin.New(),
		db.New(),
		env.New(),
		probe.New(),
		server.New(),
		sign.New(),
		tx.New(),
		wallet.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
