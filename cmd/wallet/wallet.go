package wallet

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util/command"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/keystore"
)

const (
	lightFlag string = "light"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newImport(),
		newAddress(),
	)
}

func newImport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports a mnemonic into the keystore",
		Long: `Encrypts a BIP-39 mnemonic into the keystore at WALLET_KEYSTORE_PATH
and prints the address derived at WALLET_DERIVATION_PATH.`,
		Run: func(cmd *cobra.Command, _ []string) {
			light, err := cmd.Flags().GetBool(lightFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse args")
			}

			cfg, err := config.Load()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load config")
			}

			mnemonic, err := command.PromptLine("Mnemonic: ")
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read mnemonic")
			}

			password, err := command.PromptPassword("New keystore password: ")
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read password")
			}

			repeated, err := command.PromptPassword("Repeat password: ")
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to read password")
			}

			if password != repeated {
				log.Fatal().Msg("Passwords do not match")
			}

			params := keystore.StandardScryptParams()
			if light {
				params = keystore.LightScryptParams()
			}

			address, err := wallet.Import(cfg.Wallet.KeystorePath, mnemonic, password, cfg.Wallet.DerivationPath, params)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to import wallet")
			}

			log.Info().Str("path", cfg.Wallet.KeystorePath).Str("address", address).Msg("Imported wallet")
			fmt.Println(address) //nolint:forbidigo
		},
	}

	cmd.Flags().Bool(lightFlag, false, "Use cheap scrypt parameters. Only for throwaway wallets.")

	return cmd
}

func newAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Prints the address stored in the keystore",
		Run: func(_ *cobra.Command, _ []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to load config")
			}

			file, err := keystore.Load(cfg.Wallet.KeystorePath)
			if err != nil {
				log.Fatal().Err(err).Str("path", cfg.Wallet.KeystorePath).Msg("Failed to load keystore")
			}

			if len(file.Address) == 0 {
				log.Fatal().Msg("Keystore does not store an address")
			}

			fmt.Println(file.Address) //nolint:forbidigo
		},
	}
}
