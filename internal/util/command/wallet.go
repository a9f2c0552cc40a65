package command

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
)

// UnlockWallet enables the player wallet in cfg, prompting for the keystore password
// unless WALLET_PASSWORD already provided one.
func UnlockWallet(cfg *config.Server) error {
	if len(cfg.Wallet.KeystorePath) == 0 {
		return errors.New("no keystore configured, run `wallet import` first or set WALLET_KEYSTORE_PATH")
	}

	if len(cfg.Wallet.Password) == 0 {
		password, err := PromptPassword("Keystore password: ")
		if err != nil {
			return err
		}

		cfg.Wallet.Password = password
	}

	cfg.Wallet.Enabled = true

	return nil
}

// ConfirmApprover asks on the terminal before every transaction. yes skips the question.
func ConfirmApprover(yes bool) wallet.Approver {
	return func(_ context.Context, to common.Address, data []byte) (bool, error) {
		if yes {
			return true, nil
		}

		selector := data
		if len(selector) > 4 {
			selector = selector[:4]
		}

		return Confirm(fmt.Sprintf("Send transaction to %s (selector 0x%x)?", to.Hex(), selector))
	}
}
