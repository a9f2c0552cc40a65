package wallet

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/hd"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet/keystore"
)

var ErrInvalidMnemonic = errors.New("mnemonic must have 12, 15, 18, 21 or 24 words")

// Import encrypts mnemonic into a new keystore file at path and returns the derived address.
func Import(path string, mnemonic string, password string, derivationPath string, params keystore.ScryptParams) (string, error) {
	words := strings.Fields(mnemonic)
	if len(words) < 12 || len(words) > 24 || len(words)%3 != 0 {
		return "", ErrInvalidMnemonic
	}

	if derivationPath == "" {
		derivationPath = hd.DefaultPath
	}

	normalized := strings.Join(words, " ")

	address, err := hd.DeriveAddress(hd.SeedFromMnemonic(normalized, ""), derivationPath)
	if err != nil {
		return "", err
	}

	file, err := keystore.Encrypt(normalized, password, address.Hex(), params)
	if err != nil {
		return "", err
	}

	if err := keystore.Save(path, file); err != nil {
		return "", err
	}

	return address.Hex(), nil
}
