package hd

import (
	"crypto/ecdsa"
	"crypto/sha512"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultPath is the first account of the standard Ethereum BIP44 tree.
const DefaultPath = "m/44'/60'/0'/0/0"

const (
	seedIterations = 2048
	seedLength     = 64
)

var ErrInvalidPath = errors.New("invalid derivation path")

// SeedFromMnemonic stretches a mnemonic into a 64 byte BIP39 seed. The word list is not validated.
func SeedFromMnemonic(mnemonic string, passphrase string) []byte {
	normalized := strings.Join(strings.Fields(mnemonic), " ")

	return pbkdf2.Key([]byte(normalized), []byte("mnemonic"+passphrase), seedIterations, seedLength, sha512.New)
}

// DeriveKey walks path from the master key of seed and returns the ECDSA key at its end.
func DeriveKey(seed []byte, path string) (*ecdsa.PrivateKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	privateKey, err := crypto.ToECDSA(key.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert to ECDSA private key")
	}

	return privateKey, nil
}

// DeriveAddress returns the address at path without exposing the key.
func DeriveAddress(seed []byte, path string) (common.Address, error) {
	privateKey, err := DeriveKey(seed, path)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey), nil
}

// ParsePath turns "m/44'/60'/0'/0/0" into child indices, hardened segments offset by 2^31.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, errors.Wrap(ErrInvalidPath, path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}

		parsed, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPath, "segment %q of %s", part, path)
		}

		index := uint32(parsed)
		if hardened {
			index += bip32.FirstHardenedChild
		}

		indices = append(indices, index)
	}

	return indices, nil
}
