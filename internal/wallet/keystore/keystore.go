package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

var (
	ErrWrongPassword = errors.New("invalid password: MAC mismatch")
	ErrExists        = errors.New("keystore file already exists")
	ErrUnsupported   = errors.New("unsupported keystore format")
)

// Encrypt seals mnemonic with password. address is stored in clear to identify the file.
func Encrypt(mnemonic string, password string, address string, params ScryptParams) (*File, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	iv := make([]byte, ivLength) //nolint:varnamelen
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	ciphertext, err := xorAES128CTR(derivedKey[:aesKeyLength], iv, []byte(mnemonic))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt mnemonic")
	}

	return &File{
		Version: version,
		ID:      uuid.New().String(),
		Address: address,
		Crypto: Crypto{
			Ciphertext:   hex.EncodeToString(ciphertext),
			CipherParams: CipherParams{IV: hex.EncodeToString(iv)},
			Cipher:       cipherName,
			KDF:          kdfName,
			KDFParams: KDFParams{
				DKLen: params.DKLen,
				Salt:  hex.EncodeToString(salt),
				N:     params.N,
				R:     params.R,
				P:     params.P,
			},
			MAC: hex.EncodeToString(mac(derivedKey, ciphertext)),
		},
	}, nil
}

// Decrypt returns the mnemonic sealed in f.
func Decrypt(f *File, password string) (string, error) {
	if f.Version != version || f.Crypto.Cipher != cipherName || f.Crypto.KDF != kdfName {
		return "", errors.Wrapf(ErrUnsupported, "version %d, cipher %s, kdf %s", f.Version, f.Crypto.Cipher, f.Crypto.KDF)
	}

	salt, err := hex.DecodeString(f.Crypto.KDFParams.Salt)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode salt")
	}

	iv, err := hex.DecodeString(f.Crypto.CipherParams.IV) //nolint:varnamelen
	if err != nil {
		return "", errors.Wrap(err, "failed to decode IV")
	}

	ciphertext, err := hex.DecodeString(f.Crypto.Ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ciphertext")
	}

	expectedMAC, err := hex.DecodeString(f.Crypto.MAC)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode MAC")
	}

	p := f.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive key")
	}

	if subtle.ConstantTimeCompare(mac(derivedKey, ciphertext), expectedMAC) != 1 {
		return "", ErrWrongPassword
	}

	plaintext, err := xorAES128CTR(derivedKey[:aesKeyLength], iv, ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt mnemonic")
	}

	return string(plaintext), nil
}

// Save writes f to path with owner-only permissions. An existing file is never overwritten.
func Save(path string, f *File) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrap(ErrExists, path)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write keystore")
	}

	return nil
}

// Load reads the keystore at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal keystore")
	}

	return &f, nil
}

// mac is keccak256(derivedKey[16:32] ++ ciphertext), as in geth's keystore.
func mac(derivedKey []byte, ciphertext []byte) []byte {
	return crypto.Keccak256(derivedKey[aesKeyLength:2*aesKeyLength], ciphertext)
}

func xorAES128CTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}
