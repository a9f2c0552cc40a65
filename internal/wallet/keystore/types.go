package keystore

// File is the Ethereum keystore v3 layout, holding an encrypted mnemonic instead of a raw key.
type File struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Address string `json:"address,omitempty"`
	Crypto  Crypto `json:"crypto"`
}

type Crypto struct {
	Ciphertext   string       `json:"ciphertext"`
	CipherParams CipherParams `json:"cipherparams"`
	Cipher       string       `json:"cipher"`
	KDF          string       `json:"kdf"`
	KDFParams    KDFParams    `json:"kdfparams"`
	MAC          string       `json:"mac"`
}

type CipherParams struct {
	IV string `json:"iv"`
}

type KDFParams struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
}

// ScryptParams defines the scrypt KDF cost.
type ScryptParams struct {
	DKLen int
	N     int
	R     int
	P     int
}

const (
	version      = 3
	cipherName   = "aes-128-ctr"
	kdfName      = "scrypt"
	saltLength   = 32
	ivLength     = 16
	aesKeyLength = 16
)

// StandardScryptParams matches geth's standard keystore cost (2^18).
func StandardScryptParams() ScryptParams {
	return ScryptParams{
		DKLen: 32,
		N:     1 << 18,
		R:     8,
		P:     1,
	}
}

// LightScryptParams is cheap enough for tests and throwaway wallets.
func LightScryptParams() ScryptParams {
	return ScryptParams{
		DKLen: 32,
		N:     1 << 12,
		R:     8,
		P:     6,
	}
}
