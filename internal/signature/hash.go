package signature

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const (
	signatureLength = 65
	recoveryIDIndex = 64
	legacyVOffset   = 27
)

var ErrInvalidSignature = errors.New("invalid signature")

// PackedHash is keccak256(abi.encodePacked(address user, address token, uint256 a, uint256 b, uint256 timestamp)).
func PackedHash(user, token common.Address, a, b *big.Int, timestamp int64) common.Hash {
	return crypto.Keccak256Hash(
		user.Bytes(),
		token.Bytes(),
		common.LeftPadBytes(a.Bytes(), 32),
		common.LeftPadBytes(b.Bytes(), 32),
		common.LeftPadBytes(big.NewInt(timestamp).Bytes(), 32),
	)
}

// CaptureHash returns the digest the capture signature is made over.
func CaptureHash(req CaptureRequest, timestamp int64) common.Hash {
	return PackedHash(
		common.HexToAddress(req.User),
		common.HexToAddress(req.Token),
		big.NewInt(req.Chance),
		big.NewInt(req.ID),
		timestamp,
	)
}

// EvolveHash returns the digest the evolve signature is made over.
func EvolveHash(req EvolveRequest, timestamp int64) common.Hash {
	return PackedHash(
		common.HexToAddress(req.User),
		common.HexToAddress(req.Token),
		big.NewInt(req.CurrentID),
		big.NewInt(req.NewID),
		timestamp,
	)
}

// RecoverSigner returns the address that signed hash as an EIP-191 personal message.
// Both v encodings (0/1 and 27/28) are accepted.
func RecoverSigner(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != signatureLength {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature, "expected %d bytes, got %d", signatureLength, len(sig))
	}

	normalized := make([]byte, signatureLength)
	copy(normalized, sig)
	if normalized[recoveryIDIndex] >= legacyVOffset {
		normalized[recoveryIDIndex] -= legacyVOffset
	}

	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), normalized)
	if err != nil {
		return common.Address{}, errors.Wrap(ErrInvalidSignature, err.Error())
	}

	return crypto.PubkeyToAddress(*pub), nil
}

// VerifyCapture recovers the signer of a capture signature.
func VerifyCapture(req CaptureRequest, signed SignedAction) (common.Address, error) {
	return RecoverSigner(CaptureHash(req, signed.Timestamp), signed.Signature)
}

// VerifyEvolve recovers the signer of an evolve signature.
func VerifyEvolve(req EvolveRequest, signed SignedAction) (common.Address, error) {
	return RecoverSigner(EvolveHash(req, signed.Timestamp), signed.Signature)
}
