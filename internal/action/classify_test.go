package action_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		kind action.ErrorKind
	}{
		{errors.New("MetaMask Tx Signature: User denied transaction signature."), action.KindWalletRejection},
		{wallet.ErrRejected, action.KindWalletRejection},
		{errors.Wrap(wallet.ErrNotConnected, "send"), action.KindWalletNotConnected},
		{errors.New("execution reverted: Round is full"), action.KindRoundFull},
		{errors.New("execution reverted: User already joined this round"), action.KindAlreadyJoined},
		{errors.New("execution reverted: Invalid signature"), action.KindInvalidSignature},
		{errors.New("execution reverted: Signature already used"), action.KindSignatureUsed},
		{errors.New("execution reverted: Token not accepted"), action.KindTokenNotAccepted},
		{errors.New("execution reverted: Ownable: caller is not the owner"), action.KindNotOwner},
		{errors.New("execution reverted: Round not open"), action.KindWrongPhase},
		{errors.New("insufficient funds for gas * price + value"), action.KindInsufficientFunds},
		{errors.Wrap(chain.ErrReceiptTimeout, "after 30s"), action.KindReceiptTimeout},
		{errors.Wrap(signature.ErrInvalidRequest, "chance must not be negative"), action.KindSignatureService},
		{errors.Wrap(signature.ErrSigningKeyUnset, "failed to sign capture"), action.KindSignatureService},
		{errors.New("nonce too low"), action.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.kind, action.Classify(tt.err).Kind)
		})
	}

	assert.Nil(t, action.Classify(nil))

	unknown := action.Classify(errors.New("nonce too low"))
	assert.Equal(t, "nonce too low", unknown.Data["Detail"])
	assert.ErrorContains(t, unknown, "nonce too low")
}

func TestClassifyKeepsClassifiedErrors(t *testing.T) {
	original := action.Classify(errors.New("execution reverted: Round is full"))
	wrapped := errors.Wrap(original, "join")

	assert.Same(t, original, action.Classify(wrapped))
}
