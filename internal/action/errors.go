package action

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/wallet"
)

// ErrorKind is the user facing category of a failed flow. Its value doubles as the message ID.
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindWalletRejection    ErrorKind = "wallet-rejection"
	KindWrongNetwork       ErrorKind = "wrong-network"
	KindWalletNotConnected ErrorKind = "wallet-not-connected"
	KindInvalidInput       ErrorKind = "invalid-input"
	KindInsufficientFunds  ErrorKind = "insufficient-balance"
	KindFeeUnavailable     ErrorKind = "fee-unavailable"
	KindChanceMismatch     ErrorKind = "chance-mismatch"
	KindInvalidSignature   ErrorKind = "invalid-signature"
	KindSignatureUsed      ErrorKind = "signature-used"
	KindTokenNotAccepted   ErrorKind = "token-not-accepted"
	KindRoundFull          ErrorKind = "round-full"
	KindAlreadyJoined      ErrorKind = "already-joined"
	KindNotOwner           ErrorKind = "not-owner"
	KindWrongPhase         ErrorKind = "wrong-phase"
	KindReceiptTimeout     ErrorKind = "receipt-timeout"
	KindCaptureMissed      ErrorKind = "capture-missed"
	KindUnexpectedOutcome  ErrorKind = "unexpected-outcome"
	KindReverted           ErrorKind = "reverted"
	KindSignatureService   ErrorKind = "signature-service"
	KindUnknown            ErrorKind = "unknown"
)

// Error is a classified flow failure. Data feeds the localized message template.
type Error struct {
	Kind ErrorKind
	Data map[string]interface{}
	Err  error
}

func newError(kind ErrorKind, err error, data map[string]interface{}) *Error {
	if data == nil {
		data = map[string]interface{}{}
	}
	if _, ok := data["Detail"]; !ok && err != nil {
		data["Detail"] = err.Error()
	}

	return &Error{Kind: kind, Data: data, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}

	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// revertReasons maps known wallet and contract error substrings to their kind.
// Matching is case-insensitive and the first match wins.
var revertReasons = []struct {
	substring string
	kind      ErrorKind
}{
	{"user rejected", KindWalletRejection},
	{"user denied", KindWalletRejection},
	{"rejected the request", KindWalletRejection},
	{"round is full", KindRoundFull},
	{"already joined", KindAlreadyJoined},
	{"signature already used", KindSignatureUsed},
	{"invalid signature", KindInvalidSignature},
	{"token not accepted", KindTokenNotAccepted},
	{"caller is not the owner", KindNotOwner},
	{"ownableunauthorizedaccount", KindNotOwner},
	{"not owner", KindNotOwner},
	{"round not open", KindWrongPhase},
	{"invalid phase", KindWrongPhase},
	{"wrong phase", KindWrongPhase},
	{"insufficient funds", KindInsufficientFunds},
	{"transfer amount exceeds balance", KindInsufficientFunds},
	{"erc20insufficientbalance", KindInsufficientFunds},
	{"chain mismatch", KindWrongNetwork},
	{"invalid chain id", KindWrongNetwork},
}

// Classify turns any error returned during a flow into a classified *Error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, wallet.ErrNotConnected):
		return newError(KindWalletNotConnected, err, nil)
	case errors.Is(err, wallet.ErrRejected):
		return newError(KindWalletRejection, err, nil)
	case errors.Is(err, chain.ErrReceiptTimeout), errors.Is(err, context.DeadlineExceeded):
		return newError(KindReceiptTimeout, err, nil)
	case errors.Is(err, signature.ErrInvalidRequest),
		errors.Is(err, signature.ErrSigningKeyUnset),
		errors.Is(err, signature.ErrSignatureServiceUnavailable):
		return newError(KindSignatureService, err, nil)
	}

	msg := strings.ToLower(err.Error())
	for _, reason := range revertReasons {
		if strings.Contains(msg, reason.substring) {
			return newError(reason.kind, err, nil)
		}
	}

	return newError(KindUnknown, err, nil)
}
