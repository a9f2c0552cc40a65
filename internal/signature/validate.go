package signature

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
)

var ErrInvalidRequest = errors.New("invalid signature request")

func isHexAddress(value string, paramName string) vala.Checker {
	return func() (bool, string) {
		return common.IsHexAddress(value), fmt.Sprintf("%s is not a well-formed address: %q", paramName, value)
	}
}

func isNonNegative(value int64, paramName string) vala.Checker {
	return func() (bool, string) {
		return value >= 0, fmt.Sprintf("%s must not be negative, got %d", paramName, value)
	}
}

func isPositive(value int64, paramName string) vala.Checker {
	return func() (bool, string) {
		return value > 0, fmt.Sprintf("%s must be positive, got %d", paramName, value)
	}
}

func (r CaptureRequest) Validate() error {
	if err := vala.BeginValidation().Validate(
		isHexAddress(r.User, "user"),
		isHexAddress(r.Token, "token"),
		isNonNegative(r.Chance, "chance"),
		isPositive(r.ID, "id"),
	).Check(); err != nil {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}

	return nil
}

func (r EvolveRequest) Validate() error {
	if err := vala.BeginValidation().Validate(
		isHexAddress(r.User, "user"),
		isHexAddress(r.Token, "token"),
		isPositive(r.CurrentID, "currentId"),
		isPositive(r.NewID, "newId"),
	).Check(); err != nil {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}

	return nil
}
