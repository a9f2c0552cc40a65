package signatures

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

const limiterName = "signature"

// allow applies the per address signature rate limit.
func allow(s *api.Server, user string) error {
	if s.Limiter.Allow(user) {
		return nil
	}

	s.Metrics.RateLimited(limiterName)

	return httperrors.ErrTooManyRequestsSignature
}

func respond(c echo.Context, signed *signature.SignedAction, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, signature.ErrInvalidRequest):
			return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), err.Error())
		case errors.Is(err, signature.ErrSigningKeyUnset):
			return httperrors.ErrServiceUnavailableSigner
		default:
			util.LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to sign action")
			return err
		}
	}

	return util.ValidateAndReturn(c, http.StatusOK, &types.SignatureResponse{
		Signature: swag.String(signed.Signature.String()),
		Timestamp: swag.Int64(signed.Timestamp),
	})
}
