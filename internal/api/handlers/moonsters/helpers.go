package moonsters

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func readError(c echo.Context, err error, msg string) error {
	if errors.Is(err, facade.ErrNotFound) {
		return httperrors.ErrNotFoundMoonster
	}

	util.LogFromContext(c.Request().Context()).Error().Err(err).Msg(msg)

	return httperrors.ErrBadGatewayChain
}
