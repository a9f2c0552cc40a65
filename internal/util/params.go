package util

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
)

// ParseIDParam parses the named path parameter as a positive id.
func ParseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, httperrors.ErrBadRequestInvalidID
	}

	return id, nil
}

// ParseAddress parses a hex address taken from a path or query parameter.
func ParseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, httperrors.ErrBadRequestInvalidAddress
	}

	return common.HexToAddress(value), nil
}

// QueryInt returns the named query parameter as int or defaultVal when absent or malformed.
func QueryInt(c echo.Context, name string, defaultVal int) int {
	value := c.QueryParam(name)
	if len(value) == 0 {
		return defaultVal
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}

	return parsed
}
