package util

import (
	"errors"
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
)

// HeaderSessionID carries the caller's list session.
const HeaderSessionID = "X-Session-ID"

// BindAndValidateBody binds the request body into v and validates it against its schema.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unsupported echo binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload before writing it with the given status code.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromContext(c.Request().Context()).Error().Errs("validation_errors", compositeError.Errors).Msg("Response did not match schema")
		} else {
			LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to validate response")
		}

		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

// SessionIDFromHeader returns the list session of the request or an HTTP error if absent.
func SessionIDFromHeader(c echo.Context) (string, error) {
	sessionID := c.Request().Header.Get(HeaderSessionID)
	if len(sessionID) == 0 {
		return "", httperrors.ErrBadRequestMissingSession
	}

	return sessionID, nil
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromContext(c.Request().Context()).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema, returning HTTP validation error")

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors(compositeError))
		}

		var validationError *oerrors.Validation
		if errors.As(err, &validationError) {
			return httperrors.NewHTTPValidationError(http.StatusBadRequest, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), []*httperrors.HTTPValidationErrorDetail{
				formatValidationError(validationError),
			})
		}

		LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
		return echo.ErrBadRequest
	}

	return nil
}

func formatValidationErrors(err *oerrors.CompositeError) []*httperrors.HTTPValidationErrorDetail {
	valErrs := make([]*httperrors.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		var validationError *oerrors.Validation
		if errors.As(e, &validationError) {
			valErrs = append(valErrs, formatValidationError(validationError))
			continue
		}

		var compositeError *oerrors.CompositeError
		if errors.As(e, &compositeError) {
			valErrs = append(valErrs, formatValidationErrors(compositeError)...)
			continue
		}

		valErrs = append(valErrs, &httperrors.HTTPValidationErrorDetail{
			Key:   "unknown",
			In:    "body",
			Error: e.Error(),
		})
	}

	return valErrs
}

func formatValidationError(err *oerrors.Validation) *httperrors.HTTPValidationErrorDetail {
	return &httperrors.HTTPValidationErrorDetail{
		Key:   err.Name,
		In:    err.In,
		Error: err.Error(),
	}
}
