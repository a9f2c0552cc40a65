package httperrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type HTTPErrorType string

const (
	HTTPErrorTypeGeneric           HTTPErrorType = "generic"
	HTTPErrorTypeRateLimited       HTTPErrorType = "RATE_LIMITED"
	HTTPErrorTypeSignatureDisabled HTTPErrorType = "SIGNATURE_DISABLED"
	HTTPErrorTypeListFull          HTTPErrorType = "LIST_FULL"
	HTTPErrorTypeListDuplicate     HTTPErrorType = "LIST_DUPLICATE"
	HTTPErrorTypeMissingSession    HTTPErrorType = "MISSING_SESSION"
	HTTPErrorTypeNotFound          HTTPErrorType = "NOT_FOUND"
	HTTPErrorTypeChainUnavailable  HTTPErrorType = "CHAIN_UNAVAILABLE"
	HTTPErrorTypeJournalDisabled   HTTPErrorType = "JOURNAL_DISABLED"
	HTTPErrorTypeInvalidParam      HTTPErrorType = "INVALID_PARAM"
)

// HTTPValidationErrorDetail describes a single invalid field of a request.
type HTTPValidationErrorDetail struct {
	Key   string `json:"key"`
	In    string `json:"in"`
	Error string `json:"error"`
}

// HTTPError is the JSON error body returned by every handler.
type HTTPError struct {
	Code             int                          `json:"status"`
	Type             HTTPErrorType                `json:"type"`
	Title            string                       `json:"title"`
	Detail           string                       `json:"detail,omitempty"`
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors,omitempty"`
	Internal         error                        `json:"-"`
}

func NewHTTPError(code int, errorType HTTPErrorType, title string) *HTTPError {
	return &HTTPError{
		Code:  code,
		Type:  errorType,
		Title: title,
	}
}

func NewHTTPErrorWithDetail(code int, errorType HTTPErrorType, title string, detail string) *HTTPError {
	return &HTTPError{
		Code:   code,
		Type:   errorType,
		Title:  title,
		Detail: detail,
	}
}

func NewHTTPValidationError(code int, errorType HTTPErrorType, title string, validationErrors []*HTTPValidationErrorDetail) *HTTPError {
	return &HTTPError{
		Code:             code,
		Type:             errorType,
		Title:            title,
		ValidationErrors: validationErrors,
	}
}

func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return &HTTPError{
		Code:  e.Code,
		Type:  HTTPErrorTypeGeneric,
		Title: fmt.Sprintf("%v", e.Message),
	}
}

func (e *HTTPError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "HTTPError %d (%s): %s", e.Code, e.Type, e.Title)

	if len(e.Detail) > 0 {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}
	if e.Internal != nil {
		fmt.Fprintf(&b, ", %v", e.Internal)
	}
	if len(e.ValidationErrors) > 0 {
		b.WriteString(" - Validation: ")
		for i, ve := range e.ValidationErrors {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (in %s): %s", ve.Key, ve.In, ve.Error)
		}
	}

	return b.String()
}

var (
	ErrBadRequestMissingSession  = NewHTTPError(http.StatusBadRequest, HTTPErrorTypeMissingSession, "Header X-Session-ID is required.")
	ErrServiceUnavailableSigner  = NewHTTPError(http.StatusServiceUnavailable, HTTPErrorTypeSignatureDisabled, "The signing key is not configured.")
	ErrTooManyRequestsSignature  = NewHTTPError(http.StatusTooManyRequests, HTTPErrorTypeRateLimited, "Too many signature requests, please slow down.")
	ErrNotFoundMoonster          = NewHTTPError(http.StatusNotFound, HTTPErrorTypeNotFound, "Moonster not found.")
	ErrConflictListFull          = NewHTTPError(http.StatusConflict, HTTPErrorTypeListFull, "The list is full.")
	ErrConflictListDuplicate     = NewHTTPError(http.StatusConflict, HTTPErrorTypeListDuplicate, "The Moonster is already in the list.")
	ErrBadGatewayChain           = NewHTTPError(http.StatusBadGateway, HTTPErrorTypeChainUnavailable, "The chain RPC could not be reached.")
	ErrServiceUnavailableJournal = NewHTTPError(http.StatusServiceUnavailable, HTTPErrorTypeJournalDisabled, "The flow journal is not enabled on this server.")
	ErrNotFoundFlow              = NewHTTPError(http.StatusNotFound, HTTPErrorTypeNotFound, "Flow not found.")
	ErrNotFoundSeason            = NewHTTPError(http.StatusNotFound, HTTPErrorTypeNotFound, "Season not found.")
	ErrNotFoundRound             = NewHTTPError(http.StatusNotFound, HTTPErrorTypeNotFound, "Battle round not found.")
	ErrNotFoundList              = NewHTTPError(http.StatusNotFound, HTTPErrorTypeNotFound, "Unknown list, use capture or comparison.")
	ErrBadRequestInvalidID       = NewHTTPError(http.StatusBadRequest, HTTPErrorTypeInvalidParam, "Path parameter id must be a positive integer.")
	ErrBadRequestInvalidAddress  = NewHTTPError(http.StatusBadRequest, HTTPErrorTypeInvalidParam, "Address must be a 0x prefixed hex address.")
)
