package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/middleware"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// Init sets up echo with the configured middlewares, groups and every route of the API.
func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = HTTPErrorHandler(s.Config.Echo.HideInternalServerErrorDetails)

	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echomw.RemoveTrailingSlash())
	} else {
		log.Warn().Msg("Disabling trailing slash middleware due to environment config")
	}

	s.Echo.Use(middleware.Defaults(
		s.Config.Echo.EnableRequestIDMiddleware,
		s.Config.Echo.EnableRecoverMiddleware,
		s.Config.Echo.EnableCORSMiddleware,
	)...)

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger(s.Config.Logger.RequestLevel))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	s.Router = &api.Router{
		Routes:          nil,
		Root:            s.Echo.Group(""),
		Management:      s.Echo.Group("/-"),
		APIV1Signatures: s.Echo.Group("/api/v1/signatures"),
		APIV1Moonsters:  s.Echo.Group("/api/v1/moonsters"),
		APIV1Users:      s.Echo.Group("/api/v1/users"),
		APIV1Seasons:    s.Echo.Group("/api/v1/seasons"),
		APIV1Rounds:     s.Echo.Group("/api/v1/rounds"),
		APIV1Lists:      s.Echo.Group("/api/v1/lists"),
		APIV1Actions:    s.Echo.Group("/api/v1/actions"),
		APIV1Admin:      s.Echo.Group("/api/v1/admin"),
	}

	handlers.AttachAllRoutes(s)

	return nil
}

// HTTPErrorHandler renders every error as httperrors.HTTPError JSON.
func HTTPErrorHandler(hideInternalDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpError *httperrors.HTTPError
		var echoError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
		case errors.As(err, &echoError):
			httpError = httperrors.NewFromEcho(echoError)
		default:
			httpError = httperrors.NewHTTPError(http.StatusInternalServerError, httperrors.HTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !hideInternalDetails {
				httpError.Detail = err.Error()
			}
			util.LogFromContext(c.Request().Context()).Error().Err(err).Msg("Unhandled error while processing request")
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(httpError.Code)
		} else {
			sendErr = c.JSON(httpError.Code, httpError)
		}

		if sendErr != nil {
			util.LogFromContext(c.Request().Context()).Warn().Err(sendErr).Msg("Failed to send error response")
		}
	}
}
