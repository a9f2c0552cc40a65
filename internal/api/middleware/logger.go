// Package middleware holds the echo middlewares the router installs.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request scoped zerolog logger to the request context and logs every
// finished request at level.
func Logger(level zerolog.Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if len(id) == 0 {
				id = res.Header().Get(echo.HeaderXRequestID)
			}

			logger := log.With().
				Str("id", id).
				Str("host", req.Host).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Logger()

			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.WithLevel(level).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("Request")

			return nil
		}
	}
}

// Defaults returns the stock echo middlewares enabled by the flags, request id first.
func Defaults(requestID bool, recoverPanics bool, cors bool) []echo.MiddlewareFunc {
	var mws []echo.MiddlewareFunc

	if requestID {
		mws = append(mws, echomw.RequestID())
	}
	if recoverPanics {
		mws = append(mws, echomw.Recover())
	}
	if cors {
		mws = append(mws, echomw.CORSWithConfig(echomw.CORSConfig{
			AllowHeaders: []string{
				echo.HeaderOrigin,
				echo.HeaderContentType,
				echo.HeaderAccept,
				"Accept-Language",
				"X-Session-ID",
			},
		}))
	}

	return mws
}
