package common

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// StatusNotReady is returned by the probes while a component is unavailable.
const StatusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our Service is ready to serve traffic (i.e. respond to queries).
// Does read-only probes apart from the general server ready state.
// Note that /-/ready is typically public (and not shielded by a mgmt-secret), we thus prevent information leakage here and only return `"Ready."`.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ReadinessTimeout)
		defer cancel()

		if err := ProbeReadiness(ctx, s); err != nil {
			util.LogFromContext(ctx).Warn().Err(err).Msg("Readiness probe failed")
			return c.String(StatusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}

// ProbeReadiness reports whether s is fully initialized and its database, when enabled, answers.
func ProbeReadiness(ctx context.Context, s *api.Server) error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			return errors.Wrap(err, "database ping failed")
		}
	}

	return nil
}
