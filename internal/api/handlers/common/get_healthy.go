package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/cache"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Liveness check
// This endpoint probes every external dependency (database, redis, chain RPC) and lists the outcome
// line by line. It answers 521 as soon as one probe fails.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		str, errs := ProbeLiveness(ctx, s)
		if len(errs) > 0 {
			util.LogFromContext(ctx).Warn().Errs("errs", errs).Msg("Liveness probe failed")
			return c.String(StatusNotReady, str)
		}

		return c.String(http.StatusOK, str)
	}
}

// ProbeLiveness probes every external dependency and returns one "name: outcome" line per probe.
func ProbeLiveness(ctx context.Context, s *api.Server) (string, []error) {
	var b strings.Builder
	var errs []error

	probe := func(name string, f func(ctx context.Context) error) {
		if err := f(ctx); err != nil {
			errs = append(errs, err)
			fmt.Fprintf(&b, "%s: %v\n", name, err)
			return
		}

		fmt.Fprintf(&b, "%s: ok\n", name)
	}

	if !s.Ready() {
		errs = append(errs, errors.New("server is not fully initialized"))
		b.WriteString("server: not ready\n")
		return b.String(), errs
	}

	if s.DB != nil {
		probe("database", s.DB.PingContext)
	}

	if redisStore, ok := s.Cache.(*cache.RedisStore); ok {
		probe("redis", redisStore.Ping)
	}

	probe("chain", func(ctx context.Context) error {
		chainID, err := s.Chain.ChainID(ctx)
		if err != nil {
			return err
		}

		if chainID.Int64() != s.Config.Chain.ExpectedChainID {
			return errors.Errorf("connected to chain %d, expected %d", chainID.Int64(), s.Config.Chain.ExpectedChainID)
		}

		return nil
	})

	return b.String(), errs
}
