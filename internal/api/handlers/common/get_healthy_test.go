package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Equal(t, "chain: ok\n", res.Body.String())
	})
}

func TestGetHealthyWrongChain(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.Backend(t, s).NetworkID = 1

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "chain: connected to chain 1, expected 4202")
	})
}

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Metrics.RateLimited("signature")

		res := test.PerformRequest(t, s, "GET", "/-/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "go_goroutines")
		assert.Contains(t, res.Body.String(), "rate_limited_requests_total")
	})
}
