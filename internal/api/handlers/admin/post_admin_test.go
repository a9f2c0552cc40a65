package admin_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/test"
)

func TestPostAdminValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/admin", map[string]interface{}{"operation": "mintEverything"}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/admin", map[string]interface{}{
			"operation":  "createRoundMatch",
			"seasonId":   1,
			"startTime":  200,
			"endTime":    100,
			"maxPlayers": 4,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostAdminWithoutWallet(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/admin", map[string]interface{}{
			"operation": "endSeason",
			"seasonId":  2,
		}, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.Result().StatusCode)

		var result action.Result
		require.NoError(t, json.NewDecoder(res.Body).Decode(&result))
		assert.Equal(t, action.StatusRejected, result.Status)
		assert.Equal(t, action.KindWalletNotConnected, result.Kind)
		assert.Equal(t, 0, test.Backend(t, s).Calls())
	})
}
