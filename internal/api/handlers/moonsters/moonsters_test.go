package moonsters_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/test"
)

func TestGetMoonsterInvalidID(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/moonsters/abc", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidID)

		res = test.PerformRequest(t, s, "GET", "/api/v1/moonsters/0", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidID)
	})
}

func TestGetMoonsterChainUnavailable(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// nothing registered on the backend, every call fails
		res := test.PerformRequest(t, s, "GET", "/api/v1/moonsters/7", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadGatewayChain)
	})
}

func TestGetUserBookmarks(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.Backend(t, s).RespondAny(s.Contracts.UserManagement, "getBookmarks", []*big.Int{big.NewInt(3), big.NewInt(0), big.NewInt(11)})

		res := test.PerformRequest(t, s, "GET", "/api/v1/users/"+chaintest.PlayerAddress.Hex()+"/bookmarks", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var ids []int64
		require.NoError(t, json.NewDecoder(res.Body).Decode(&ids))
		assert.Equal(t, []int64{3, 11}, ids)
	})
}

func TestGetUserMoonstersEmpty(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.Backend(t, s).RespondAny(s.Contracts.UserManagement, "getUserIds", []*big.Int{})

		res := test.PerformRequest(t, s, "GET", "/api/v1/users/"+chaintest.PlayerAddress.Hex()+"/moonsters", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.JSONEq(t, "[]", res.Body.String())
	})
}

func TestGetUserMoonstersInvalidAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/users/0x123/moonsters", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidAddress)
	})
}

func TestGetMoonsterUndecodableIsNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.Backend(t, s).RespondRaw(s.Contracts.Moonsters, "getMoonster", []byte{0x01, 0x02})

		res := test.PerformRequest(t, s, "GET", "/api/v1/moonsters/7", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundMoonster)
	})
}
