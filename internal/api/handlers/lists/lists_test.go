package lists_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/test"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
)

func session(id string) http.Header {
	return http.Header{"X-Session-ID": []string{id}}
}

func entry(id int64, name string) map[string]interface{} {
	return map[string]interface{}{"id": id, "name": name}
}

func TestComparisonListLifecycle(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		headers := session("alice")

		res := test.PerformRequest(t, s, "GET", "/api/v1/lists/comparison", nil, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var list types.ListResponse
		test.ParseResponseAndValidate(t, res, &list)
		assert.Equal(t, int64(2), *list.Capacity)
		assert.Equal(t, "comparison", *list.Kind)
		assert.Empty(t, list.Entries)

		res = test.PerformRequest(t, s, "POST", "/api/v1/lists/comparison", entry(1, "Bulbasaur"), headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/lists/comparison", entry(1, "Bulbasaur"), headers)
		test.RequireHTTPError(t, res, httperrors.ErrConflictListDuplicate)

		res = test.PerformRequest(t, s, "POST", "/api/v1/lists/comparison", entry(4, "Charmander"), headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/lists/comparison", entry(7, "Squirtle"), headers)
		test.RequireHTTPError(t, res, httperrors.ErrConflictListFull)

		res = test.PerformRequest(t, s, "DELETE", "/api/v1/lists/comparison/1", nil, headers)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		list = types.ListResponse{}
		test.ParseResponseAndValidate(t, res, &list)
		require.Len(t, list.Entries, 1)
		assert.Equal(t, int64(4), *list.Entries[0].ID)
		assert.Equal(t, "Charmander", *list.Entries[0].Name)

		res = test.PerformRequest(t, s, "DELETE", "/api/v1/lists/comparison", nil, headers)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/api/v1/lists/comparison", nil, headers)
		list = types.ListResponse{}
		test.ParseResponseAndValidate(t, res, &list)
		assert.Empty(t, list.Entries)
	})
}

func TestListsAreSessionScoped(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/lists/capture", entry(25, "Pikachu"), session("alice"))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/api/v1/lists/capture", nil, session("bob"))
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var list types.ListResponse
		test.ParseResponseAndValidate(t, res, &list)
		assert.Empty(t, list.Entries)
		assert.Equal(t, int64(6), *list.Capacity)
	})
}

func TestListRequiresSession(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/lists/capture", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestMissingSession)
	})
}

func TestUnknownList(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/lists/favorites", nil, session("alice"))
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundList)
	})
}

func TestPostListEntryInvalid(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/lists/capture", entry(0, ""), session("alice"))
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
