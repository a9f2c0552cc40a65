package lists

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/lists"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// target resolves the :kind path parameter and the caller's session.
//
//nolint:ireturn
func target(s *api.Server, c echo.Context) (lists.Service, string, string, error) {
	kind := c.Param("kind")

	var service lists.Service
	switch kind {
	case lists.KindCapture:
		service = s.Lists.Capture
	case lists.KindComparison:
		service = s.Lists.Comparison
	default:
		return nil, "", "", httperrors.ErrNotFoundList
	}

	session, err := util.SessionIDFromHeader(c)
	if err != nil {
		return nil, "", "", err
	}

	return service, kind, session, nil
}

func listError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, lists.ErrListFull):
		return httperrors.ErrConflictListFull
	case errors.Is(err, lists.ErrDuplicate):
		return httperrors.ErrConflictListDuplicate
	case errors.Is(err, lists.ErrNoSession):
		return httperrors.ErrBadRequestMissingSession
	case errors.Is(err, lists.ErrInvalidID):
		return httperrors.ErrBadRequestInvalidID
	default:
		util.LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to access list")
		return err
	}
}

func respond(c echo.Context, service lists.Service, kind string, entries []lists.Entry) error {
	response := &types.ListResponse{
		Capacity: swag.Int64(int64(service.Capacity())),
		Entries:  make([]*types.ListEntry, 0, len(entries)),
		Kind:     swag.String(kind),
	}

	for _, entry := range entries {
		response.Entries = append(response.Entries, &types.ListEntry{
			ID:    swag.Int64(entry.ID),
			Image: entry.Image,
			Name:  swag.String(entry.Name),
		})
	}

	return util.ValidateAndReturn(c, http.StatusOK, response)
}
