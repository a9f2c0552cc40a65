package lists

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func DeleteListEntryRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Lists.DELETE("/:kind/:id", deleteListEntryHandler(s))
}

func deleteListEntryHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		service, kind, session, err := target(s, c)
		if err != nil {
			return err
		}

		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		entries, err := service.Remove(c.Request().Context(), session, id)
		if err != nil {
			return listError(c, err)
		}

		return respond(c, service, kind, entries)
	}
}

func DeleteListRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Lists.DELETE("/:kind", deleteListHandler(s))
}

func deleteListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		service, _, session, err := target(s, c)
		if err != nil {
			return err
		}

		if err := service.Clear(c.Request().Context(), session); err != nil {
			return listError(c, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
