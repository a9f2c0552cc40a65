package lists

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
)

func GetListRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Lists.GET("/:kind", getListHandler(s))
}

func getListHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		service, kind, session, err := target(s, c)
		if err != nil {
			return err
		}

		entries, err := service.List(c.Request().Context(), session)
		if err != nil {
			return listError(c, err)
		}

		return respond(c, service, kind, entries)
	}
}
