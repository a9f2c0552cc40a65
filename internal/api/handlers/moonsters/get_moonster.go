package moonsters

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func GetMoonsterRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Moonsters.GET("/:id", getMoonsterHandler(s))
}

func getMoonsterHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		moonster, err := s.Facade.Moonster(c.Request().Context(), id)
		if err != nil {
			return readError(c, err, "Failed to read moonster")
		}

		return c.JSON(http.StatusOK, moonster)
	}
}
