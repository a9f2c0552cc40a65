package battles

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func GetCurrentSeasonRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Seasons.GET("/current", getCurrentSeasonHandler(s))
}

func getCurrentSeasonHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := s.Facade.CurrentSeasonID(ctx)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundSeason, "Failed to read current season id")
		}

		if id <= 0 {
			return httperrors.ErrNotFoundSeason
		}

		season, err := s.Facade.Season(ctx, id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundSeason, "Failed to read current season")
		}

		return c.JSON(http.StatusOK, season)
	}
}

func GetSeasonRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Seasons.GET("/:id", getSeasonHandler(s))
}

func getSeasonHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		season, err := s.Facade.Season(c.Request().Context(), id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundSeason, "Failed to read season")
		}

		return c.JSON(http.StatusOK, season)
	}
}
