package moonsters

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func GetUserMoonstersRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Users.GET("/:address/moonsters", getUserMoonstersHandler(s))
}

func getUserMoonstersHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := util.ParseAddress(c.Param("address"))
		if err != nil {
			return err
		}

		moonsters, err := s.Facade.UserMoonsters(c.Request().Context(), user)
		if err != nil {
			return readError(c, err, "Failed to read user moonsters")
		}

		return c.JSON(http.StatusOK, moonsters)
	}
}

func GetUserBookmarksRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Users.GET("/:address/bookmarks", getUserBookmarksHandler(s))
}

func getUserBookmarksHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := util.ParseAddress(c.Param("address"))
		if err != nil {
			return err
		}

		ids, err := s.Facade.Bookmarks(c.Request().Context(), user)
		if err != nil {
			return readError(c, err, "Failed to read bookmarks")
		}

		return c.JSON(http.StatusOK, ids)
	}
}
