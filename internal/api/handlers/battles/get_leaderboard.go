package battles

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// GetLeaderboardRoute serves the season leaderboard. With ?top=N only the best N players are read.
func GetLeaderboardRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Seasons.GET("/:id/leaderboard", getLeaderboardHandler(s))
}

func getLeaderboardHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		var entries []facade.LeaderboardEntry
		if top := util.QueryInt(c, "top", 0); top > 0 {
			entries, err = s.Facade.TopPlayers(ctx, id, int64(top))
		} else {
			entries, err = s.Facade.Leaderboard(ctx, id)
		}
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundSeason, "Failed to read leaderboard")
		}

		return c.JSON(http.StatusOK, entries)
	}
}

func GetSeasonMatchesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Seasons.GET("/:id/matches", getSeasonMatchesHandler(s))
}

func getSeasonMatchesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		matches, err := s.Facade.SeasonMatches(c.Request().Context(), id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundSeason, "Failed to read season matches")
		}

		return c.JSON(http.StatusOK, matches)
	}
}
