package battles

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// roundView is the battle round page: the round, its roster and the recap.
type roundView struct {
	Round *facade.BattleRound `json:"round"`
	Info  *facade.RoundInfo   `json:"info"`
	Recap *facade.RoundRecap  `json:"recap"`
	Full  bool                `json:"full"`
}

func GetRoundRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Rounds.GET("/:id", getRoundHandler(s))
}

func getRoundHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		round, err := s.Facade.BattleRound(ctx, id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundRound, "Failed to read battle round")
		}

		info, err := s.Facade.RoundInfo(ctx, id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundRound, "Failed to read round info")
		}

		recap, err := s.Facade.RoundRecap(ctx, id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundRound, "Failed to read round recap")
		}

		return c.JSON(http.StatusOK, roundView{
			Round: round,
			Info:  info,
			Recap: recap,
			Full:  round.Full(),
		})
	}
}

func GetRoundMatchesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Rounds.GET("/:id/matches", getRoundMatchesHandler(s))
}

func getRoundMatchesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		matches, err := s.Facade.PairMatches(c.Request().Context(), id)
		if err != nil {
			return readError(c, err, httperrors.ErrNotFoundRound, "Failed to read round matches")
		}

		return c.JSON(http.StatusOK, matches)
	}
}
