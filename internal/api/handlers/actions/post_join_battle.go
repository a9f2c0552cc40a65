package actions

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostJoinBattleRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.POST("/join", postJoinBattleHandler(s))
}

func postJoinBattleHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostJoinBattlePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		res := s.Orchestrator.JoinBattle(c.Request().Context(), action.JoinRequest{
			RoundID:    *body.RoundID,
			MoonsterID: *body.MoonsterID,
			Token:      common.HexToAddress(*body.Token),
			Name:       body.Name,
		})

		return Respond(c, res)
	}
}
