package actions

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostEvolveRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.POST("/evolve", postEvolveHandler(s))
}

func postEvolveHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostEvolvePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		res := s.Orchestrator.Evolve(c.Request().Context(), action.EvolveRequest{
			CurrentID: *body.CurrentID,
			NewID:     *body.NewID,
			Name:      body.Name,
			Token:     optionalToken(body.Token),
		})

		return Respond(c, res)
	}
}
