package actions

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostCaptureRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.POST("/capture", postCaptureHandler(s))
}

func postCaptureHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostCapturePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		res := s.Orchestrator.Capture(c.Request().Context(), action.CaptureRequest{
			ID:     *body.ID,
			Chance: *body.Chance,
			Name:   body.Name,
			Token:  optionalToken(body.Token),
		})

		return Respond(c, res)
	}
}
