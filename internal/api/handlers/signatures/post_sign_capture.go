package signatures

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostSignCaptureRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Signatures.POST("/capture", postSignCaptureHandler(s))
}

func postSignCaptureHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostSignCapturePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := allow(s, *body.User); err != nil {
			return err
		}

		signed, err := s.Signer.SignCapture(ctx, signature.CaptureRequest{
			User:   *body.User,
			Token:  *body.Token,
			Chance: *body.Chance,
			ID:     *body.ID,
		})

		return respond(c, signed, err)
	}
}
