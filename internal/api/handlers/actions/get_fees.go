package actions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

type feesResponse struct {
	Fees  *facade.Fees         `json:"fees"`
	Token *facade.TokenDetails `json:"token"`
}

// GetFeesRoute serves the fees charged in ?token=, the default fee token when absent.
func GetFeesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.GET("/fees", getFeesHandler(s))
}

func getFeesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		token := s.Contracts.DefaultToken
		if raw := c.QueryParam("token"); len(raw) > 0 {
			parsed, err := util.ParseAddress(raw)
			if err != nil {
				return err
			}
			token = parsed
		}

		fees, err := s.Facade.Fees(ctx, token)
		if err != nil {
			log.Error().Err(err).Str("token", token.Hex()).Msg("Failed to read fees")
			return httperrors.ErrBadGatewayChain
		}

		details, err := s.Facade.TokenDetails(ctx, token)
		if err != nil {
			log.Error().Err(err).Str("token", token.Hex()).Msg("Failed to read token details")
			return httperrors.ErrBadGatewayChain
		}

		return c.JSON(http.StatusOK, feesResponse{Fees: fees, Token: details})
	}
}
