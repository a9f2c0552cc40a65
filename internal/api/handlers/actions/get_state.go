package actions

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
)

type stateResponse struct {
	action.State
	Wallet    common.Address `json:"wallet"`
	Connected bool           `json:"connected"`
}

func GetStateRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.GET("/state", getStateHandler(s))
}

func getStateHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		wallet := s.Orchestrator.Wallet()

		return c.JSON(http.StatusOK, stateResponse{
			State:     s.Orchestrator.State(),
			Wallet:    wallet.Address(),
			Connected: wallet.Connected(),
		})
	}
}
