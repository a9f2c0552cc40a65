package actions

import (
	"errors"
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/journal"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// GetFlowsRoute lists journaled flows of ?user=, the player wallet when absent.
// Supports ?q= (target name search), ?limit= and ?offset=.
func GetFlowsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.GET("/flows", getFlowsHandler(s))
}

func getFlowsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.Journal == nil {
			return httperrors.ErrServiceUnavailableJournal
		}

		user := s.Wallet.Address()
		if raw := c.QueryParam("user"); len(raw) > 0 {
			parsed, err := util.ParseAddress(raw)
			if err != nil {
				return err
			}
			user = parsed
		}

		flows, err := s.Journal.List(c.Request().Context(), journal.ListParams{
			User:   user,
			Query:  c.QueryParam("q"),
			Limit:  util.QueryInt(c, "limit", journal.DefaultListLimit),
			Offset: util.QueryInt(c, "offset", 0),
		})
		if err != nil {
			util.LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to list flows")
			return err
		}

		response := &types.FlowListResponse{Data: make([]*types.FlowItem, 0, len(flows))}
		for _, flow := range flows {
			response.Data = append(response.Data, flowItem(flow, nil))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

func GetFlowRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.GET("/flows/:id", getFlowHandler(s))
}

func getFlowHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.Journal == nil {
			return httperrors.ErrServiceUnavailableJournal
		}

		flow, steps, err := s.Journal.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, journal.ErrNotFound) {
				return httperrors.ErrNotFoundFlow
			}

			util.LogFromContext(c.Request().Context()).Error().Err(err).Msg("Failed to load flow")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, flowItem(flow, steps))
	}
}

func flowItem(flow *journal.Flow, steps []*journal.Step) *types.FlowItem {
	item := &types.FlowItem{
		ID:         strfmt.UUID(flow.ID),
		Flow:       flow.Flow,
		User:       flow.UserAddress,
		TargetIds:  []int64(flow.TargetIDs),
		TargetName: flow.TargetName,
		Status:     flow.Status,
		FinalStep:  flow.FinalStep.String,
		ApproveTx:  flow.ApproveTx.String,
		ActionTx:   flow.ActionTx.String,
		ErrorKind:  flow.ErrorKind.String,
		Message:    flow.Message.String,
		CreatedAt:  strfmt.DateTime(flow.CreatedAt),
		UpdatedAt:  strfmt.DateTime(flow.UpdatedAt),
	}

	if item.TargetIds == nil {
		item.TargetIds = []int64{}
	}

	for _, step := range steps {
		item.Steps = append(item.Steps, &types.FlowStepItem{
			Step:      step.Step,
			TxHash:    step.TxHash.String,
			CreatedAt: strfmt.DateTime(step.CreatedAt),
		})
	}

	return item
}
