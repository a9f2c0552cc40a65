package admin

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/actions"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/httperrors"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// PostAdminRoute runs one owner-only battle or season operation from the player wallet.
// Non-owners are rejected before anything is sent.
func PostAdminRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("", postAdminHandler(s))
}

func postAdminHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostAdminPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		res, err := s.Admin.Run(c.Request().Context(), call(&body))
		if err != nil {
			util.LogFromContext(c.Request().Context()).Error().Err(err).Str("operation", *body.Operation).Msg("Failed to run admin operation")
			return httperrors.ErrBadGatewayChain
		}

		return actions.Respond(c, res)
	}
}

// call assumes body passed validation.
func call(body *types.PostAdminPayload) action.SubmitRequest {
	switch *body.Operation {
	case types.AdminOperationCreateRoundMatch:
		return action.CreateRoundMatchCall(body.SeasonID, body.StartTime, body.EndTime, body.MaxPlayers)
	case types.AdminOperationTriggerPairing:
		return action.TriggerPairingCall(body.RoundID)
	case types.AdminOperationUpdateResultPairMatch:
		return action.UpdateResultPairMatchCall(body.RoundID, body.MatchIndex, common.HexToAddress(body.Winner))
	case types.AdminOperationSendRewardMatch:
		return action.SendRewardMatchCall(body.RoundID, body.MatchIndex)
	case types.AdminOperationDistributeSeasonRewards:
		return action.DistributeSeasonRewardsCall(body.SeasonID)
	default:
		return action.EndSeasonCall(body.SeasonID)
	}
}
