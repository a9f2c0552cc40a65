package actions

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// StatusCode maps the outcome of a flow to the HTTP status of its response. Succeeded and failed flows
// both ran, so they answer 200 and carry the outcome in the body.
func StatusCode(status action.Status) int {
	switch status {
	case action.StatusSucceeded, action.StatusFailed:
		return http.StatusOK
	case action.StatusRejected:
		return http.StatusUnprocessableEntity
	case action.StatusBusy, action.StatusIgnored:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes res as a validated types.ActionResult with the status of StatusCode.
func Respond(c echo.Context, res *action.Result) error {
	return util.ValidateAndReturn(c, StatusCode(res.Status), ResultToType(res))
}

func ResultToType(res *action.Result) *types.ActionResult {
	steps := make([]string, 0, len(res.Steps))
	for _, step := range res.Steps {
		steps = append(steps, step.String())
	}

	out := &types.ActionResult{
		FlowID:  strfmt.UUID(res.FlowID),
		Flow:    swag.String(string(res.Flow)),
		Name:    res.Name,
		Status:  swag.String(string(res.Status)),
		Step:    swag.String(res.Step.String()),
		Steps:   steps,
		Kind:    string(res.Kind),
		Message: res.Message,
		URL:     res.URL,
	}

	if res.ApproveTx != nil {
		out.ApproveTx = res.ApproveTx.Hex()
	}
	if res.ActionTx != nil {
		out.ActionTx = res.ActionTx.Hex()
	}

	return out
}

func optionalToken(token string) common.Address {
	if len(token) == 0 {
		return common.Address{}
	}

	return common.HexToAddress(token)
}
