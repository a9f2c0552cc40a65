package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const txHashPattern = `^0x[0-9a-fA-F]{64}$`

var actionResultFlowEnum = []interface{}{"capture", "evolve", "join", "submit"}

var actionResultStatusEnum = []interface{}{"succeeded", "failed", "rejected", "busy", "ignored"}

// ActionResult action result
//
// How a capture, evolve, join or plain contract call flow ended.
//
// swagger:model actionResult
type ActionResult struct {

	// journal id, absent when the flow was not journaled
	// Format: uuid
	FlowID strfmt.UUID `json:"flowId,omitempty"`

	// Required: true
	// Enum: [capture evolve join submit]
	Flow *string `json:"flow"`

	Name string `json:"name"`

	// Required: true
	// Enum: [succeeded failed rejected busy ignored]
	Status *string `json:"status"`

	// Required: true
	Step *string `json:"step"`

	// steps the flow passed through
	Steps []string `json:"steps"`

	// Pattern: ^0x[0-9a-fA-F]{64}$
	ApproveTx string `json:"approveTx,omitempty"`

	// Pattern: ^0x[0-9a-fA-F]{64}$
	ActionTx string `json:"actionTx,omitempty"`

	// error kind of failed and rejected flows
	Kind string `json:"kind,omitempty"`

	// localized user message
	Message string `json:"message,omitempty"`

	// result page the flow navigated to
	URL string `json:"url,omitempty"`
}

// Validate validates this action result
func (m *ActionResult) Validate(formats strfmt.Registry) error {
	var res []error

	if !swag.IsZero(m.FlowID) {
		if err := validate.FormatOf("flowId", "body", "uuid", m.FlowID.String(), formats); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("flow", "body", m.Flow); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("flow", "body", *m.Flow, actionResultFlowEnum, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("status", "body", *m.Status, actionResultStatusEnum, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("step", "body", m.Step); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalTxHash("approveTx", m.ApproveTx); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalTxHash("actionTx", m.ActionTx); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this action result based on context it is used
func (m *ActionResult) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

func validateOptionalTxHash(path string, value string) error {
	if swag.IsZero(value) {
		return nil
	}

	if err := validate.Pattern(path, "body", value, txHashPattern); err != nil {
		return err
	}

	return nil
}
