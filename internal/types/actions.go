package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const maxNameLength = 64

// PostCapturePayload post capture payload
//
// swagger:model postCapturePayload
type PostCapturePayload struct {

	// capture chance in percent, must match the on-chain chance
	// Required: true
	// Maximum: 100
	// Minimum: 1
	Chance *int64 `json:"chance"`

	// moonster id
	// Required: true
	// Minimum: 1
	ID *int64 `json:"id"`

	// display name used in the result URL
	// Max Length: 64
	Name string `json:"name,omitempty"`

	// fee token, defaults to the configured token
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Token string `json:"token,omitempty"`
}

// Validate validates this post capture payload
func (m *PostCapturePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateChance("chance", m.Chance, 1); err != nil {
		res = append(res, err)
	}

	if err := validatePositiveID("id", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validateName(m.Name); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalAddress("token", m.Token); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this post capture payload based on context it is used
func (m *PostCapturePayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// PostEvolvePayload post evolve payload
//
// swagger:model postEvolvePayload
type PostEvolvePayload struct {

	// Required: true
	// Minimum: 1
	CurrentID *int64 `json:"currentId"`

	// Max Length: 64
	Name string `json:"name,omitempty"`

	// Required: true
	// Minimum: 1
	NewID *int64 `json:"newId"`

	// Pattern: ^0x[0-9a-fA-F]{40}$
	Token string `json:"token,omitempty"`
}

// Validate validates this post evolve payload
func (m *PostEvolvePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validatePositiveID("currentId", m.CurrentID); err != nil {
		res = append(res, err)
	}

	if err := validateName(m.Name); err != nil {
		res = append(res, err)
	}

	if err := validatePositiveID("newId", m.NewID); err != nil {
		res = append(res, err)
	}

	if err := validateOptionalAddress("token", m.Token); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this post evolve payload based on context it is used
func (m *PostEvolvePayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// PostJoinBattlePayload post join battle payload
//
// swagger:model postJoinBattlePayload
type PostJoinBattlePayload struct {

	// moonster sent into the round
	// Required: true
	// Minimum: 1
	MoonsterID *int64 `json:"moonsterId"`

	// Max Length: 64
	Name string `json:"name,omitempty"`

	// Required: true
	// Minimum: 1
	RoundID *int64 `json:"roundId"`

	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Token *string `json:"token"`
}

// Validate validates this post join battle payload
func (m *PostJoinBattlePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validatePositiveID("moonsterId", m.MoonsterID); err != nil {
		res = append(res, err)
	}

	if err := validateName(m.Name); err != nil {
		res = append(res, err)
	}

	if err := validatePositiveID("roundId", m.RoundID); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("token", m.Token); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this post join battle payload based on context it is used
func (m *PostJoinBattlePayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// PostBookmarkPayload post bookmark payload
//
// swagger:model postBookmarkPayload
type PostBookmarkPayload struct {

	// Required: true
	// Minimum: 1
	ID *int64 `json:"id"`
}

// Validate validates this post bookmark payload
func (m *PostBookmarkPayload) Validate(formats strfmt.Registry) error {
	if err := validatePositiveID("id", m.ID); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// ContextValidate validates this post bookmark payload based on context it is used
func (m *PostBookmarkPayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// FlowItem flow item
//
// swagger:model flowItem
type FlowItem struct {

	// Format: uuid
	ID strfmt.UUID `json:"id"`

	Flow string `json:"flow"`

	User string `json:"user"`

	TargetIds []int64 `json:"targetIds"`

	TargetName string `json:"targetName,omitempty"`

	Status string `json:"status"`

	FinalStep string `json:"finalStep,omitempty"`

	ApproveTx string `json:"approveTx,omitempty"`

	ActionTx string `json:"actionTx,omitempty"`

	ErrorKind string `json:"errorKind,omitempty"`

	Message string `json:"message,omitempty"`

	// Format: date-time
	CreatedAt strfmt.DateTime `json:"createdAt"`

	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt"`

	Steps []*FlowStepItem `json:"steps,omitempty"`
}

// FlowStepItem flow step item
//
// swagger:model flowStepItem
type FlowStepItem struct {
	Step string `json:"step"`

	TxHash string `json:"txHash,omitempty"`

	// Format: date-time
	CreatedAt strfmt.DateTime `json:"createdAt"`
}

// Validate validates this flow item
func (m *FlowItem) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.FormatOf("id", "body", "uuid", m.ID.String(), formats); err != nil {
		res = append(res, err)
	}

	for i, step := range m.Steps {
		if step == nil {
			continue
		}
		if err := validate.Required("steps."+swag.FormatInt64(int64(i))+".step", "body", step.Step); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// FlowListResponse flow list response
//
// swagger:model flowListResponse
type FlowListResponse struct {

	// Required: true
	Data []*FlowItem `json:"data"`
}

// Validate validates this flow list response
func (m *FlowListResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("data", "body", m.Data); err != nil {
		res = append(res, err)
	}

	for _, item := range m.Data {
		if item == nil {
			continue
		}
		if err := item.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func validateName(name string) error {
	if swag.IsZero(name) {
		return nil
	}

	if err := validate.MaxLength("name", "body", name, maxNameLength); err != nil {
		return err
	}

	return nil
}
