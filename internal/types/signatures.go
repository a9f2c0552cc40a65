package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const (
	addressPattern   = `^0x[0-9a-fA-F]{40}$`
	signaturePattern = `^0x[0-9a-fA-F]{130}$`
	maxChance        = 100
)

// PostSignCapturePayload post sign capture payload
//
// swagger:model postSignCapturePayload
type PostSignCapturePayload struct {

	// capture chance in percent
	// Required: true
	// Maximum: 100
	// Minimum: 0
	Chance *int64 `json:"chance"`

	// moonster id
	// Required: true
	// Minimum: 1
	ID *int64 `json:"id"`

	// fee token address
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Token *string `json:"token"`

	// player address
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	User *string `json:"user"`
}

// Validate validates this post sign capture payload
func (m *PostSignCapturePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validateChance("chance", m.Chance, 0); err != nil {
		res = append(res, err)
	}

	if err := validatePositiveID("id", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("token", m.Token); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("user", m.User); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this post sign capture payload based on context it is used
func (m *PostSignCapturePayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *PostSignCapturePayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostSignCapturePayload) UnmarshalBinary(b []byte) error {
	var res PostSignCapturePayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// PostSignEvolvePayload post sign evolve payload
//
// swagger:model postSignEvolvePayload
type PostSignEvolvePayload struct {

	// id of the moonster that evolves
	// Required: true
	// Minimum: 1
	CurrentID *int64 `json:"currentId"`

	// id of the evolved moonster
	// Required: true
	// Minimum: 1
	NewID *int64 `json:"newId"`

	// fee token address
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Token *string `json:"token"`

	// player address
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	User *string `json:"user"`
}

// Validate validates this post sign evolve payload
func (m *PostSignEvolvePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validatePositiveID("currentId", m.CurrentID); err != nil {
		res = append(res, err)
	}

	if err := validatePositiveID("newId", m.NewID); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("token", m.Token); err != nil {
		res = append(res, err)
	}

	if err := validateAddress("user", m.User); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this post sign evolve payload based on context it is used
func (m *PostSignEvolvePayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// SignatureResponse signature response
//
// swagger:model signatureResponse
type SignatureResponse struct {

	// 65 byte EIP-191 signature, v in {27, 28}
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{130}$
	Signature *string `json:"signature"`

	// unix seconds the signature is bound to
	// Required: true
	Timestamp *int64 `json:"timestamp"`
}

// Validate validates this signature response
func (m *SignatureResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateSignature(formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("timestamp", "body", m.Timestamp); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *SignatureResponse) validateSignature(_ strfmt.Registry) error {
	if err := validate.Required("signature", "body", m.Signature); err != nil {
		return err
	}

	if err := validate.Pattern("signature", "body", *m.Signature, signaturePattern); err != nil {
		return err
	}

	return nil
}

func validateAddress(path string, value *string) error {
	if err := validate.Required(path, "body", value); err != nil {
		return err
	}

	if err := validate.Pattern(path, "body", *value, addressPattern); err != nil {
		return err
	}

	return nil
}

func validateOptionalAddress(path string, value string) error {
	if swag.IsZero(value) {
		return nil
	}

	if err := validate.Pattern(path, "body", value, addressPattern); err != nil {
		return err
	}

	return nil
}

func validatePositiveID(path string, value *int64) error {
	if err := validate.Required(path, "body", value); err != nil {
		return err
	}

	if err := validate.MinimumInt(path, "body", *value, 1, false); err != nil {
		return err
	}

	return nil
}

func validateChance(path string, value *int64, minimum int64) error {
	if err := validate.Required(path, "body", value); err != nil {
		return err
	}

	if err := validate.MinimumInt(path, "body", *value, minimum, false); err != nil {
		return err
	}

	if err := validate.MaximumInt(path, "body", *value, maxChance, false); err != nil {
		return err
	}

	return nil
}
