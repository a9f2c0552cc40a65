package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostListEntryPayload post list entry payload
//
// swagger:model postListEntryPayload
type PostListEntryPayload struct {

	// Required: true
	// Minimum: 1
	ID *int64 `json:"id"`

	Image string `json:"image,omitempty"`

	// Required: true
	// Max Length: 64
	// Min Length: 1
	Name *string `json:"name"`
}

// Validate validates this post list entry payload
func (m *PostListEntryPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validatePositiveID("id", m.ID); err != nil {
		res = append(res, err)
	}

	if err := m.validateName(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostListEntryPayload) validateName(_ strfmt.Registry) error {
	if err := validate.Required("name", "body", m.Name); err != nil {
		return err
	}

	if err := validate.MinLength("name", "body", *m.Name, 1); err != nil {
		return err
	}

	if err := validate.MaxLength("name", "body", *m.Name, maxNameLength); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this post list entry payload based on context it is used
func (m *PostListEntryPayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}

// ListEntry list entry
//
// swagger:model listEntry
type ListEntry struct {

	// Required: true
	ID *int64 `json:"id"`

	Image string `json:"image,omitempty"`

	// Required: true
	Name *string `json:"name"`
}

// ListResponse list response
//
// swagger:model listResponse
type ListResponse struct {

	// Required: true
	Capacity *int64 `json:"capacity"`

	// Required: true
	Entries []*ListEntry `json:"entries"`

	// Required: true
	// Enum: [capture comparison]
	Kind *string `json:"kind"`
}

var listResponseKindEnum = []interface{}{"capture", "comparison"}

// Validate validates this list response
func (m *ListResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("capacity", "body", m.Capacity); err != nil {
		res = append(res, err)
	}

	if err := m.validateEntries(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateKind(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *ListResponse) validateEntries(_ strfmt.Registry) error {
	if err := validate.Required("entries", "body", m.Entries); err != nil {
		return err
	}

	if m.Capacity != nil {
		if err := validate.MaxItems("entries", "body", int64(len(m.Entries)), *m.Capacity); err != nil {
			return err
		}
	}

	for _, entry := range m.Entries {
		if entry == nil {
			continue
		}

		if err := validate.Required("entries.id", "body", entry.ID); err != nil {
			return err
		}

		if err := validate.Required("entries.name", "body", entry.Name); err != nil {
			return err
		}
	}

	return nil
}

func (m *ListResponse) validateKind(_ strfmt.Registry) error {
	if err := validate.Required("kind", "body", m.Kind); err != nil {
		return err
	}

	if err := validate.EnumCase("kind", "body", *m.Kind, listResponseKindEnum, true); err != nil {
		return err
	}

	return nil
}
