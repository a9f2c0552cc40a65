package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

const (
	AdminOperationCreateRoundMatch        = "createRoundMatch"
	AdminOperationTriggerPairing          = "triggerPairing"
	AdminOperationUpdateResultPairMatch   = "updateResultPairMatch"
	AdminOperationSendRewardMatch         = "sendRewardMatch"
	AdminOperationDistributeSeasonRewards = "distributeSeasonRewards"
	AdminOperationEndSeason               = "endSeason"
)

var postAdminPayloadOperationEnum = []interface{}{
	AdminOperationCreateRoundMatch,
	AdminOperationTriggerPairing,
	AdminOperationUpdateResultPairMatch,
	AdminOperationSendRewardMatch,
	AdminOperationDistributeSeasonRewards,
	AdminOperationEndSeason,
}

// PostAdminPayload post admin payload
//
// Which of the optional fields are required depends on the operation.
//
// swagger:model postAdminPayload
type PostAdminPayload struct {

	// unix seconds
	EndTime int64 `json:"endTime,omitempty"`

	// Minimum: 0
	MatchIndex int64 `json:"matchIndex,omitempty"`

	// Minimum: 0
	MaxPlayers int64 `json:"maxPlayers,omitempty"`

	// Required: true
	// Enum: [createRoundMatch triggerPairing updateResultPairMatch sendRewardMatch distributeSeasonRewards endSeason]
	Operation *string `json:"operation"`

	// Minimum: 0
	RoundID int64 `json:"roundId,omitempty"`

	// Minimum: 0
	SeasonID int64 `json:"seasonId,omitempty"`

	// unix seconds
	StartTime int64 `json:"startTime,omitempty"`

	// Pattern: ^0x[0-9a-fA-F]{40}$
	Winner string `json:"winner,omitempty"`
}

// Validate validates this post admin payload
func (m *PostAdminPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateOperation(formats); err != nil {
		res = append(res, err)
	}

	for path, value := range map[string]int64{
		"matchIndex": m.MatchIndex,
		"maxPlayers": m.MaxPlayers,
		"roundId":    m.RoundID,
		"seasonId":   m.SeasonID,
	} {
		if err := validate.MinimumInt(path, "body", value, 0, false); err != nil {
			res = append(res, err)
		}
	}

	if err := validateOptionalAddress("winner", m.Winner); err != nil {
		res = append(res, err)
	}

	if m.Operation != nil {
		res = append(res, m.validateOperationFields()...)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostAdminPayload) validateOperation(_ strfmt.Registry) error {
	if err := validate.Required("operation", "body", m.Operation); err != nil {
		return err
	}

	if err := validate.EnumCase("operation", "body", *m.Operation, postAdminPayloadOperationEnum, true); err != nil {
		return err
	}

	return nil
}

func (m *PostAdminPayload) validateOperationFields() []error {
	var res []error

	required := func(path string, value interface{}) {
		if err := validate.Required(path, "body", value); err != nil {
			res = append(res, err)
		}
	}

	switch swag.StringValue(m.Operation) {
	case AdminOperationCreateRoundMatch:
		required("seasonId", m.SeasonID)
		required("startTime", m.StartTime)
		required("endTime", m.EndTime)
		required("maxPlayers", m.MaxPlayers)
		if m.EndTime != 0 && m.EndTime <= m.StartTime {
			res = append(res, errors.New(400, "endTime in body must be after startTime"))
		}
	case AdminOperationTriggerPairing:
		required("roundId", m.RoundID)
	case AdminOperationUpdateResultPairMatch:
		required("roundId", m.RoundID)
		required("winner", m.Winner)
	case AdminOperationSendRewardMatch:
		required("roundId", m.RoundID)
	case AdminOperationDistributeSeasonRewards, AdminOperationEndSeason:
		required("seasonId", m.SeasonID)
	}

	return res
}

// ContextValidate validates this post admin payload based on context it is used
func (m *PostAdminPayload) ContextValidate(_ context.Context, _ strfmt.Registry) error {
	return nil
}
