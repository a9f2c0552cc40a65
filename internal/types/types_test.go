package types_test

import (
	"testing"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
)

const (
	user  = "0x3000000000000000000000000000000000000001"
	token = "0x2000000000000000000000000000000000000001"
)

func validationNames(t *testing.T, err error) []string {
	t.Helper()

	var composite *oerrors.CompositeError
	require.ErrorAs(t, err, &composite)

	names := []string{}
	for _, e := range composite.Errors {
		var validation *oerrors.Validation
		if assert.ErrorAs(t, e, &validation) {
			names = append(names, validation.Name)
		}
	}

	return names
}

func TestPostSignCapturePayload(t *testing.T) {
	valid := &types.PostSignCapturePayload{
		User:   swag.String(user),
		Token:  swag.String(token),
		Chance: swag.Int64(0),
		ID:     swag.Int64(7),
	}
	require.NoError(t, valid.Validate(strfmt.Default))

	invalid := &types.PostSignCapturePayload{
		User:   swag.String("0x123"),
		Chance: swag.Int64(101),
		ID:     swag.Int64(0),
	}
	err := invalid.Validate(strfmt.Default)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"chance", "id", "token", "user"}, validationNames(t, err))
}

func TestPostSignCapturePayloadBinaryRoundTrip(t *testing.T) {
	payload := &types.PostSignCapturePayload{
		User:   swag.String(user),
		Token:  swag.String(token),
		Chance: swag.Int64(40),
		ID:     swag.Int64(7),
	}

	b, err := payload.MarshalBinary()
	require.NoError(t, err)

	var decoded types.PostSignCapturePayload
	require.NoError(t, decoded.UnmarshalBinary(b))
	assert.Equal(t, payload, &decoded)
}

func TestPostCapturePayloadRequiresPositiveChance(t *testing.T) {
	payload := &types.PostCapturePayload{
		ID:     swag.Int64(7),
		Chance: swag.Int64(0),
		Name:   "Flarepup",
	}

	err := payload.Validate(strfmt.Default)
	require.Error(t, err)
	assert.Equal(t, []string{"chance"}, validationNames(t, err))

	payload.Chance = swag.Int64(40)
	assert.NoError(t, payload.Validate(strfmt.Default))

	payload.Token = "token"
	assert.Error(t, payload.Validate(strfmt.Default))
}

func TestPostJoinBattlePayloadRequiresToken(t *testing.T) {
	payload := &types.PostJoinBattlePayload{
		RoundID:    swag.Int64(3),
		MoonsterID: swag.Int64(9),
		Name:       "Aquabun",
	}

	err := payload.Validate(strfmt.Default)
	require.Error(t, err)
	assert.Equal(t, []string{"token"}, validationNames(t, err))
}

func TestListResponseRejectsOverfullList(t *testing.T) {
	res := &types.ListResponse{
		Kind:     swag.String("comparison"),
		Capacity: swag.Int64(2),
		Entries: []*types.ListEntry{
			{ID: swag.Int64(1), Name: swag.String("a")},
			{ID: swag.Int64(2), Name: swag.String("b")},
		},
	}
	require.NoError(t, res.Validate(strfmt.Default))

	res.Entries = append(res.Entries, &types.ListEntry{ID: swag.Int64(3), Name: swag.String("c")})
	assert.Error(t, res.Validate(strfmt.Default))

	res.Entries = res.Entries[:1]
	res.Kind = swag.String("favorites")
	assert.Error(t, res.Validate(strfmt.Default))
}

func TestPostAdminPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload types.PostAdminPayload
		valid   bool
	}{
		{"trigger pairing", types.PostAdminPayload{Operation: swag.String(types.AdminOperationTriggerPairing), RoundID: 3}, true},
		{"trigger pairing without round", types.PostAdminPayload{Operation: swag.String(types.AdminOperationTriggerPairing)}, false},
		{"update result", types.PostAdminPayload{Operation: swag.String(types.AdminOperationUpdateResultPairMatch), RoundID: 3, Winner: user}, true},
		{"update result without winner", types.PostAdminPayload{Operation: swag.String(types.AdminOperationUpdateResultPairMatch), RoundID: 3}, false},
		{"create round", types.PostAdminPayload{Operation: swag.String(types.AdminOperationCreateRoundMatch), SeasonID: 1, StartTime: 10, EndTime: 20, MaxPlayers: 8}, true},
		{"create round ends before start", types.PostAdminPayload{Operation: swag.String(types.AdminOperationCreateRoundMatch), SeasonID: 1, StartTime: 20, EndTime: 10, MaxPlayers: 8}, false},
		{"end season", types.PostAdminPayload{Operation: swag.String(types.AdminOperationEndSeason), SeasonID: 1}, true},
		{"unknown operation", types.PostAdminPayload{Operation: swag.String("selfDestruct")}, false},
		{"negative round", types.PostAdminPayload{Operation: swag.String(types.AdminOperationSendRewardMatch), RoundID: -1}, false},
		{"missing operation", types.PostAdminPayload{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate(strfmt.Default)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestActionResult(t *testing.T) {
	valid := &types.ActionResult{
		FlowID:   strfmt.UUID("6f1c2a4e-2d8b-4b8e-9a57-3c1f0d9e7a21"),
		Flow:     swag.String("capture"),
		Name:     "Flarepup",
		Status:   swag.String("succeeded"),
		Step:     swag.String("idle"),
		Steps:    []string{"approveCapture", "capture", "captureDone", "idle"},
		ActionTx: "0xabc0000000000000000000000000000000000000000000000000000000000001",
	}
	require.NoError(t, valid.Validate(strfmt.Default))

	rejected := &types.ActionResult{
		Flow:   swag.String("join"),
		Status: swag.String("rejected"),
		Step:   swag.String("idle"),
		Kind:   "wallet-not-connected",
	}
	require.NoError(t, rejected.Validate(strfmt.Default))

	invalid := &types.ActionResult{
		FlowID:    strfmt.UUID("not-a-uuid"),
		Flow:      swag.String("withdraw"),
		Status:    swag.String("pending"),
		ApproveTx: "0x123",
	}
	err := invalid.Validate(strfmt.Default)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"flowId", "flow", "status", "step", "approveTx"}, validationNames(t, err))
}
