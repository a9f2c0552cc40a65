package action_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
)

func TestIsTransitionAllowed(t *testing.T) {
	allowed := [][2]action.Step{
		{action.StepIdle, action.StepApproveCapture},
		{action.StepApproveCapture, action.StepCapture},
		{action.StepCapture, action.StepCaptureDone},
		{action.StepIdle, action.StepEvolve},
		{action.StepEvolve, action.StepEvolveFail},
		{action.StepEvolve, action.StepEvolveDone},
		{action.StepApproveJoin, action.StepJoin},
		{action.StepJoinDone, action.StepIdle},
		{action.StepApproveEvolution, action.StepIdle},
	}
	for _, tr := range allowed {
		assert.True(t, action.IsTransitionAllowed(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]action.Step{
		{action.StepIdle, action.StepCaptureDone},
		{action.StepApproveCapture, action.StepJoin},
		{action.StepCapture, action.StepApproveCapture},
		{action.StepCaptureDone, action.StepCapture},
		{action.StepApproveEvolution, action.StepEvolveFail},
		{action.StepJoin, action.StepEvolveDone},
	}
	for _, tr := range denied {
		assert.False(t, action.IsTransitionAllowed(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestStepText(t *testing.T) {
	data, err := json.Marshal(struct {
		Step action.Step `json:"step"`
	}{action.StepApproveEvolution})
	require.NoError(t, err)
	assert.JSONEq(t, `{"step":"approveEvolution"}`, string(data))

	var step action.Step
	require.NoError(t, step.UnmarshalText([]byte("joinDone")))
	assert.Equal(t, action.StepJoinDone, step)
	assert.Error(t, step.UnmarshalText([]byte("flying")))
	assert.Equal(t, "unknown", action.Step(99).String())
}

func TestResultURLs(t *testing.T) {
	assert.Equal(t, "/capture-result/Flarepup?hash=0xabc", action.SuccessURL(action.FlowCapture, "Flarepup", "0xabc"))
	assert.Equal(t, "/evolve-result/Mr.%20Mime?hash=0x1", action.SuccessURL(action.FlowEvolve, "Mr. Mime", "0x1"))
	assert.Equal(t, "/join-result/Aquabun?error=It's%20(not)%20done!%20%26%20*", action.ErrorURL(action.FlowJoin, "Aquabun", "It's (not) done! & *"))
}
