package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
)

func TestCallsPackAgainstContracts(t *testing.T) {
	contracts := chaintest.Contracts(t)

	calls := []action.SubmitRequest{
		action.BookmarkCall(7),
		action.RemoveBookmarkCall(7),
		action.CreateRoundMatchCall(1, 1700000000, 1700003600, 8),
		action.TriggerPairingCall(3),
		action.UpdateResultPairMatchCall(3, 0, chaintest.PlayerAddress),
		action.SendRewardMatchCall(3, 0),
		action.DistributeSeasonRewardsCall(1),
		action.EndSeasonCall(1),
	}

	for _, call := range calls {
		t.Run(call.Method, func(t *testing.T) {
			contract, err := contracts.ByName(call.Contract)
			require.NoError(t, err)

			data, err := contract.Pack(call.Method, call.Args...)
			require.NoError(t, err)
			assert.Equal(t, contract.ABI.Methods[call.Method].ID, data[:4])
			assert.NotEmpty(t, call.Label)
		})
	}
}

func TestSubmitBookmark(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.approveReceipt())

	res := h.orch.Submit(t.Context(), action.BookmarkCall(7))

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	assert.Equal(t, "#7", res.Name)
	assert.Equal(t, []string{"bookmarkPokemon"}, h.sentMethods())
	assert.Empty(t, res.Steps)
}
