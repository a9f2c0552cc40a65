package action_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
)

func TestInterpreter(t *testing.T) {
	contracts := chaintest.Contracts(t)
	interpreter, ok := action.InterpreterFor(action.FlowCapture, contracts, chaintest.PlayerAddress)
	require.True(t, ok)
	hash := common.HexToHash("0xabc")

	failed := chaintest.EventLog(t, contracts.UserManagement, "CaptureFailed", map[string]interface{}{
		"user": chaintest.PlayerAddress, "id": big.NewInt(7), "chance": big.NewInt(40), "roll": big.NewInt(12),
	})

	outcome := interpreter.Interpret(chaintest.Receipt(hash, types.ReceiptStatusSuccessful, failed))
	require.Equal(t, action.OutcomeDomainFailure, outcome.Kind)
	assert.Equal(t, big.NewInt(12), outcome.Event.BigInt("roll"))

	assert.Equal(t, action.OutcomeReverted, interpreter.Interpret(chaintest.Receipt(hash, types.ReceiptStatusFailed)).Kind)
	assert.Equal(t, action.OutcomeUnexpected, interpreter.Interpret(chaintest.Receipt(hash, types.ReceiptStatusSuccessful)).Kind)
	assert.Equal(t, action.OutcomeUnexpected, interpreter.Interpret(nil).Kind)

	// the same event from another address is ignored
	spoofed := chaintest.EventLog(t, contracts.UserManagement, "IDAssigned", map[string]interface{}{
		"user": chaintest.PlayerAddress, "id": big.NewInt(7),
	})
	spoofed.Address = chaintest.TokenAddress
	assert.Equal(t, action.OutcomeUnexpected, interpreter.Interpret(chaintest.Receipt(hash, types.ReceiptStatusSuccessful, spoofed)).Kind)
	assert.Equal(t, "unexpected", action.OutcomeUnexpected.String())
}

func TestInterpreterFor(t *testing.T) {
	contracts := chaintest.Contracts(t)

	join, ok := action.InterpreterFor(action.FlowJoin, contracts, chaintest.PlayerAddress)
	require.True(t, ok)
	assert.Equal(t, contracts.BattleManagement, join.Contract)
	assert.Equal(t, "PlayerJoined", join.Success)
	assert.Equal(t, "player", join.SubjectField)

	evolve, ok := action.InterpreterFor(action.FlowEvolve, contracts, chaintest.PlayerAddress)
	require.True(t, ok)
	assert.Empty(t, evolve.Failure)

	_, ok = action.InterpreterFor(action.FlowSubmit, contracts, chaintest.PlayerAddress)
	assert.False(t, ok)
}
