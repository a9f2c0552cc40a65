package action_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
)

func TestCaptureSuccessNavigatesWithHash(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.idAssigned(7))

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	require.NotNil(t, res.ActionTx)
	assert.Nil(t, res.ApproveTx)
	assert.Equal(t, "/capture-result/Flarepup?hash="+res.ActionTx.Hex(), res.URL)
	assert.Equal(t, []string{res.URL}, h.ui.navigations)
	assert.Equal(t, action.StepCaptureDone, res.Step)
	assert.Equal(t, []action.Step{action.StepCapture, action.StepCaptureDone, action.StepIdle}, res.Steps)
	assert.Equal(t, "IDAssigned", res.Event.Name)

	assert.Equal(t, []string{"payAndAssignId"}, h.sentMethods())
	assert.Equal(t, []string{"user:" + chaintest.PlayerAddress.Hex()}, h.reads.invalidated)

	state := h.orch.State()
	assert.Equal(t, action.StepIdle, state.Step)
	assert.Nil(t, state.Pending.Hash)
	assert.False(t, state.Busy)
}

func TestCaptureSignsRequestedParameters(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.idAssigned(7))

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})
	require.True(t, res.Succeeded())

	sent := h.wallet.Sent()
	require.Len(t, sent, 1)

	method, err := h.contracts.UserManagement.ABI.MethodById(sent[0].Data[:4])
	require.NoError(t, err)
	args, err := method.Inputs.Unpack(sent[0].Data[4:])
	require.NoError(t, err)

	assert.Equal(t, chaintest.TokenAddress, args[0])
	assert.Equal(t, big.NewInt(40), args[1])
	assert.Equal(t, big.NewInt(7), args[2])

	timestamp, ok := args[3].(*big.Int)
	require.True(t, ok)
	sig, ok := args[4].([]byte)
	require.True(t, ok)
	require.Len(t, sig, 65)

	_, err = signature.VerifyCapture(signature.CaptureRequest{
		User:   chaintest.PlayerAddress.Hex(),
		Token:  chaintest.TokenAddress.Hex(),
		Chance: 40,
		ID:     7,
	}, signature.SignedAction{Signature: sig, Timestamp: timestamp.Int64()})
	require.NoError(t, err)
}

func TestCaptureMissNavigatesWithError(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.captureFailed(7, 40, 12))

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	require.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindCaptureMissed, res.Kind)
	assert.Equal(t, "Capture failed: target chance 40% but rolled 12.", res.Message)
	assert.Equal(t, "/capture-result/Flarepup?error=Capture%20failed%3A%20target%20chance%2040%25%20but%20rolled%2012.", res.URL)
	assert.True(t, strings.HasPrefix(res.URL, "/capture-result/Flarepup?error=Capture%20failed%3A%20target%20chance%2040%25%20"))
	assert.Equal(t, []string{res.URL}, h.ui.navigations)
	assert.Equal(t, []action.Step{action.StepCapture, action.StepIdle}, res.Steps)
	assert.Empty(t, h.reads.invalidated)
	assert.Equal(t, action.StepIdle, h.orch.State().Step)
}

func TestCaptureSuccessWinsOverFailureEvent(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(func(hash common.Hash) *types.Receipt {
		return chaintest.Receipt(hash, types.ReceiptStatusSuccessful,
			chaintest.EventLog(t, h.contracts.UserManagement, "CaptureFailed", map[string]interface{}{
				"user": chaintest.PlayerAddress, "id": big.NewInt(7), "chance": big.NewInt(40), "roll": big.NewInt(90),
			}),
			chaintest.EventLog(t, h.contracts.UserManagement, "IDAssigned", map[string]interface{}{
				"user": chaintest.PlayerAddress, "id": big.NewInt(7),
			}),
		)
	})

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})
	assert.Equal(t, action.StatusSucceeded, res.Status)
}

func TestCaptureWithoutExpectedEventIsUnexpected(t *testing.T) {
	h := newHarness(t)
	// IDAssigned for another player does not count
	h.receipts.Then(h.eventReceipt(h.contracts.UserManagement, "IDAssigned", map[string]interface{}{
		"user": common.HexToAddress("0x4000000000000000000000000000000000000009"),
		"id":   big.NewInt(7),
	}))

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	assert.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindUnexpectedOutcome, res.Kind)
	assert.Contains(t, res.URL, "?error=")
}

func TestCaptureChanceMismatchAbortsBeforeWrites(t *testing.T) {
	h := newHarness(t)
	h.reads.chance = 35
	h.reads.allowance = big.NewInt(0)

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	assert.Equal(t, action.StatusRejected, res.Status)
	assert.Equal(t, action.KindChanceMismatch, res.Kind)
	assert.Empty(t, h.wallet.Sent())
	assert.Empty(t, h.ui.navigations)
	assert.Empty(t, res.Steps)
	assert.Zero(t, h.reads.calls["Allowance"])
	require.Len(t, h.ui.Toasts(), 1)
	assert.Equal(t, action.ToastError, h.ui.Toasts()[0].Level)
}

func TestApproveOnlyWhenAllowanceBelowFee(t *testing.T) {
	h := newHarness(t)
	h.reads.allowance = big.NewInt(99)
	h.receipts.Then(h.approveReceipt()).Then(h.idAssigned(7))

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	require.NotNil(t, res.ApproveTx)
	assert.Equal(t, []string{"approve", "payAndAssignId"}, h.sentMethods())
	assert.Equal(t, chaintest.TokenAddress, h.wallet.Sent()[0].To)
	assert.Equal(t, []action.Step{
		action.StepApproveCapture,
		action.StepCapture,
		action.StepCaptureDone,
		action.StepIdle,
	}, res.Steps)

	method, err := h.contracts.ERC20(chaintest.TokenAddress).ABI.MethodById(h.wallet.Sent()[0].Data[:4])
	require.NoError(t, err)
	args, err := method.Inputs.Unpack(h.wallet.Sent()[0].Data[4:])
	require.NoError(t, err)
	assert.Equal(t, chaintest.UserManagementAddress, args[0])
	assert.Equal(t, big.NewInt(100), args[1])
}

func TestRevertedApprovalStopsFlow(t *testing.T) {
	h := newHarness(t)
	h.reads.allowance = big.NewInt(0)
	h.receipts.Then(func(hash common.Hash) *types.Receipt {
		return chaintest.Receipt(hash, types.ReceiptStatusFailed)
	})

	res := h.orch.JoinBattle(context.Background(), action.JoinRequest{RoundID: 3, MoonsterID: 9, Name: "Aquabun"})

	assert.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindReverted, res.Kind)
	assert.Equal(t, []string{"approve"}, h.sentMethods())
	assert.Equal(t, []action.Step{action.StepApproveJoin, action.StepIdle}, res.Steps)
	assert.Equal(t, action.StepApproveJoin, res.Step)
}

func TestJoinBattleDisconnectedMakesNoCalls(t *testing.T) {
	h := newHarness(t)
	h.wallet.connected = false

	res := h.orch.JoinBattle(context.Background(), action.JoinRequest{
		RoundID:    3,
		MoonsterID: 9,
		Token:      chaintest.TokenAddress,
		Name:       "Aquabun",
	})

	assert.Equal(t, action.StatusRejected, res.Status)
	assert.Equal(t, action.KindWalletNotConnected, res.Kind)
	require.Len(t, h.ui.Toasts(), 1)
	assert.True(t, strings.HasPrefix(h.ui.Toasts()[0].Message, "Please connect your wallet"))

	assert.Zero(t, h.wallet.chainIDCalls)
	assert.Zero(t, h.reads.Calls())
	assert.Zero(t, h.receipts.polls)
	assert.Empty(t, h.wallet.Sent())
	assert.Empty(t, h.ui.navigations)
}

func TestJoinBattleSuccess(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.eventReceipt(h.contracts.BattleManagement, "PlayerJoined", map[string]interface{}{
		"roundId":   big.NewInt(3),
		"player":    chaintest.PlayerAddress,
		"pokemonId": big.NewInt(9),
	}))

	res := h.orch.JoinBattle(context.Background(), action.JoinRequest{RoundID: 3, MoonsterID: 9, Name: "Aquabun"})

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	assert.Equal(t, "/join-result/Aquabun?hash="+res.ActionTx.Hex(), res.URL)
	assert.Equal(t, chaintest.BattleManagementAddress, h.wallet.Sent()[0].To)
	assert.Equal(t, []string{"joinBattle"}, h.sentMethods())
}

func TestJoinBattleRevertReasonIsClassified(t *testing.T) {
	h := newHarness(t)
	h.wallet.sendErr = errors.New("transaction simulation failed: execution reverted: Round is full")

	res := h.orch.JoinBattle(context.Background(), action.JoinRequest{RoundID: 3, MoonsterID: 9, Name: "Aquabun"})

	assert.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindRoundFull, res.Kind)
	assert.Equal(t, "/join-result/Aquabun?error=Round%20is%20full.%20Please%20join%20another%20round.", res.URL)
	assert.Equal(t, action.StepIdle, h.orch.State().Step)
}

func TestPreconditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *harness)
		req    action.CaptureRequest
		kind   action.ErrorKind
	}{
		{"wrong network", func(h *harness) { h.wallet.chainID = 1 }, action.CaptureRequest{ID: 7, Chance: 40}, action.KindWrongNetwork},
		{"zero id", func(*harness) {}, action.CaptureRequest{ID: 0, Chance: 40}, action.KindInvalidInput},
		{"negative chance", func(*harness) {}, action.CaptureRequest{ID: 7, Chance: -1}, action.KindInvalidInput},
		{"fee unavailable", func(h *harness) { h.reads.feesErr = errors.New("rpc down") }, action.CaptureRequest{ID: 7, Chance: 40}, action.KindFeeUnavailable},
		{"token not accepted", func(h *harness) { h.reads.details.Accepted = false }, action.CaptureRequest{ID: 7, Chance: 40}, action.KindTokenNotAccepted},
		{"insufficient balance", func(h *harness) { h.reads.balance = big.NewInt(99) }, action.CaptureRequest{ID: 7, Chance: 40}, action.KindInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.mutate(h)

			res := h.orch.Capture(context.Background(), tt.req)

			assert.Equal(t, action.StatusRejected, res.Status)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Empty(t, h.wallet.Sent())
			assert.Empty(t, h.ui.navigations)
			assert.Equal(t, action.StepIdle, h.orch.State().Step)
		})
	}
}

func TestEvolveFailurePassesThroughFailStep(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(func(hash common.Hash) *types.Receipt {
		return chaintest.Receipt(hash, types.ReceiptStatusSuccessful)
	})

	res := h.orch.Evolve(context.Background(), action.EvolveRequest{CurrentID: 4, NewID: 5, Name: "Blazehound"})

	assert.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindUnexpectedOutcome, res.Kind)
	assert.Equal(t, action.StepEvolveFail, res.Step)
	assert.Equal(t, []action.Step{action.StepEvolve, action.StepEvolveFail, action.StepIdle}, res.Steps)
	assert.Empty(t, res.URL)
	assert.Empty(t, h.ui.navigations)
	assert.False(t, h.orch.State().Evolving)
}

func TestEvolveSuccessInvalidatesCaches(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.eventReceipt(h.contracts.UserManagement, "PokemonEvolved", map[string]interface{}{
		"user":  chaintest.PlayerAddress,
		"oldId": big.NewInt(4),
		"newId": big.NewInt(5),
	}))

	res := h.orch.Evolve(context.Background(), action.EvolveRequest{CurrentID: 4, NewID: 5, Name: "Blazehound"})

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	assert.Equal(t, "/evolve-result/Blazehound?hash="+res.ActionTx.Hex(), res.URL)
	assert.Equal(t, []string{"payAndEvolve"}, h.sentMethods())
	assert.ElementsMatch(t, []string{"user:" + chaintest.PlayerAddress.Hex(), "evolution:4", "evolution:5"}, h.reads.invalidated)
}

func TestReceiptTimeoutIsFailure(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(nil)

	res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})

	assert.Equal(t, action.StatusFailed, res.Status)
	assert.Equal(t, action.KindReceiptTimeout, res.Kind)
	assert.NotNil(t, res.ActionTx)
	assert.Nil(t, h.orch.State().Pending.Hash)
}

func TestEvolveReentryIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness(t)
	h.wallet.entered = make(chan struct{})
	h.wallet.release = make(chan struct{})
	h.receipts.Then(h.eventReceipt(h.contracts.UserManagement, "PokemonEvolved", map[string]interface{}{
		"user":  chaintest.PlayerAddress,
		"oldId": big.NewInt(4),
		"newId": big.NewInt(5),
	}))

	req := action.EvolveRequest{CurrentID: 4, NewID: 5, Name: "Blazehound"}

	done := make(chan *action.Result)
	go func() {
		done <- h.orch.Evolve(context.Background(), req)
	}()

	<-h.wallet.entered
	require.True(t, h.orch.State().Evolving)
	readsBefore := h.reads.Calls()

	second := h.orch.Evolve(context.Background(), req)
	assert.Equal(t, action.StatusIgnored, second.Status)
	assert.Equal(t, readsBefore, h.reads.Calls())

	busy := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})
	assert.Equal(t, action.StatusBusy, busy.Status)

	close(h.wallet.release)
	first := <-done

	assert.Equal(t, action.StatusSucceeded, first.Status, first.Message)
	assert.Len(t, h.wallet.Sent(), 1)
	assert.False(t, h.orch.State().Evolving)

	// a toast for the busy capture, none for the ignored evolve
	errorToasts := 0
	for _, toast := range h.ui.Toasts() {
		if toast.Level == action.ToastError {
			errorToasts++
		}
	}
	assert.Equal(t, 1, errorToasts)
}

func TestSubmit(t *testing.T) {
	h := newHarness(t)
	h.receipts.Then(h.approveReceipt())

	res := h.orch.Submit(context.Background(), action.SubmitRequest{
		Contract: "userManagement",
		Method:   "bookmarkPokemon",
		Args:     []interface{}{big.NewInt(7)},
	})

	require.Equal(t, action.StatusSucceeded, res.Status, res.Message)
	assert.Equal(t, "bookmarkPokemon", res.Name)
	assert.Equal(t, []string{"bookmarkPokemon"}, h.sentMethods())
	assert.Empty(t, res.Steps)

	bad := h.orch.Submit(context.Background(), action.SubmitRequest{Contract: "nope", Method: "x"})
	assert.Equal(t, action.StatusRejected, bad.Status)
	assert.Equal(t, action.KindInvalidInput, bad.Kind)

	h.wallet.sendErr = errors.New("execution reverted: Ownable: caller is not the owner")
	denied := h.orch.Submit(context.Background(), action.SubmitRequest{
		Contract: "battleManagement",
		Method:   "triggerPairing",
		Args:     []interface{}{big.NewInt(3)},
	})
	assert.Equal(t, action.StatusFailed, denied.Status)
	assert.Equal(t, action.KindNotOwner, denied.Kind)
}
