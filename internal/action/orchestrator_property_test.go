//go:build property
// +build property

package action_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain/chaintest"
)

const (
	receiptAssigned = iota
	receiptMissed
	receiptEmpty
	receiptReverted
)

// isFlowSequence reports whether steps is a prefix-closed walk of
// approve* -> act -> (done -> idle | idle) for capture.
func isFlowSequence(steps []action.Step) bool {
	prev := action.StepIdle
	for _, step := range steps {
		if !action.IsTransitionAllowed(prev, step) {
			return false
		}
		if step == action.StepCapture && prev != action.StepIdle && prev != action.StepApproveCapture {
			return false
		}
		prev = step
	}

	return prev == action.StepIdle
}

func TestCaptureProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("capture honours chance, allowance, ordering and outcome", prop.ForAll(
		func(allowance int64, chanceOnChain int64, outcome int) bool {
			h := newHarness(t)
			h.reads.allowance = big.NewInt(allowance)
			h.reads.chance = chanceOnChain

			needsApprove := allowance < 100
			if needsApprove {
				h.receipts.Then(h.approveReceipt())
			}
			switch outcome {
			case receiptAssigned:
				h.receipts.Then(h.idAssigned(7))
			case receiptMissed:
				h.receipts.Then(h.captureFailed(7, 40, 77))
			case receiptEmpty:
				h.receipts.Then(h.approveReceipt())
			case receiptReverted:
				h.receipts.Then(func(hash common.Hash) *types.Receipt {
					return chaintest.Receipt(hash, types.ReceiptStatusFailed)
				})
			}

			res := h.orch.Capture(context.Background(), action.CaptureRequest{ID: 7, Chance: 40, Name: "Flarepup"})
			methods := h.sentMethods()

			if chanceOnChain != 40 {
				return res.Status == action.StatusRejected && len(methods) == 0
			}

			approvals := 0
			for _, m := range methods {
				if m == "approve" {
					approvals++
				}
			}
			if needsApprove != (approvals == 1) || approvals > 1 {
				return false
			}

			if !isFlowSequence(res.Steps) {
				return false
			}

			if outcome == receiptAssigned {
				return res.Succeeded() && res.URL == action.SuccessURL(action.FlowCapture, "Flarepup", res.ActionTx.Hex())
			}

			return res.Status == action.StatusFailed && len(h.ui.navigations) == 1 && res.URL == h.ui.navigations[0] &&
				res.URL != "" && res.URL[len("/capture-result/Flarepup?"):][:6] == "error="
		},
		gen.Int64Range(0, 200),
		gen.Int64Range(39, 41),
		gen.IntRange(receiptAssigned, receiptReverted),
	))

	properties.TestingRun(t)
}
