package action

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

// paidAction describes one fee paying flow for runPaid.
type paidAction struct {
	flow    Flow
	name    string
	token   common.Address
	targets []int64
	// inputs must all be positive.
	inputs  []int64
	timeout time.Duration

	// spender is approved for the fee, target receives the action transaction.
	spender *chain.Contract
	target  *chain.Contract

	fee func(fees *facade.Fees) *big.Int
	// verify runs after the fee checks as the last read-only precondition.
	verify func(ctx context.Context) *Error
	// calldata is built right before the action is sent and may request a signature.
	calldata func(ctx context.Context, user common.Address) ([]byte, error)

	interpreter     Interpreter
	domainFailure   func(ev *chain.Event) *Error
	onSuccess       func(ctx context.Context, user common.Address)
	navigateOnError bool
}

// runPaid checks preconditions, approves the fee if needed, submits the action and interprets its receipt.
// Every failure is handled here; the returned result is always terminal.
func (o *Orchestrator) runPaid(ctx context.Context, p paidAction) *Result {
	steps := paidSteps[p.flow]
	res := &Result{Flow: p.flow, Name: p.name, Step: StepIdle}

	if err := o.checkWallet(ctx); err != nil {
		return o.reject(ctx, res, err)
	}

	for _, id := range p.inputs {
		if id <= 0 {
			return o.reject(ctx, res, newError(KindInvalidInput, nil, map[string]interface{}{
				"Detail": "ids must be positive integers",
			}))
		}
	}

	if p.token == (common.Address{}) {
		return o.reject(ctx, res, newError(KindInvalidInput, nil, map[string]interface{}{
			"Detail": "no payment token configured",
		}))
	}

	user := o.deps.Wallet.Address()

	fee, symbol, rejection := o.checkFee(ctx, p, user)
	if rejection != nil {
		return o.reject(ctx, res, rejection)
	}

	if p.verify != nil {
		if err := p.verify(ctx); err != nil {
			return o.reject(ctx, res, err)
		}
	}

	o.begin(ctx, res, p.targets)

	allowance, err := o.deps.Reads.Allowance(ctx, p.token, user, p.spender.Address)
	if err != nil {
		return o.fail(ctx, res, p, steps, errors.Wrap(err, "failed to read allowance"))
	}

	if allowance.Cmp(fee) < 0 {
		o.setStep(ctx, res, steps.approve)
		o.deps.Notifier.Toast(ctx, Toast{
			Level:   ToastInfo,
			Message: o.deps.Localizer.Message("step-approve", map[string]interface{}{"Symbol": symbol, "Name": p.name}),
		})

		data, err := o.deps.Contracts.ERC20(p.token).Pack("approve", p.spender.Address, fee)
		if err != nil {
			return o.fail(ctx, res, p, steps, err)
		}

		hash, receipt, err := o.send(ctx, steps.approve, p.flow, p.token, data, o.cfg.ApproveTimeout)
		if hash != (common.Hash{}) {
			res.ApproveTx = &hash
		}
		if err != nil {
			return o.fail(ctx, res, p, steps, errors.Wrap(err, "approval failed"))
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return o.fail(ctx, res, p, steps, newError(KindReverted, nil, nil))
		}

		o.clearPending()
	}

	o.setStep(ctx, res, steps.act)
	o.deps.Notifier.Toast(ctx, Toast{
		Level:   ToastInfo,
		Message: o.deps.Localizer.Message("step-"+string(p.flow), map[string]interface{}{"Name": p.name}),
	})

	data, err := p.calldata(ctx, user)
	if err != nil {
		return o.fail(ctx, res, p, steps, err)
	}

	hash, receipt, err := o.send(ctx, steps.act, p.flow, p.target.Address, data, p.timeout)
	if hash != (common.Hash{}) {
		res.ActionTx = &hash
	}
	if err != nil {
		return o.fail(ctx, res, p, steps, err)
	}

	outcome := p.interpreter.Interpret(receipt)
	res.Event = outcome.Event

	switch outcome.Kind {
	case OutcomeSuccess:
		return o.succeed(ctx, res, p, steps, user)
	case OutcomeDomainFailure:
		return o.fail(ctx, res, p, steps, p.domainFailure(outcome.Event))
	case OutcomeReverted:
		return o.fail(ctx, res, p, steps, newError(KindReverted, nil, nil))
	default:
		return o.fail(ctx, res, p, steps, newError(KindUnexpectedOutcome, nil, nil))
	}
}

// checkFee runs the read-only fee preconditions: quote, accepted token and balance.
func (o *Orchestrator) checkFee(ctx context.Context, p paidAction, user common.Address) (*big.Int, string, *Error) {
	fees, err := o.deps.Reads.Fees(ctx, p.token)
	if err != nil {
		return nil, "", newError(KindFeeUnavailable, err, nil)
	}

	fee := p.fee(fees)
	if fee == nil || fee.Sign() < 0 {
		return nil, "", newError(KindFeeUnavailable, nil, nil)
	}

	details, err := o.deps.Reads.TokenDetails(ctx, p.token)
	if err != nil {
		return nil, "", newError(KindFeeUnavailable, err, nil)
	}
	if !details.Accepted {
		return nil, "", newError(KindTokenNotAccepted, nil, map[string]interface{}{"Symbol": details.Symbol})
	}

	balance, err := o.deps.Reads.Balance(ctx, p.token, user)
	if err != nil {
		return nil, "", Classify(errors.Wrap(err, "failed to read balance"))
	}
	if balance.Cmp(fee) < 0 {
		return nil, "", newError(KindInsufficientFunds, nil, map[string]interface{}{"Symbol": details.Symbol})
	}

	return fee, details.Symbol, nil
}

func (o *Orchestrator) succeed(ctx context.Context, res *Result, p paidAction, steps flowSteps, user common.Address) *Result {
	o.setStep(ctx, res, steps.done)
	o.clearPending()

	if p.onSuccess != nil {
		p.onSuccess(ctx, user)
	}

	res.Status = StatusSucceeded
	res.Message = o.deps.Localizer.Message("done-"+string(p.flow), map[string]interface{}{"Name": p.name})
	res.URL = SuccessURL(p.flow, p.name, res.ActionTx.Hex())

	o.deps.Notifier.Toast(ctx, Toast{Level: ToastSuccess, Message: res.Message})
	o.deps.Navigator.Navigate(ctx, res.URL)

	util.LogFromContext(ctx).Info().
		Str("flow", string(p.flow)).
		Str("hash", res.ActionTx.Hex()).
		Msg("Flow succeeded")

	o.setStep(ctx, res, StepIdle)
	res.Step = steps.done

	return o.finish(ctx, res)
}

// fail unwinds a flow after its preconditions passed. Capture and join navigate to an
// error result page; evolve passes through its fail step and only shows a toast.
func (o *Orchestrator) fail(ctx context.Context, res *Result, p paidAction, steps flowSteps, err error) *Result {
	classified := Classify(err)
	o.clearPending()

	terminal := o.State().Step
	if steps.fail != StepIdle && terminal == steps.act {
		o.setStep(ctx, res, steps.fail)
		terminal = steps.fail
	}

	res.Status = StatusFailed
	res.Kind = classified.Kind
	res.Message = o.deps.Localizer.Message(string(classified.Kind), classified.Data)

	util.LogFromContext(ctx).Warn().
		Err(classified).
		Str("flow", string(p.flow)).
		Str("step", terminal.String()).
		Msg("Flow failed")

	o.deps.Notifier.Toast(ctx, Toast{Level: ToastError, Message: res.Message})

	if p.navigateOnError {
		res.URL = ErrorURL(p.flow, p.name, res.Message)
		o.deps.Navigator.Navigate(ctx, res.URL)
	}

	o.setStep(ctx, res, StepIdle)
	res.Step = terminal

	return o.finish(ctx, res)
}

func (o *Orchestrator) invalidate(ctx context.Context, user common.Address, evolutionIDs ...int64) {
	if err := o.deps.Reads.InvalidateUser(ctx, user); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to invalidate cached user ids")
	}

	if len(evolutionIDs) == 0 {
		return
	}

	if err := o.deps.Reads.InvalidateEvolution(ctx, evolutionIDs...); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to invalidate cached evolution chains")
	}
}
