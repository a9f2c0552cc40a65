package action

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/facade"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/signature"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func (o *Orchestrator) token(token common.Address) common.Address {
	if token == (common.Address{}) {
		return o.deps.Contracts.DefaultToken
	}

	return token
}

// Capture pays the capture fee and tries to assign req.ID to the wallet. The requested
// chance must match the chance read from the registry.
func (o *Orchestrator) Capture(ctx context.Context, req CaptureRequest) *Result {
	name := displayName(req.Name, req.ID)
	if res := o.acquire(ctx, FlowCapture, name); res != nil {
		return res
	}
	defer o.release()

	userManagement := o.deps.Contracts.UserManagement
	token := o.token(req.Token)

	return o.runPaid(ctx, paidAction{
		flow:    FlowCapture,
		name:    name,
		token:   token,
		targets: []int64{req.ID},
		inputs:  []int64{req.ID, req.Chance},
		timeout: o.cfg.CaptureTimeout,
		spender: userManagement,
		target:  userManagement,
		fee: func(fees *facade.Fees) *big.Int {
			return fees.CaptureFee
		},
		verify: func(ctx context.Context) *Error {
			chance, err := o.deps.Reads.CaptureChance(ctx, req.ID)
			if err != nil {
				return Classify(errors.Wrapf(err, "failed to read chance of %d", req.ID))
			}
			if chance != req.Chance {
				return newError(KindChanceMismatch, nil, map[string]interface{}{
					"Requested": req.Chance,
					"Actual":    chance,
				})
			}

			return nil
		},
		calldata: func(ctx context.Context, user common.Address) ([]byte, error) {
			signed, err := o.deps.Signer.SignCapture(ctx, signature.CaptureRequest{
				User:   user.Hex(),
				Token:  token.Hex(),
				Chance: req.Chance,
				ID:     req.ID,
			})
			if err != nil {
				return nil, errors.Wrap(err, "failed to sign capture")
			}

			return userManagement.Pack("payAndAssignId",
				token,
				big.NewInt(req.Chance),
				big.NewInt(req.ID),
				big.NewInt(signed.Timestamp),
				[]byte(signed.Signature),
			)
		},
		interpreter: CaptureInterpreter(o.deps.Contracts, o.deps.Wallet.Address()),
		domainFailure: func(ev *chain.Event) *Error {
			return newError(KindCaptureMissed, nil, map[string]interface{}{
				"ID":     ev.BigInt("id").String(),
				"Chance": ev.BigInt("chance").String(),
				"Roll":   ev.BigInt("roll").String(),
			})
		},
		onSuccess: func(ctx context.Context, user common.Address) {
			o.invalidate(ctx, user)
		},
		navigateOnError: true,
	})
}

// Evolve pays the evolve fee and replaces req.CurrentID with req.NewID. Calling Evolve
// while another evolve is running is a silent no-op.
func (o *Orchestrator) Evolve(ctx context.Context, req EvolveRequest) *Result {
	name := displayName(req.Name, req.NewID)
	if res := o.acquire(ctx, FlowEvolve, name); res != nil {
		return res
	}
	defer o.release()

	userManagement := o.deps.Contracts.UserManagement
	token := o.token(req.Token)

	return o.runPaid(ctx, paidAction{
		flow:    FlowEvolve,
		name:    name,
		token:   token,
		targets: []int64{req.CurrentID, req.NewID},
		inputs:  []int64{req.CurrentID, req.NewID},
		timeout: o.cfg.EvolveTimeout,
		spender: userManagement,
		target:  userManagement,
		fee: func(fees *facade.Fees) *big.Int {
			return fees.EvolveFee
		},
		calldata: func(ctx context.Context, user common.Address) ([]byte, error) {
			signed, err := o.deps.Signer.SignEvolve(ctx, signature.EvolveRequest{
				User:      user.Hex(),
				Token:     token.Hex(),
				CurrentID: req.CurrentID,
				NewID:     req.NewID,
			})
			if err != nil {
				return nil, errors.Wrap(err, "failed to sign evolve")
			}

			return userManagement.Pack("payAndEvolve",
				token,
				big.NewInt(req.CurrentID),
				big.NewInt(req.NewID),
				big.NewInt(signed.Timestamp),
				[]byte(signed.Signature),
			)
		},
		interpreter: EvolveInterpreter(o.deps.Contracts, o.deps.Wallet.Address()),
		onSuccess: func(ctx context.Context, user common.Address) {
			o.invalidate(ctx, user, req.CurrentID, req.NewID)
		},
	})
}

// JoinBattle pays the battle fee and enters req.MoonsterID into round req.RoundID.
func (o *Orchestrator) JoinBattle(ctx context.Context, req JoinRequest) *Result {
	name := displayName(req.Name, req.MoonsterID)
	if res := o.acquire(ctx, FlowJoin, name); res != nil {
		return res
	}
	defer o.release()

	battleManagement := o.deps.Contracts.BattleManagement
	token := o.token(req.Token)

	return o.runPaid(ctx, paidAction{
		flow:    FlowJoin,
		name:    name,
		token:   token,
		targets: []int64{req.RoundID, req.MoonsterID},
		inputs:  []int64{req.RoundID, req.MoonsterID},
		timeout: o.cfg.JoinTimeout,
		spender: battleManagement,
		target:  battleManagement,
		fee: func(fees *facade.Fees) *big.Int {
			return fees.BattleFee
		},
		calldata: func(_ context.Context, _ common.Address) ([]byte, error) {
			return battleManagement.Pack("joinBattle", big.NewInt(req.RoundID), big.NewInt(req.MoonsterID), token)
		},
		interpreter: JoinInterpreter(o.deps.Contracts, o.deps.Wallet.Address()),
		onSuccess: func(ctx context.Context, user common.Address) {
			o.invalidate(ctx, user)
		},
		navigateOnError: true,
	})
}

// Submit sends a single contract call without fee, approval or step changes. The
// receipt must succeed. Bookmarks and owner operations go through here.
func (o *Orchestrator) Submit(ctx context.Context, req SubmitRequest) *Result {
	label := req.Label
	if len(label) == 0 {
		label = req.Method
	}

	if res := o.acquire(ctx, FlowSubmit, label); res != nil {
		return res
	}
	defer o.release()

	res := &Result{Flow: FlowSubmit, Name: label, Step: StepIdle}

	if err := o.checkWallet(ctx); err != nil {
		return o.reject(ctx, res, err)
	}

	contract, err := o.deps.Contracts.ByName(req.Contract)
	if err != nil {
		return o.reject(ctx, res, newError(KindInvalidInput, err, nil))
	}

	data, err := contract.Pack(req.Method, req.Args...)
	if err != nil {
		return o.reject(ctx, res, newError(KindInvalidInput, err, nil))
	}

	o.begin(ctx, res, nil)
	o.deps.Notifier.Toast(ctx, Toast{
		Level:   ToastInfo,
		Message: o.deps.Localizer.Message("step-submit", map[string]interface{}{"Name": label}),
	})

	hash, receipt, err := o.send(ctx, StepIdle, FlowSubmit, contract.Address, data, o.cfg.SubmitTimeout)
	if hash != (common.Hash{}) {
		res.ActionTx = &hash
	}
	o.clearPending()

	if err == nil && receipt.Status != types.ReceiptStatusSuccessful {
		err = newError(KindReverted, nil, nil)
	}

	if err != nil {
		classified := Classify(err)
		res.Status = StatusFailed
		res.Kind = classified.Kind
		res.Message = o.deps.Localizer.Message(string(classified.Kind), classified.Data)
		util.LogFromContext(ctx).Warn().Err(classified).Str("method", req.Method).Msg("Submit failed")
		o.deps.Notifier.Toast(ctx, Toast{Level: ToastError, Message: res.Message})

		return o.finish(ctx, res)
	}

	res.Status = StatusSucceeded
	res.Message = o.deps.Localizer.Message("done-submit", map[string]interface{}{"Name": label})
	o.deps.Notifier.Toast(ctx, Toast{Level: ToastSuccess, Message: res.Message})

	return o.finish(ctx, res)
}
