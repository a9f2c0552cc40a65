// Package admin gates owner-only contract operations behind an on-chain owner check.
package admin

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

type OwnerReader interface {
	IsOwner(ctx context.Context, contract string, account common.Address) (bool, error)
}

type Submitter interface {
	Submit(ctx context.Context, req action.SubmitRequest) *action.Result
	Wallet() action.Wallet
}

type Service struct {
	submitter Submitter
	owners    OwnerReader
	localizer action.Localizer
}

func NewService(submitter Submitter, owners OwnerReader, localizer action.Localizer) *Service {
	return &Service{
		submitter: submitter,
		owners:    owners,
		localizer: localizer,
	}
}

// Run submits req when the player wallet owns the target contract. A wallet that is not
// the owner gets a rejected result without any transaction.
func (s *Service) Run(ctx context.Context, req action.SubmitRequest) (*action.Result, error) {
	wallet := s.submitter.Wallet()
	if !wallet.Connected() {
		return s.submitter.Submit(ctx, req), nil
	}

	owner, err := s.owners.IsOwner(ctx, req.Contract, wallet.Address())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read owner of %s", req.Contract)
	}

	if !owner {
		util.LogFromContext(ctx).Info().
			Str("contract", req.Contract).
			Str("method", req.Method).
			Str("account", wallet.Address().Hex()).
			Msg("Refusing owner operation for non-owner")

		return &action.Result{
			Flow:    action.FlowSubmit,
			Name:    req.Label,
			Status:  action.StatusRejected,
			Step:    action.StepIdle,
			Kind:    action.KindNotOwner,
			Message: s.localizer.Message(string(action.KindNotOwner), nil),
		}, nil
	}

	return s.submitter.Submit(ctx, req), nil
}
