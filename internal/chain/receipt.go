package chain

import (
	"context"
	"math"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

var ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")

const (
	DefaultInitialBackoff    = time.Second
	DefaultMaxBackoff        = 8 * time.Second
	DefaultBackoffMultiplier = 2.0
	DefaultMaxAttempts       = 40
)

// RetryPolicy bounds receipt polling. The n-th wait (starting at 0) is
// InitialBackoff * Multiplier^n, capped at MaxBackoff.
type RetryPolicy struct {
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	MaxAttempts    int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialBackoff: DefaultInitialBackoff,
		MaxBackoff:     DefaultMaxBackoff,
		Multiplier:     DefaultBackoffMultiplier,
		MaxAttempts:    DefaultMaxAttempts,
	}
}

// Backoff returns the delay before the attempt following attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	delay := float64(p.InitialBackoff) * math.Pow(multiplier, float64(attempt))
	if delay > float64(p.MaxBackoff) || math.IsInf(delay, 0) {
		return p.MaxBackoff
	}

	return time.Duration(delay)
}

// WaitForReceipt polls fetcher until the receipt of txHash is available. Polling is
// read-only and therefore safe to repeat; not-found and transient RPC errors are retried.
// It fails with ErrReceiptTimeout when timeout elapses or MaxAttempts polls came back empty,
// and with the context error when ctx itself is canceled.
func WaitForReceipt(ctx context.Context, fetcher ReceiptFetcher, txHash common.Hash, timeout time.Duration, policy RetryPolicy) (*types.Receipt, error) {
	log := util.LogFromContext(ctx).With().Str("txHash", txHash.Hex()).Logger()

	localCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for attempt := 0; ; attempt++ {
		receipt, err := fetcher.TransactionReceipt(localCtx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "context canceled while waiting for receipt")
		}

		if localCtx.Err() != nil {
			return nil, errors.Wrapf(ErrReceiptTimeout, "after %s", timeout)
		}

		switch {
		case err == nil, errors.Is(err, ethereum.NotFound):
			log.Debug().Int("attempt", attempt).Msg("Receipt not yet available")
		default:
			log.Warn().Err(err).Int("attempt", attempt).Msg("Failed to fetch receipt, retrying")
		}

		if policy.MaxAttempts > 0 && attempt+1 >= policy.MaxAttempts {
			return nil, errors.Wrapf(ErrReceiptTimeout, "no receipt after %d attempts", policy.MaxAttempts)
		}

		timer := time.NewTimer(policy.Backoff(attempt))
		select {
		case <-localCtx.Done():
			timer.Stop()
			if ctx.Err() != nil {
				return nil, errors.Wrap(ctx.Err(), "context canceled while waiting for receipt")
			}
			return nil, errors.Wrapf(ErrReceiptTimeout, "after %s", timeout)
		case <-timer.C:
		}
	}
}
