package chain_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
)

type scriptedFetcher struct {
	mu      sync.Mutex
	results []error
	calls   int
	receipt *types.Receipt
}

func (f *scriptedFetcher) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.calls
	f.calls++

	if idx < len(f.results) {
		return nil, f.results[idx]
	}

	if f.receipt == nil {
		return nil, ethereum.NotFound
	}

	return f.receipt, nil
}

func fastPolicy(attempts int) chain.RetryPolicy {
	return chain.RetryPolicy{
		InitialBackoff: time.Millisecond,
		MaxBackoff:     4 * time.Millisecond,
		Multiplier:     2,
		MaxAttempts:    attempts,
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	policy := chain.DefaultRetryPolicy()

	assert.Equal(t, time.Second, policy.Backoff(0))
	assert.Equal(t, 2*time.Second, policy.Backoff(1))
	assert.Equal(t, 4*time.Second, policy.Backoff(2))
	assert.Equal(t, 8*time.Second, policy.Backoff(3))
	assert.Equal(t, 8*time.Second, policy.Backoff(4))
	assert.Equal(t, 8*time.Second, policy.Backoff(1000))
}

func TestWaitForReceiptRetriesNotFoundAndTransientErrors(t *testing.T) {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	fetcher := &scriptedFetcher{
		results: []error{ethereum.NotFound, errors.New("connection reset by peer"), ethereum.NotFound},
		receipt: receipt,
	}

	res, err := chain.WaitForReceipt(t.Context(), fetcher, common.HexToHash("0xabc"), time.Second, fastPolicy(10))
	require.NoError(t, err)
	assert.Same(t, receipt, res)
	assert.Equal(t, 4, fetcher.calls)
}

func TestWaitForReceiptAttemptsExhausted(t *testing.T) {
	fetcher := &scriptedFetcher{}

	_, err := chain.WaitForReceipt(t.Context(), fetcher, common.HexToHash("0xabc"), time.Second, fastPolicy(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrReceiptTimeout)
	assert.Equal(t, 3, fetcher.calls)
}

func TestWaitForReceiptTimeout(t *testing.T) {
	fetcher := &scriptedFetcher{}

	_, err := chain.WaitForReceipt(t.Context(), fetcher, common.HexToHash("0xabc"), 20*time.Millisecond, fastPolicy(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrReceiptTimeout)
}

func TestWaitForReceiptParentCanceled(t *testing.T) {
	fetcher := &scriptedFetcher{}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := chain.WaitForReceipt(ctx, fetcher, common.HexToHash("0xabc"), time.Second, fastPolicy(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, chain.ErrReceiptTimeout)
}
