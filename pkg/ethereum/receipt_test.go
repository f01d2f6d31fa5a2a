package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/pkg/config"
)

type fakeFetcher struct {
	calls     int
	responses []fetchResult
}

type fetchResult struct {
	receipt *types.Receipt
	err     error
}

func (f *fakeFetcher) TransactionReceipt(_ context.Context, _ common.Hash) (*types.Receipt, error) {
	i := f.calls
	f.calls++
	if i >= len(f.responses) {
		return nil, geth.NotFound
	}
	return f.responses[i].receipt, f.responses[i].err
}

var testTxHash = common.HexToHash("0x572d9ce2b7ab9fb3b5e7f7f4fbd5bd5e387d5b6788ea6eab0d8bb0e62c0c8f45")

func testRetry(attempts int) config.ReceiptRetryConfig {
	return config.ReceiptRetryConfig{MaxAttempts: attempts, Interval: time.Millisecond}
}

func fixtureReceipt() *types.Receipt {
	return &types.Receipt{
		TxHash:            testTxHash,
		BlockHash:         common.HexToHash("0x01"),
		BlockNumber:       big.NewInt(19000000),
		GasUsed:           338200,
		EffectiveGasPrice: big.NewInt(53703047857),
	}
}

func TestReceiptResolver_FoundFirstAttempt(t *testing.T) {
	fetcher := &fakeFetcher{responses: []fetchResult{{receipt: fixtureReceipt()}}}
	r := NewReceiptResolver(fetcher, testRetry(5), zap.NewNop())

	rcpt, err := r.Resolve(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, uint64(19000000), rcpt.BlockNumber)
	assert.Equal(t, int64(338200), rcpt.GasUsed.Int64())
}

func TestReceiptResolver_FoundAfterRetries(t *testing.T) {
	fetcher := &fakeFetcher{responses: []fetchResult{
		{err: geth.NotFound},
		{err: geth.NotFound},
		{receipt: fixtureReceipt()},
	}}
	r := NewReceiptResolver(fetcher, testRetry(5), zap.NewNop())

	rcpt, err := r.Resolve(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, 3, fetcher.calls)
	assert.Equal(t, testTxHash, rcpt.TxHash)
}

func TestReceiptResolver_NilReceiptIsRetried(t *testing.T) {
	fetcher := &fakeFetcher{responses: []fetchResult{{}, {receipt: fixtureReceipt()}}}
	r := NewReceiptResolver(fetcher, testRetry(5), zap.NewNop())

	_, err := r.Resolve(context.Background(), testTxHash)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestReceiptResolver_ExhaustsAttempts(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewReceiptResolver(fetcher, testRetry(5), zap.NewNop())

	_, err := r.Resolve(context.Background(), testTxHash)
	require.ErrorIs(t, err, ErrReceiptNotFound)
	assert.Equal(t, 5, fetcher.calls)
}

func TestReceiptResolver_TransportErrorNotRetried(t *testing.T) {
	boom := errors.New("connection refused")
	fetcher := &fakeFetcher{responses: []fetchResult{{err: boom}}}
	r := NewReceiptResolver(fetcher, testRetry(5), zap.NewNop())

	_, err := r.Resolve(context.Background(), testTxHash)
	require.ErrorIs(t, err, ErrRPCUnavailable)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, fetcher.calls)
}

func TestReceiptResolver_ContextCancelledWhileWaiting(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewReceiptResolver(fetcher, config.ReceiptRetryConfig{MaxAttempts: 5, Interval: time.Hour}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Resolve(ctx, testTxHash)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, fetcher.calls)
}

func TestReceiptResolver_NoWaitAfterLastAttempt(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewReceiptResolver(fetcher, config.ReceiptRetryConfig{MaxAttempts: 1, Interval: time.Hour}, zap.NewNop())

	start := time.Now()
	_, err := r.Resolve(context.Background(), testTxHash)
	require.ErrorIs(t, err, ErrReceiptNotFound)
	assert.Less(t, time.Since(start), time.Second)
}
