package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/pkg/config"
	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee/service/mocks"
)

func fixtureFee() *fee.TransactionFee {
	return fee.New(common.HexToHash(fixtureHash), fixtureFeeETH, fixturePrice)
}

func TestCache_StoreHit(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	computer := mocks.NewFeeComputer(t)
	sub := &recordingSubmitter{}

	store.EXPECT().GetFee(mock.Anything, fixtureHash).Return(fixtureFee(), nil).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	got, err := c.ResolveFee(ctx, common.HexToHash(fixtureHash))
	require.NoError(t, err)
	assert.Equal(t, fixtureFee(), got)
	assert.Equal(t, 0, sub.count())
}

func TestCache_MissComputesAndEnqueues(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	computer := mocks.NewFeeComputer(t)
	sub := &recordingSubmitter{}

	store.EXPECT().GetFee(mock.Anything, fixtureHash).Return(nil, fee.ErrFeeNotFound).Once()
	computer.EXPECT().ComputeFee(mock.Anything, common.HexToHash(fixtureHash)).Return(fixtureFee(), nil).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	got, err := c.ResolveFee(ctx, common.HexToHash(fixtureHash))
	require.NoError(t, err)
	assert.Equal(t, fixtureFee(), got)
	require.Equal(t, 1, sub.count())
	assert.Equal(t, fixtureHash, sub.submitted[0].TxHash)
}

func TestCache_HitAndMissAgree(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	sub := &recordingSubmitter{}
	computer := NewCalculator(&fakeResolver{}, &fakeHeaders{}, &fakeOracle{}, "ETHUSDT", testPool, testTopic, zap.NewNop())

	store.EXPECT().GetFee(mock.Anything, fixtureHash).Return(nil, fee.ErrFeeNotFound).Once()
	store.EXPECT().GetFee(mock.Anything, fixtureHash).
		RunAndReturn(func(context.Context, string) (*fee.TransactionFee, error) {
			return sub.submitted[0], nil
		}).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	miss, err := c.ResolveFee(ctx, common.HexToHash(fixtureHash))
	require.NoError(t, err)
	hit, err := c.ResolveFee(ctx, common.HexToHash(fixtureHash))
	require.NoError(t, err)

	assert.Equal(t, *miss, *hit)
}

func TestCache_StoreErrorFallsThrough(t *testing.T) {
	store := mocks.NewStore(t)
	computer := mocks.NewFeeComputer(t)
	sub := &recordingSubmitter{}

	store.EXPECT().GetFee(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	computer.EXPECT().ComputeFee(mock.Anything, mock.Anything).Return(fixtureFee(), nil).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	_, err = c.ResolveFee(context.Background(), common.HexToHash(fixtureHash))
	require.NoError(t, err)
	assert.Equal(t, 1, sub.count())
}

func TestCache_ComputeFailureNotEnqueued(t *testing.T) {
	store := mocks.NewStore(t)
	computer := mocks.NewFeeComputer(t)
	sub := &recordingSubmitter{}

	store.EXPECT().GetFee(mock.Anything, mock.Anything).Return(nil, fee.ErrFeeNotFound).Once()
	computer.EXPECT().ComputeFee(mock.Anything, mock.Anything).Return(nil, ethereum.ErrReceiptNotFound).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	_, err = c.ResolveFee(context.Background(), common.HexToHash(fixtureHash))
	require.ErrorIs(t, err, ethereum.ErrReceiptNotFound)
	assert.Equal(t, 0, sub.count())
}

func TestCache_LRUServesRepeatLookups(t *testing.T) {
	store := mocks.NewStore(t)
	computer := mocks.NewFeeComputer(t)
	sub := &recordingSubmitter{}

	store.EXPECT().GetFee(mock.Anything, fixtureHash).Return(nil, fee.ErrFeeNotFound).Once()
	computer.EXPECT().ComputeFee(mock.Anything, mock.Anything).Return(fixtureFee(), nil).Once()

	c, err := NewCache(store, computer, sub, config.CacheConfig{LRUSize: 16}, zap.NewNop())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := c.ResolveFee(context.Background(), common.HexToHash(fixtureHash))
		require.NoError(t, err)
		assert.Equal(t, fixtureFee(), got)
	}
	assert.Equal(t, 1, sub.count())
}

// countingComputer blocks every computation until release is closed
type countingComputer struct {
	calls   atomic.Int32
	release chan struct{}
}

func (c *countingComputer) ComputeFee(_ context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	c.calls.Add(1)
	<-c.release
	return fee.New(txHash, fixtureFeeETH, fixturePrice), nil
}

type countingStore struct {
	reads atomic.Int32
}

func (s *countingStore) GetFee(context.Context, string) (*fee.TransactionFee, error) {
	s.reads.Add(1)
	return nil, fee.ErrFeeNotFound
}

func resolveConcurrently(t *testing.T, c *Cache, store *countingStore, computer *countingComputer, n int) []*fee.TransactionFee {
	t.Helper()

	results := make([]*fee.TransactionFee, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.ResolveFee(context.Background(), common.HexToHash(fixtureHash))
		}(i)
	}

	require.Eventually(t, func() bool { return int(store.reads.Load()) == n }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(computer.release)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	return results
}

func TestCache_ConcurrentColdLookups(t *testing.T) {
	const n = 8
	store := &countingStore{}
	computer := &countingComputer{release: make(chan struct{})}
	sub := &recordingSubmitter{}

	c, err := NewCache(store, computer, sub, config.CacheConfig{}, zap.NewNop())
	require.NoError(t, err)

	results := resolveConcurrently(t, c, store, computer, n)
	for _, r := range results {
		assert.Equal(t, *results[0], *r)
	}
	// without single-flight every caller computes and enqueues; storage dedupes
	assert.Equal(t, int32(n), computer.calls.Load())
	assert.Equal(t, n, sub.count())
}

func TestCache_SingleFlightCollapsesColdLookups(t *testing.T) {
	const n = 8
	store := &countingStore{}
	computer := &countingComputer{release: make(chan struct{})}
	sub := &recordingSubmitter{}

	c, err := NewCache(store, computer, sub, config.CacheConfig{SingleFlight: true}, zap.NewNop())
	require.NoError(t, err)

	results := resolveConcurrently(t, c, store, computer, n)
	for _, r := range results {
		assert.Equal(t, *results[0], *r)
	}
	assert.Equal(t, int32(1), computer.calls.Load())
	assert.Equal(t, 1, sub.count())
}

// cancelAwareComputer blocks until release is closed or ctx is done
type cancelAwareComputer struct {
	calls   atomic.Int32
	release chan struct{}
}

func (c *cancelAwareComputer) ComputeFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	c.calls.Add(1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.release:
		return fee.New(txHash, fixtureFeeETH, fixturePrice), nil
	}
}

func TestCache_SingleFlightSurvivesLeaderCancel(t *testing.T) {
	store := &countingStore{}
	computer := &cancelAwareComputer{release: make(chan struct{})}
	sub := &recordingSubmitter{}

	c, err := NewCache(store, computer, sub, config.CacheConfig{SingleFlight: true}, zap.NewNop())
	require.NoError(t, err)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan struct{})
	go func() {
		defer close(leaderDone)
		_, _ = c.ResolveFee(leaderCtx, common.HexToHash(fixtureHash))
	}()
	require.Eventually(t, func() bool { return computer.calls.Load() == 1 }, time.Second, time.Millisecond)

	var (
		got       *fee.TransactionFee
		followErr error
	)
	followerDone := make(chan struct{})
	go func() {
		defer close(followerDone)
		got, followErr = c.ResolveFee(context.Background(), common.HexToHash(fixtureHash))
	}()
	require.Eventually(t, func() bool { return store.reads.Load() == 2 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	time.Sleep(20 * time.Millisecond)
	close(computer.release)

	<-leaderDone
	<-followerDone
	require.NoError(t, followErr)
	assert.Equal(t, *fixtureFee(), *got)
	assert.Equal(t, int32(1), computer.calls.Load())
	assert.Equal(t, 1, sub.count())
}
