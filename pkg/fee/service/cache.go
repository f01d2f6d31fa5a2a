package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/chainsafe/swap-fee-watcher/internal/metrics"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

// Store is the read side of fee persistence used by the cache.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetFee(ctx context.Context, txHash string) (*fee.TransactionFee, error)
}

// FeeComputer computes a fee record from chain and market data.
//
//go:generate mockery --name FeeComputer --output mocks --outpkg mocks --filename mock_fee_computer.go --with-expecter
type FeeComputer interface {
	ComputeFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error)
}

// Submitter enqueues fee records for persistence
type Submitter interface {
	Submit(f *fee.TransactionFee)
}

// Cache is a read-through view of the fee store. Misses are computed,
// handed to the persistence queue and returned without waiting for the write.
type Cache struct {
	store     Store
	computer  FeeComputer
	submitter Submitter
	logger    *zap.Logger

	recent *lru.Cache[string, fee.TransactionFee]
	group  *singleflight.Group
}

// NewCache creates a fee cache. cfg.LRUSize > 0 adds an in-process layer in
// front of the store; cfg.SingleFlight collapses concurrent misses per hash.
func NewCache(store Store, computer FeeComputer, submitter Submitter, cfg config.CacheConfig, logger *zap.Logger) (*Cache, error) {
	c := &Cache{
		store:     store,
		computer:  computer,
		submitter: submitter,
		logger:    logger,
	}
	if cfg.LRUSize > 0 {
		recent, err := lru.New[string, fee.TransactionFee](cfg.LRUSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create fee lru: %w", err)
		}
		c.recent = recent
	}
	if cfg.SingleFlight {
		c.group = &singleflight.Group{}
	}
	return c, nil
}

// ResolveFee returns the fee of txHash, computing and enqueueing it when the
// store has no record. Hit and miss yield the same values.
func (c *Cache) ResolveFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	key := fee.CanonicalHash(txHash)

	if c.recent != nil {
		if f, ok := c.recent.Get(key); ok {
			metrics.CacheLookupsTotal.WithLabelValues("lru_hit").Inc()
			return &f, nil
		}
	}

	stored, err := c.store.GetFee(ctx, key)
	switch {
	case err == nil:
		metrics.CacheLookupsTotal.WithLabelValues("store_hit").Inc()
		c.remember(stored)
		return stored, nil
	case errors.Is(err, fee.ErrFeeNotFound):
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		// storage outage should not block lookups
		metrics.CacheLookupsTotal.WithLabelValues("store_error").Inc()
		c.logger.Warn("Fee store read failed, computing instead",
			zap.String("tx_hash", key),
			zap.Error(err))
	}

	if c.group == nil {
		return c.fill(ctx, txHash)
	}

	// the shared fill outlives the cancellation of whichever caller started it
	v, err, shared := c.group.Do(key, func() (any, error) {
		return c.fill(context.WithoutCancel(ctx), txHash)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("Shared in-flight fee computation", zap.String("tx_hash", key))
	}
	f := *v.(*fee.TransactionFee)
	return &f, nil
}

func (c *Cache) fill(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	computed, err := c.computer.ComputeFee(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("compute fee for %s: %w", txHash.Hex(), err)
	}

	metrics.FeesComputedTotal.WithLabelValues("query").Inc()
	c.submitter.Submit(computed)
	c.remember(computed)
	return computed, nil
}

func (c *Cache) remember(f *fee.TransactionFee) {
	if c.recent != nil {
		c.recent.Add(f.TxHash, *f)
	}
}
