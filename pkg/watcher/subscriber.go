// Package watcher follows swaps on the watched pool and records the fee of
// every swap transaction.
package watcher

import (
	"context"
	"fmt"
	"sync/atomic"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/internal/metrics"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

const (
	PricingBlock = "block"
	PricingSpot  = "spot"

	logBufferSize = 128
)

// LogSubscriber opens live log subscriptions
type LogSubscriber interface {
	SubscribeFilterLogs(ctx context.Context, q geth.FilterQuery, ch chan<- types.Log) (geth.Subscription, error)
}

// FeePricer computes the fee of a transaction
type FeePricer interface {
	ComputeFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error)
	ComputeSpotFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error)
}

// Submitter enqueues fee records for persistence
type Submitter interface {
	Submit(f *fee.TransactionFee)
}

// Subscriber consumes Swap logs from one live subscription. Logs are handled
// in arrival order; a failing log is logged and skipped.
type Subscriber struct {
	chain     LogSubscriber
	filter    geth.FilterQuery
	pricer    FeePricer
	submitter Submitter
	pricing   string
	logger    *zap.Logger

	ready atomic.Bool
}

// NewSubscriber creates a swap subscriber
func NewSubscriber(
	chain LogSubscriber,
	filter geth.FilterQuery,
	pricer FeePricer,
	submitter Submitter,
	cfg config.SubscriberConfig,
	logger *zap.Logger,
) *Subscriber {
	pricing := cfg.Pricing
	if pricing == "" {
		pricing = PricingBlock
	}
	return &Subscriber{
		chain:     chain,
		filter:    filter,
		pricer:    pricer,
		submitter: submitter,
		pricing:   pricing,
		logger:    logger,
	}
}

// Ready reports whether the subscription is live
func (s *Subscriber) Ready() bool {
	return s.ready.Load()
}

// Run subscribes and handles logs until ctx is done. A failed subscribe or
// a dropped subscription ends Run with an error; there is no reconnect.
func (s *Subscriber) Run(ctx context.Context) error {
	logs := make(chan types.Log, logBufferSize)
	sub, err := s.chain.SubscribeFilterLogs(ctx, s.filter, logs)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("subscriber", "subscribe").Inc()
		return fmt.Errorf("failed to subscribe to swap logs: %w", err)
	}
	defer sub.Unsubscribe()

	s.ready.Store(true)
	defer s.ready.Store(false)

	s.logger.Info("Subscribed to swap logs",
		zap.Any("addresses", s.filter.Addresses),
		zap.String("pricing", s.pricing))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Swap subscriber stopping")
			return nil
		case err := <-sub.Err():
			metrics.ErrorsTotal.WithLabelValues("subscriber", "subscription").Inc()
			return fmt.Errorf("swap log subscription failed: %w", err)
		case l := <-logs:
			if err := s.HandleLog(ctx, l); err != nil {
				metrics.ErrorsTotal.WithLabelValues("subscriber", "handle_log").Inc()
				s.logger.Error("Failed to record swap fee",
					zap.String("tx_hash", l.TxHash.Hex()),
					zap.Uint64("block_number", l.BlockNumber),
					zap.Error(err))
			}
		}
	}
}

// HandleLog prices the transaction behind one Swap log and submits its fee
func (s *Subscriber) HandleLog(ctx context.Context, l types.Log) error {
	if l.Removed {
		s.logger.Debug("Skipping removed swap log", zap.String("tx_hash", l.TxHash.Hex()))
		return nil
	}
	metrics.SwapEventsTotal.Inc()

	event := ethereum.SwapEvent{
		TxHash:      l.TxHash,
		BlockHash:   l.BlockHash,
		BlockNumber: l.BlockNumber,
		LogIndex:    l.Index,
	}

	price, err := ethereum.DecodeSwapPrice(l.Data)
	if err != nil {
		// the fee does not depend on the swap price
		s.logger.Warn("Failed to decode swap price",
			zap.String("tx_hash", event.TxHash.Hex()),
			zap.Error(err))
	} else {
		event.Price = price
		metrics.SwapPrice.Set(price)
		s.logger.Info("Swap observed",
			zap.String("tx_hash", event.TxHash.Hex()),
			zap.Uint64("block_number", event.BlockNumber),
			zap.Uint("log_index", event.LogIndex),
			zap.Float64("price", event.Price))
	}

	var f *fee.TransactionFee
	if s.pricing == PricingSpot {
		f, err = s.pricer.ComputeSpotFee(ctx, event.TxHash)
	} else {
		f, err = s.pricer.ComputeFee(ctx, event.TxHash)
	}
	if err != nil {
		return err
	}

	s.submitter.Submit(f)
	metrics.FeesComputedTotal.WithLabelValues("subscriber").Inc()

	s.logger.Info("Swap fee recorded",
		zap.String("tx_hash", f.TxHash),
		zap.Float64("fee_eth", f.FeeETH),
		zap.Float64("fee_usdt", f.FeeUSDT))
	return nil
}
