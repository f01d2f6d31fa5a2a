package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/internal/metrics"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
)

// ReceiptFetcher is the chain RPC surface needed to resolve receipts
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ReceiptResolver polls for the receipt of a freshly broadcast transaction
// until the node has indexed it.
type ReceiptResolver struct {
	fetcher     ReceiptFetcher
	maxAttempts int
	interval    time.Duration
	logger      *zap.Logger
}

// NewReceiptResolver creates a resolver with the given retry policy
func NewReceiptResolver(fetcher ReceiptFetcher, cfg config.ReceiptRetryConfig, logger *zap.Logger) *ReceiptResolver {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &ReceiptResolver{
		fetcher:     fetcher,
		maxAttempts: attempts,
		interval:    cfg.Interval,
		logger:      logger,
	}
}

// Resolve returns the receipt for txHash. Only "not found" answers are
// retried; transport errors fail immediately with ErrRPCUnavailable.
// The resolver waits between attempts, never after the last one.
func (r *ReceiptResolver) Resolve(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		receipt, err := r.fetcher.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil && receipt != nil:
			metrics.ReceiptAttemptsTotal.WithLabelValues("found").Inc()
			return NewReceipt(receipt), nil
		case err == nil, errors.Is(err, geth.NotFound):
			metrics.ReceiptAttemptsTotal.WithLabelValues("not_found").Inc()
		default:
			metrics.ReceiptAttemptsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: get receipt %s: %w", ErrRPCUnavailable, txHash.Hex(), err)
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logger.Debug("Receipt not available yet, retrying",
			zap.String("tx_hash", txHash.Hex()),
			zap.Int("attempt", attempt),
			zap.Duration("interval", r.interval))

		timer := time.NewTimer(r.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts", ErrReceiptNotFound, txHash.Hex(), r.maxAttempts)
}
