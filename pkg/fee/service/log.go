package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

const serviceName = "FeeService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the fee Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

// ResolveFee wraps the service method with logging
func (ls *logService) ResolveFee(ctx context.Context, txHash string) (resp *fee.TransactionFee, err error) {
	start := time.Now()
	ls.logger.Debug("ResolveFee started",
		zap.String("method", "ResolveFee"),
		zap.String("tx_hash", txHash),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("ResolveFee failed",
				zap.String("method", "ResolveFee"),
				zap.String("tx_hash", txHash),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("ResolveFee completed",
			zap.String("method", "ResolveFee"),
			zap.String("tx_hash", resp.TxHash),
			zap.Float64("fee_eth", resp.FeeETH),
			zap.Float64("fee_usdt", resp.FeeUSDT),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.ResolveFee(ctx, txHash)
}

// ResolveBatch wraps the service method with logging. Each call is tagged
// with a batch id so per-hash warnings can be correlated.
func (ls *logService) ResolveBatch(ctx context.Context, txHashes []string) map[string]float64 {
	start := time.Now()
	batchID := uuid.NewString()

	ls.logger.Info("ResolveBatch started",
		zap.String("method", "ResolveBatch"),
		zap.String("batch_id", batchID),
		zap.Int("requested", len(txHashes)),
	)

	resp := ls.svc.ResolveBatch(ctx, txHashes)

	ls.logger.Info("ResolveBatch completed",
		zap.String("method", "ResolveBatch"),
		zap.String("batch_id", batchID),
		zap.Int("requested", len(txHashes)),
		zap.Int("resolved", len(resp)),
		zap.Duration("duration", time.Since(start)),
	)
	return resp
}

// SwapPrice wraps the service method with logging
func (ls *logService) SwapPrice(ctx context.Context, txHash string) (resp *fee.SwapPrice, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("SwapPrice failed",
				zap.String("method", "SwapPrice"),
				zap.String("tx_hash", txHash),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("SwapPrice completed",
			zap.String("method", "SwapPrice"),
			zap.String("tx_hash", resp.TxHash),
			zap.Float64("price", resp.Price),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.SwapPrice(ctx, txHash)
}

// SpotPrice wraps the service method with logging
func (ls *logService) SpotPrice(ctx context.Context, symbol string) (resp *fee.MarketPrice, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("SpotPrice failed",
				zap.String("method", "SpotPrice"),
				zap.String("symbol", symbol),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("SpotPrice completed",
			zap.String("method", "SpotPrice"),
			zap.String("symbol", symbol),
			zap.Float64("price", resp.Price),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.SpotPrice(ctx, symbol)
}
