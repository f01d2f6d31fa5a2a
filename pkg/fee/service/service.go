package service

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/chainsafe/swap-fee-watcher/pkg/app/errors"
	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

const defaultBatchConcurrency = 8

// FeeResolver returns fee records by hash
type FeeResolver interface {
	ResolveFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error)
}

// PriceReader reads swap and market prices
type PriceReader interface {
	SwapPrice(ctx context.Context, txHash common.Hash) (float64, error)
	SpotPrice(ctx context.Context, symbol string) (float64, error)
}

// Service defines the fee query operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ResolveFee returns the fee of one transaction
	ResolveFee(ctx context.Context, txHash string) (*fee.TransactionFee, error)
	// ResolveBatch returns fee_usdt per canonical hash. Malformed hashes and
	// hashes that fail to resolve are omitted.
	ResolveBatch(ctx context.Context, txHashes []string) map[string]float64
	// SwapPrice returns the pool price of the swap in txHash
	SwapPrice(ctx context.Context, txHash string) (*fee.SwapPrice, error)
	// SpotPrice returns the latest market price of symbol
	SpotPrice(ctx context.Context, symbol string) (*fee.MarketPrice, error)
}

type feeService struct {
	fees        FeeResolver
	prices      PriceReader
	concurrency int
	logger      *zap.Logger
}

// NewService creates the fee query service. concurrency bounds the number
// of hashes a batch resolves at once.
func NewService(fees FeeResolver, prices PriceReader, concurrency int, logger *zap.Logger) Service {
	if concurrency < 1 {
		concurrency = defaultBatchConcurrency
	}
	return &feeService{
		fees:        fees,
		prices:      prices,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (s *feeService) ResolveFee(ctx context.Context, txHash string) (*fee.TransactionFee, error) {
	h, err := fee.ParseTxHash(txHash)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid transaction hash")
	}

	f, err := s.fees.ResolveFee(ctx, h)
	if err != nil {
		// not found, upstream and decode failures all surface the same way
		return nil, apperrors.InternalError(err, "fee unavailable")
	}
	return f, nil
}

func (s *feeService) ResolveBatch(ctx context.Context, txHashes []string) map[string]float64 {
	unique := make(map[common.Hash]struct{}, len(txHashes))
	ordered := make([]common.Hash, 0, len(txHashes))
	for _, raw := range txHashes {
		h, err := fee.ParseTxHash(raw)
		if err != nil {
			s.logger.Debug("Skipping malformed transaction hash", zap.String("tx_hash", raw))
			continue
		}
		if _, seen := unique[h]; seen {
			continue
		}
		unique[h] = struct{}{}
		ordered = append(ordered, h)
	}

	var (
		mu      sync.Mutex
		results = make(map[string]float64, len(ordered))
	)

	// a failing hash never cancels its siblings, so the group context is unused
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, h := range ordered {
		g.Go(func() error {
			f, err := s.fees.ResolveFee(ctx, h)
			if err != nil {
				s.logger.Warn("Failed to resolve fee in batch",
					zap.String("tx_hash", h.Hex()),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			results[f.TxHash] = f.FeeUSDT
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *feeService) SwapPrice(ctx context.Context, txHash string) (*fee.SwapPrice, error) {
	h, err := fee.ParseTxHash(txHash)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid transaction hash")
	}

	price, err := s.prices.SwapPrice(ctx, h)
	if err != nil {
		if errors.Is(err, ethereum.ErrSwapLogNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "swap log not found")
		}
		return nil, apperrors.InternalError(err, "swap price unavailable")
	}
	return &fee.SwapPrice{TxHash: fee.CanonicalHash(h), Price: price}, nil
}

func (s *feeService) SpotPrice(ctx context.Context, symbol string) (*fee.MarketPrice, error) {
	if symbol == "" {
		return nil, apperrors.BadRequestError(nil, "symbol is required")
	}

	price, err := s.prices.SpotPrice(ctx, symbol)
	if err != nil {
		return nil, apperrors.DependencyFailureError(err, "price unavailable")
	}
	return &fee.MarketPrice{Symbol: symbol, Price: price}, nil
}
