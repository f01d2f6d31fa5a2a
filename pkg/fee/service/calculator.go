package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

// ReceiptResolver resolves mined transaction receipts
type ReceiptResolver interface {
	Resolve(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error)
}

// HeaderReader reads block headers
type HeaderReader interface {
	HeaderByHash(ctx context.Context, blockHash common.Hash) (*types.Header, error)
}

// PriceOracle provides ETH prices in USDT
type PriceOracle interface {
	SpotPrice(ctx context.Context, symbol string) (float64, error)
	PriceAt(ctx context.Context, symbol string, timestampMs int64) (float64, error)
}

// Calculator composes a fee record from the chain receipt and market data
type Calculator struct {
	resolver ReceiptResolver
	headers  HeaderReader
	oracle   PriceOracle
	symbol   string
	pool     common.Address
	topic    common.Hash
	logger   *zap.Logger
}

// NewCalculator creates a fee calculator pricing in symbol. pool and topic
// select the swap log used by SwapPrice.
func NewCalculator(
	resolver ReceiptResolver,
	headers HeaderReader,
	oracle PriceOracle,
	symbol string,
	pool common.Address,
	topic common.Hash,
	logger *zap.Logger,
) *Calculator {
	return &Calculator{
		resolver: resolver,
		headers:  headers,
		oracle:   oracle,
		symbol:   symbol,
		pool:     pool,
		topic:    topic,
		logger:   logger,
	}
}

// ComputeFee prices the gas cost of txHash at the open of the minute bar
// containing its block timestamp.
func (c *Calculator) ComputeFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	receipt, feeETH, err := c.gasFee(ctx, txHash)
	if err != nil {
		return nil, err
	}

	header, err := c.headers.HeaderByHash(ctx, receipt.BlockHash)
	if err != nil {
		return nil, err
	}
	blockTimeMs := int64(header.Time) * 1000

	price, err := c.oracle.PriceAt(ctx, c.symbol, blockTimeMs)
	if err != nil {
		return nil, fmt.Errorf("price at block %d: %w", receipt.BlockNumber, err)
	}

	c.logger.Debug("Computed fee at block price",
		zap.String("tx_hash", txHash.Hex()),
		zap.Uint64("block_number", receipt.BlockNumber),
		zap.Float64("fee_eth", feeETH),
		zap.Float64("eth_price", price))

	return fee.New(txHash, feeETH, price), nil
}

// ComputeSpotFee prices the gas cost of txHash at the current spot price
func (c *Calculator) ComputeSpotFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	_, feeETH, err := c.gasFee(ctx, txHash)
	if err != nil {
		return nil, err
	}

	price, err := c.oracle.SpotPrice(ctx, c.symbol)
	if err != nil {
		return nil, fmt.Errorf("spot price: %w", err)
	}
	return fee.New(txHash, feeETH, price), nil
}

// SwapPrice decodes the pool swap in txHash
func (c *Calculator) SwapPrice(ctx context.Context, txHash common.Hash) (float64, error) {
	receipt, err := c.resolver.Resolve(ctx, txHash)
	if err != nil {
		return 0, err
	}
	return ethereum.SwapPriceFromReceipt(receipt, c.pool, c.topic)
}

// SpotPrice returns the latest price of symbol
func (c *Calculator) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	return c.oracle.SpotPrice(ctx, symbol)
}

func (c *Calculator) gasFee(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, float64, error) {
	receipt, err := c.resolver.Resolve(ctx, txHash)
	if err != nil {
		return nil, 0, err
	}
	feeETH, err := ethereum.ComputeGasFeeEth(receipt)
	if err != nil {
		return nil, 0, err
	}
	return receipt, feeETH, nil
}
