package service

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/swap-fee-watcher/pkg/ethereum"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

const (
	fixtureHash      = "0x572d9ce2b7ab9fb3b5e7f7f4fbd5bd5e387d5b6788ea6eab0d8bb0e62c0c8f45"
	fixtureFeeETH    = 0.0181623707852374
	fixturePrice     = 3405.792833770436
	fixtureBlockTime = uint64(1700000030)
)

var (
	fixtureBlockHash = common.HexToHash("0xb10c")
	testPool         = common.HexToAddress("0x88e6A0c2dDD26FEEb64F039a2c41296FcB3f5640")
	testTopic        = common.HexToHash("0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67")
)

func fixtureReceipt() *ethereum.Receipt {
	return &ethereum.Receipt{
		TxHash:            common.HexToHash(fixtureHash),
		BlockHash:         fixtureBlockHash,
		BlockNumber:       18_600_000,
		GasUsed:           big.NewInt(338200),
		EffectiveGasPrice: big.NewInt(53703047857),
	}
}

type fakeResolver struct {
	ResolveFunc func(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, txHash common.Hash) (*ethereum.Receipt, error) {
	if f.ResolveFunc != nil {
		return f.ResolveFunc(ctx, txHash)
	}
	return fixtureReceipt(), nil
}

type fakeHeaders struct {
	HeaderByHashFunc func(ctx context.Context, blockHash common.Hash) (*types.Header, error)
}

func (f *fakeHeaders) HeaderByHash(ctx context.Context, blockHash common.Hash) (*types.Header, error) {
	if f.HeaderByHashFunc != nil {
		return f.HeaderByHashFunc(ctx, blockHash)
	}
	return &types.Header{Time: fixtureBlockTime}, nil
}

type fakeOracle struct {
	SpotPriceFunc func(ctx context.Context, symbol string) (float64, error)
	PriceAtFunc   func(ctx context.Context, symbol string, timestampMs int64) (float64, error)
}

func (f *fakeOracle) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	if f.SpotPriceFunc != nil {
		return f.SpotPriceFunc(ctx, symbol)
	}
	return fixturePrice, nil
}

func (f *fakeOracle) PriceAt(ctx context.Context, symbol string, timestampMs int64) (float64, error) {
	if f.PriceAtFunc != nil {
		return f.PriceAtFunc(ctx, symbol, timestampMs)
	}
	return fixturePrice, nil
}

type recordingSubmitter struct {
	mu        sync.Mutex
	submitted []*fee.TransactionFee
}

func (s *recordingSubmitter) Submit(f *fee.TransactionFee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = append(s.submitted, f)
}

func (s *recordingSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submitted)
}

type fakeFees struct {
	ResolveFeeFunc func(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error)
}

func (f *fakeFees) ResolveFee(ctx context.Context, txHash common.Hash) (*fee.TransactionFee, error) {
	return f.ResolveFeeFunc(ctx, txHash)
}

type fakePrices struct {
	SwapPriceFunc func(ctx context.Context, txHash common.Hash) (float64, error)
	SpotPriceFunc func(ctx context.Context, symbol string) (float64, error)
}

func (f *fakePrices) SwapPrice(ctx context.Context, txHash common.Hash) (float64, error) {
	return f.SwapPriceFunc(ctx, txHash)
}

func (f *fakePrices) SpotPrice(ctx context.Context, symbol string) (float64, error) {
	return f.SpotPriceFunc(ctx, symbol)
}
