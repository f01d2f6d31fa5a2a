package fee

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidTxHash is returned for input that is not a 32-byte hex hash.
	ErrInvalidTxHash = errors.New("invalid transaction hash")
	// ErrFeeNotFound is returned by stores when no record exists for a hash.
	ErrFeeNotFound = errors.New("fee not found")
)

// TransactionFee is the USD-denominated gas cost of one transaction.
// Records are immutable once computed.
type TransactionFee struct {
	TxHash  string  `json:"tx_hash"`
	FeeETH  float64 `json:"fee_eth"`
	FeeUSDT float64 `json:"fee_usdt"`
}

// New creates a TransactionFee priced at ethPrice USDT per ETH
func New(txHash common.Hash, feeETH, ethPrice float64) *TransactionFee {
	return &TransactionFee{
		TxHash:  CanonicalHash(txHash),
		FeeETH:  feeETH,
		FeeUSDT: feeETH * ethPrice,
	}
}

// ParseTxHash accepts a 64 digit hex hash in any case, with or without 0x
func ParseTxHash(s string) (common.Hash, error) {
	raw := strings.TrimSpace(s)
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw = raw[2:]
	}
	if len(raw) != 2*common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidTxHash, s)
	}
	return common.BytesToHash(b), nil
}

// CanonicalHash returns the storage form of a hash: lowercase and 0x-prefixed
func CanonicalHash(h common.Hash) string {
	return h.Hex()
}

// SwapPrice is the pool price implied by the swap in one transaction
type SwapPrice struct {
	TxHash string  `json:"tx_hash"`
	Price  float64 `json:"price"`
}

// MarketPrice is a spot quote for a trading pair
type MarketPrice struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}
