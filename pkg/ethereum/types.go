package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrReceiptNotFound is returned once every receipt poll came back empty.
	ErrReceiptNotFound = errors.New("transaction receipt not found")
	// ErrMissingReceiptField is matched by every *MissingFieldError.
	ErrMissingReceiptField = errors.New("missing receipt field")
	// ErrDecodeFailure is returned for malformed swap payloads.
	ErrDecodeFailure = errors.New("failed to decode swap log")
	// ErrSwapLogNotFound is returned when a receipt carries no pool swap log.
	ErrSwapLogNotFound = errors.New("swap log not found in receipt")
	// ErrRPCUnavailable wraps transport failures from the chain RPC.
	ErrRPCUnavailable = errors.New("ethereum rpc unavailable")
)

// MissingFieldError names the receipt field that was absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingReceiptField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingReceiptField
}

// Receipt is the subset of a mined transaction receipt the watcher needs.
// GasUsed and EffectiveGasPrice are nil when the node did not report them.
type Receipt struct {
	TxHash            common.Hash
	BlockHash         common.Hash
	BlockNumber       uint64
	GasUsed           *big.Int
	EffectiveGasPrice *big.Int
	Logs              []*types.Log
}

// NewReceipt converts a go-ethereum receipt. GasUsed is always set here since
// go-ethereum decodes it as a uint64; only EffectiveGasPrice can be missing
// on this path, a nil GasUsed comes from receipts built by hand.
func NewReceipt(r *types.Receipt) *Receipt {
	rcpt := &Receipt{
		TxHash:    r.TxHash,
		BlockHash: r.BlockHash,
		GasUsed:   new(big.Int).SetUint64(r.GasUsed),
		Logs:      r.Logs,
	}
	if r.BlockNumber != nil {
		rcpt.BlockNumber = r.BlockNumber.Uint64()
	}
	if r.EffectiveGasPrice != nil {
		rcpt.EffectiveGasPrice = new(big.Int).Set(r.EffectiveGasPrice)
	}
	return rcpt
}

// SwapEvent represents a Swap log observed on the watched pool
type SwapEvent struct {
	TxHash      common.Hash
	BlockHash   common.Hash
	BlockNumber uint64
	LogIndex    uint
	Price       float64
}
