// Package feestore persists computed transaction fees in PostgreSQL.
package feestore

import (
	"context"

	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

// Store defines fee record persistence. Hashes are in canonical form.
type Store interface {
	GetFee(ctx context.Context, txHash string) (*fee.TransactionFee, error)
	InsertFee(ctx context.Context, f *fee.TransactionFee) error
}

var _ Store = (*pgStore)(nil)
