package feestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the fee store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// GetFee returns fee.ErrFeeNotFound when no record exists for txHash
func (s *pgStore) GetFee(ctx context.Context, txHash string) (*fee.TransactionFee, error) {
	dao := new(FeeDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("tx_hash = ?", txHash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fee.ErrFeeNotFound
		}
		return nil, fmt.Errorf("failed to get fee: %w", err)
	}
	return toFee(dao), nil
}

// InsertFee stores f. A record already present for the hash is left as is.
func (s *pgStore) InsertFee(ctx context.Context, f *fee.TransactionFee) error {
	_, err := s.db.NewInsert().
		Model(toFeeDao(f)).
		On("CONFLICT (tx_hash) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert fee: %w", err)
	}
	return nil
}
