package feestore

import (
	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

// FeeDao maps directly to the 'fees' table in PostgreSQL.
type FeeDao struct {
	bun.BaseModel `bun:"table:fees,alias:f"`
	TxHash        string  `bun:"tx_hash,pk,type:text"`
	FeeETH        float64 `bun:"fee_eth,notnull,type:double precision"`
	FeeUSDT       float64 `bun:"fee_usdt,notnull,type:double precision"`
}

func toFeeDao(f *fee.TransactionFee) *FeeDao {
	return &FeeDao{
		TxHash:  f.TxHash,
		FeeETH:  f.FeeETH,
		FeeUSDT: f.FeeUSDT,
	}
}

func toFee(dao *FeeDao) *fee.TransactionFee {
	return &fee.TransactionFee{
		TxHash:  dao.TxHash,
		FeeETH:  dao.FeeETH,
		FeeUSDT: dao.FeeUSDT,
	}
}
