package feedb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/swap-fee-watcher/pkg/feestore"
	mghelper "github.com/chainsafe/swap-fee-watcher/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating fees table...")
		return mghelper.CreateSchema(ctx, db, &feestore.FeeDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping fees table...")
		return mghelper.DropTables(ctx, db, &feestore.FeeDao{})
	})
}
