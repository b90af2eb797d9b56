package cmd

import (
	"github.com/fox-one/pkg/store/db"

	"morpho/core"
	"morpho/store/market"
	"morpho/store/operation"
	"morpho/store/snapshot"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideMarketRegistry() core.IMarketRegistry {
	registry, err := market.New(cfg.Markets)
	if err != nil {
		panic(err)
	}

	return registry
}

func provideOperationStore(db *db.DB) core.IOperationStore {
	return operation.New(db)
}

func provideSnapshotStore(db *db.DB) core.IRateSnapshotStore {
	return snapshot.New(db)
}
