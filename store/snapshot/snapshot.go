package snapshot

import (
	"context"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"

	"morpho/core"
)

type snapshotStore struct {
	db *db.DB
}

// New new rate snapshot store
func New(db *db.DB) core.IRateSnapshotStore {
	return &snapshotStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.RateSnapshot{})

		if err := tx.AutoMigrate(core.RateSnapshot{}).Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_rate_snapshots_symbol", "symbol").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *snapshotStore) Create(ctx context.Context, snapshot *core.RateSnapshot) error {
	return s.db.Update().Create(snapshot).Error
}

func (s *snapshotStore) Latest(ctx context.Context, symbol string) (*core.RateSnapshot, error) {
	var snapshot core.RateSnapshot
	err := s.db.View().Where("symbol = ?", symbol).Order("id DESC").First(&snapshot).Error
	if store.IsErrNotFound(err) {
		return &core.RateSnapshot{}, nil
	}
	return &snapshot, err
}

func (s *snapshotStore) List(ctx context.Context, symbol string, limit int) ([]*core.RateSnapshot, error) {
	var snapshots []*core.RateSnapshot
	if err := s.db.View().Where("symbol = ?", symbol).Order("id DESC").Limit(limit).Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
