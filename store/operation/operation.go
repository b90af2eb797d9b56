package operation

import (
	"context"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"

	"morpho/core"
)

type operationStore struct {
	db *db.DB
}

// New new operation store
func New(db *db.DB) core.IOperationStore {
	return &operationStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Operation{})

		if err := tx.AutoMigrate(core.Operation{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_operations_trace_id", "trace_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *operationStore) Create(ctx context.Context, op *core.Operation) error {
	return s.db.Update().Where("trace_id = ?", op.TraceID).FirstOrCreate(op).Error
}

func (s *operationStore) Update(ctx context.Context, op *core.Operation) error {
	updates := map[string]interface{}{
		"status":    op.Status,
		"amount":    op.Amount,
		"failed_at": op.FailedAt,
	}
	return s.db.Update().Model(op).Updates(updates).Error
}

func (s *operationStore) Find(ctx context.Context, traceID string) (*core.Operation, error) {
	var op core.Operation
	err := s.db.View().Where("trace_id = ?", traceID).First(&op).Error
	if store.IsErrNotFound(err) {
		return &core.Operation{}, nil
	}
	return &op, err
}

func (s *operationStore) List(ctx context.Context, from uint64, limit int) ([]*core.Operation, error) {
	var ops []*core.Operation
	if err := s.db.View().Where("id > ?", from).Limit(limit).Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}
