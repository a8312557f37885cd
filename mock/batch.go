package mock

import (
	"context"

	"github.com/bkovacs/rovat"
)

var _ rovat.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of rovat.BatchService.
type BatchService struct {
	CreateBatchFn   func(ctx context.Context, batch *rovat.Batch) error
	FindBatchByIDFn func(ctx context.Context, id string) (*rovat.Batch, error)
	FindBatchesFn   func(ctx context.Context, filter rovat.BatchFilter) ([]*rovat.Batch, error)
	UpdateBatchFn   func(ctx context.Context, id string, upd rovat.BatchUpdate) (*rovat.Batch, error)
	DeleteBatchFn   func(ctx context.Context, id string) error
}

func (s *BatchService) CreateBatch(ctx context.Context, batch *rovat.Batch) error {
	return s.CreateBatchFn(ctx, batch)
}

func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*rovat.Batch, error) {
	return s.FindBatchByIDFn(ctx, id)
}

func (s *BatchService) FindBatches(ctx context.Context, filter rovat.BatchFilter) ([]*rovat.Batch, error) {
	return s.FindBatchesFn(ctx, filter)
}

func (s *BatchService) UpdateBatch(ctx context.Context, id string, upd rovat.BatchUpdate) (*rovat.Batch, error) {
	return s.UpdateBatchFn(ctx, id, upd)
}

func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	return s.DeleteBatchFn(ctx, id)
}
