package mock

import (
	"context"

	"github.com/bkovacs/rovat"
)

var _ rovat.SectionStore = (*SectionStore)(nil)

// SectionStore is a mock implementation of rovat.SectionStore.
type SectionStore struct {
	WriteSectionFn func(ctx context.Context, section *rovat.Section) error
	CommitFn       func() error
	AbortFn        func() error
}

func (s *SectionStore) WriteSection(ctx context.Context, section *rovat.Section) error {
	return s.WriteSectionFn(ctx, section)
}

func (s *SectionStore) Commit() error {
	return s.CommitFn()
}

func (s *SectionStore) Abort() error {
	return s.AbortFn()
}

var _ rovat.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of rovat.SectionService.
type SectionService struct {
	CreateSectionFn         func(ctx context.Context, section *rovat.Section) error
	FindSectionByIDFn       func(ctx context.Context, id string) (*rovat.Section, error)
	FindSectionsFn          func(ctx context.Context, filter rovat.SectionFilter) ([]*rovat.Section, error)
	DeleteSectionFn         func(ctx context.Context, id string) error
	DeleteSectionsByBatchFn func(ctx context.Context, batchID string) error
}

func (s *SectionService) CreateSection(ctx context.Context, section *rovat.Section) error {
	return s.CreateSectionFn(ctx, section)
}

func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*rovat.Section, error) {
	return s.FindSectionByIDFn(ctx, id)
}

func (s *SectionService) FindSections(ctx context.Context, filter rovat.SectionFilter) ([]*rovat.Section, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	return s.DeleteSectionFn(ctx, id)
}

func (s *SectionService) DeleteSectionsByBatch(ctx context.Context, batchID string) error {
	return s.DeleteSectionsByBatchFn(ctx, batchID)
}
