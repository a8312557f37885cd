// Package mock provides function-field mock implementations of the domain
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/bkovacs/rovat"
)

var _ rovat.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of rovat.PageSource.
type PageSource struct {
	ListFn func(ctx context.Context) ([]rovat.PageFile, error)
	LoadFn func(ctx context.Context, file rovat.PageFile) (*rovat.Page, error)
}

func (s *PageSource) List(ctx context.Context) ([]rovat.PageFile, error) {
	return s.ListFn(ctx)
}

func (s *PageSource) Load(ctx context.Context, file rovat.PageFile) (*rovat.Page, error) {
	return s.LoadFn(ctx, file)
}
