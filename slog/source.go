// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bkovacs/rovat"
)

// Ensure LoggingPageSource implements rovat.PageSource.
var _ rovat.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   rovat.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next rovat.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) List(ctx context.Context) (files []rovat.PageFile, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page listing",
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx)
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) Load(ctx context.Context, file rovat.PageFile) (page *rovat.Page, err error) {
	defer func(begin time.Time) {
		blocks := 0
		if page != nil {
			blocks = len(page.Blocks)
		}
		s.logger.Info("page load",
			"page", file.ID,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, file)
}
