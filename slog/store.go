package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/bkovacs/rovat"
)

// Ensure LoggingSectionStore implements rovat.SectionStore.
var _ rovat.SectionStore = (*LoggingSectionStore)(nil)

// LoggingSectionStore wraps a SectionStore with debug logging.
type LoggingSectionStore struct {
	next   rovat.SectionStore
	logger *slog.Logger
}

// NewLoggingSectionStore creates a new LoggingSectionStore.
func NewLoggingSectionStore(next rovat.SectionStore, logger *slog.Logger) *LoggingSectionStore {
	return &LoggingSectionStore{next: next, logger: logger}
}

// WriteSection delegates to the wrapped store and logs the operation.
func (s *LoggingSectionStore) WriteSection(ctx context.Context, section *rovat.Section) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("section write",
			"title", section.TitleText,
			"start", section.Start.PageID,
			"bytes", len(section.BodyText),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteSection(ctx, section)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingSectionStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store commit",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingSectionStore) Abort() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store abort",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Abort()
}
