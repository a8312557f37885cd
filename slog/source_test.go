package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/mock"
	rovatslog "github.com/bkovacs/rovat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageSource_List(t *testing.T) {
	t.Parallel()

	t.Run("logs count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			ListFn: func(ctx context.Context) ([]rovat.PageFile, error) {
				return []rovat.PageFile{{ID: "1903_page_4"}, {ID: "1903_page_5"}}, nil
			},
		}

		source := rovatslog.NewLoggingPageSource(inner, logger)
		files, err := source.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, files, 2)
		output := buf.String()
		assert.Contains(t, output, "page listing")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			ListFn: func(ctx context.Context) ([]rovat.PageFile, error) {
				return nil, errors.New("permission denied")
			},
		}

		source := rovatslog.NewLoggingPageSource(inner, logger)
		_, err := source.List(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"permission denied\"")
	})
}

func TestLoggingPageSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs page ID and block count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			LoadFn: func(ctx context.Context, file rovat.PageFile) (*rovat.Page, error) {
				return &rovat.Page{ID: file.ID, Blocks: make([]rovat.LayoutBlock, 3)}, nil
			},
		}

		source := rovatslog.NewLoggingPageSource(inner, logger)
		page, err := source.Load(context.Background(), rovat.PageFile{ID: "1903_page_4"})

		require.NoError(t, err)
		assert.Equal(t, "1903_page_4", page.ID)
		output := buf.String()
		assert.Contains(t, output, "page load")
		assert.Contains(t, output, "page=1903_page_4")
		assert.Contains(t, output, "blocks=3")
	})
}
