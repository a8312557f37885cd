package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/bkovacs/rovat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rovat.BatchService = (*BatchService)(nil)

// BatchService implements rovat.BatchService using SQLite.
type BatchService struct {
	db *DB
}

// NewBatchService creates a new BatchService.
func NewBatchService(db *DB) *BatchService {
	return &BatchService{db: db}
}

// CreateBatch creates a new batch.
func (s *BatchService) CreateBatch(ctx context.Context, batch *rovat.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	batch.ID = uuid.New().String()
	batch.CreatedAt = time.Now().UTC()
	batch.UpdatedAt = batch.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO batches (id, name, source_dir, pages, sections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, batch.ID, batch.Name, batch.SourceDir, batch.Pages, batch.Sections,
		batch.CreatedAt.Format(time.RFC3339), batch.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindBatchByID retrieves a batch by ID.
func (s *BatchService) FindBatchByID(ctx context.Context, id string) (*rovat.Batch, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_dir, pages, sections, created_at, updated_at
		FROM batches
		WHERE id = ?
	`, id)

	batch, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, rovat.Errorf(rovat.ENOTFOUND, "batch not found")
	}
	return batch, err
}

// FindBatches retrieves batches matching the filter, newest first.
func (s *BatchService) FindBatches(ctx context.Context, filter rovat.BatchFilter) ([]*rovat.Batch, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_dir, pages, sections, created_at, updated_at FROM batches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*rovat.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, rows.Err()
}

// UpdateBatch updates an existing batch.
func (s *BatchService) UpdateBatch(ctx context.Context, id string, upd rovat.BatchUpdate) (*rovat.Batch, error) {
	batch, err := s.FindBatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Pages != nil {
		batch.Pages = *upd.Pages
	}
	if upd.Sections != nil {
		batch.Sections = *upd.Sections
	}
	batch.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE batches
		SET pages = ?, sections = ?, updated_at = ?
		WHERE id = ?
	`, batch.Pages, batch.Sections, batch.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// DeleteBatch permanently removes a batch; the schema cascades to its
// sections.
func (s *BatchService) DeleteBatch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM batches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rovat.Errorf(rovat.ENOTFOUND, "batch not found")
	}

	return nil
}

func scanBatch(row rowScanner) (*rovat.Batch, error) {
	var batch rovat.Batch
	var createdAt, updatedAt string

	if err := row.Scan(&batch.ID, &batch.Name, &batch.SourceDir, &batch.Pages,
		&batch.Sections, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if batch.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if batch.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &batch, nil
}
