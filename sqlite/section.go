package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bkovacs/rovat"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rovat.SectionService = (*SectionService)(nil)

// SectionService implements rovat.SectionService using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// HashContent returns the xxHash of body text as a hex string. All catalog
// writers use this so duplicate detection compares like with like.
func HashContent(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// CreateSection records a new section.
func (s *SectionService) CreateSection(ctx context.Context, section *rovat.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}

	section.ID = uuid.New().String()
	if section.ContentHash == "" {
		section.ContentHash = HashContent(section.BodyText)
	}
	section.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (id, batch_id, start_page, start_column, start_row,
			source_pages, header_text, title_text, body_text, content_hash,
			position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, section.ID, section.BatchID, section.Start.PageID, section.Start.Column,
		section.Start.Row, strings.Join(section.SourcePageIDs, "\n"),
		section.HeaderText, section.TitleText, section.BodyText,
		section.ContentHash, section.Position,
		section.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSectionByID retrieves a section by ID.
func (s *SectionService) FindSectionByID(ctx context.Context, id string) (*rovat.Section, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, batch_id, start_page, start_column, start_row, source_pages,
			header_text, title_text, body_text, content_hash, position, created_at
		FROM sections
		WHERE id = ?
	`, id)

	section, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, rovat.Errorf(rovat.ENOTFOUND, "section not found")
	}
	return section, err
}

// FindSections retrieves sections matching the filter, ordered by position.
func (s *SectionService) FindSections(ctx context.Context, filter rovat.SectionFilter) ([]*rovat.Section, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, batch_id, start_page, start_column, start_row,
		source_pages, header_text, title_text, body_text, content_hash,
		position, created_at FROM sections WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BatchID != nil {
		query.WriteString(" AND batch_id = ?")
		args = append(args, *filter.BatchID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*rovat.Section
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

// DeleteSection permanently removes a section.
func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rovat.Errorf(rovat.ENOTFOUND, "section not found")
	}

	return nil
}

// DeleteSectionsByBatch removes all sections for a batch. Removing zero
// sections is not an error.
func (s *SectionService) DeleteSectionsByBatch(ctx context.Context, batchID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE batch_id = ?", batchID)
	return err
}

func scanSection(row rowScanner) (*rovat.Section, error) {
	var section rovat.Section
	var sourcePages, createdAt string

	if err := row.Scan(&section.ID, &section.BatchID, &section.Start.PageID,
		&section.Start.Column, &section.Start.Row, &sourcePages,
		&section.HeaderText, &section.TitleText, &section.BodyText,
		&section.ContentHash, &section.Position, &createdAt); err != nil {
		return nil, err
	}

	if sourcePages != "" {
		section.SourcePageIDs = strings.Split(sourcePages, "\n")
	}

	var err error
	if section.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &section, nil
}
