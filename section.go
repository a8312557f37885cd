package rovat

import (
	"context"
	"time"
)

// Section is one extracted occurrence of the target feature column: the
// text between a matching column title and the next header-level block,
// possibly spanning several pages. Sections own their concatenated text and
// hold only page identifiers, never live page references.
type Section struct {
	ID      string `json:"id"`
	BatchID string `json:"batchId"`

	// HeaderText is the masthead text of the page the section starts on,
	// or empty if that page carried no recognizable masthead.
	HeaderText string `json:"headerText"`

	// TitleText is the whitespace-normalized text of the column title that
	// opened the section.
	TitleText string `json:"titleText"`

	// BodyText is the concatenated, whitespace-normalized text of all
	// constituent body blocks in reading order.
	BodyText string `json:"bodyText"`

	// SourcePageIDs lists the pages the section spans, in reading order.
	SourcePageIDs []string `json:"sourcePageIds"`

	// Start identifies the column title block that opened the section.
	Start BlockRef `json:"start"`

	// ContentHash is the xxHash of BodyText, used for duplicate detection.
	ContentHash string `json:"contentHash"`

	// Position is the section's 0-based emission order within its run.
	Position int `json:"position"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Start.PageID == "" {
		return Errorf(EINVALID, "section start page required")
	}
	if len(s.SourcePageIDs) == 0 {
		return Errorf(EINVALID, "section source pages required")
	}
	return nil
}

// SectionWriter writes closed sections to their output representation.
type SectionWriter interface {
	WriteSection(ctx context.Context, section *Section) error
}

// SectionStore persists sections with atomic run semantics: sections are
// written to a temporary location, made permanent by Commit, and discarded
// by Abort. A failed run never leaves partial output visible.
type SectionStore interface {
	SectionWriter
	Commit() error
	Abort() error
}

// SectionService represents a service for managing the section catalog.
type SectionService interface {
	// CreateSection records a new section.
	CreateSection(ctx context.Context, section *Section) error

	// FindSectionByID retrieves a section by ID.
	// Returns ENOTFOUND if the section does not exist.
	FindSectionByID(ctx context.Context, id string) (*Section, error)

	// FindSections retrieves sections matching the filter, ordered by
	// position.
	FindSections(ctx context.Context, filter SectionFilter) ([]*Section, error)

	// DeleteSection permanently removes a section.
	// Returns ENOTFOUND if the section does not exist.
	DeleteSection(ctx context.Context, id string) error

	// DeleteSectionsByBatch removes all sections for a batch.
	DeleteSectionsByBatch(ctx context.Context, batchID string) error
}

// SectionFilter represents a filter for FindSections.
type SectionFilter struct {
	ID          *string `json:"id"`
	BatchID     *string `json:"batchId"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
