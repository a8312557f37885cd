package rovat

import (
	"context"
	"time"
)

// Batch represents one extraction run over an archive folder. Batches let
// the catalog distinguish repeated scans of the same issue set.
type Batch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceDir string    `json:"sourceDir"`
	Pages     int       `json:"pages"`
	Sections  int       `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the batch contains invalid fields.
func (b *Batch) Validate() error {
	if b.Name == "" {
		return Errorf(EINVALID, "batch name required")
	}
	if b.SourceDir == "" {
		return Errorf(EINVALID, "batch source directory required")
	}
	return nil
}

// BatchService represents a service for managing extraction batches.
type BatchService interface {
	// CreateBatch creates a new batch.
	CreateBatch(ctx context.Context, batch *Batch) error

	// FindBatchByID retrieves a batch by ID.
	// Returns ENOTFOUND if the batch does not exist.
	FindBatchByID(ctx context.Context, id string) (*Batch, error)

	// FindBatches retrieves batches matching the filter.
	FindBatches(ctx context.Context, filter BatchFilter) ([]*Batch, error)

	// UpdateBatch updates an existing batch.
	// Returns ENOTFOUND if the batch does not exist.
	UpdateBatch(ctx context.Context, id string, upd BatchUpdate) (*Batch, error)

	// DeleteBatch permanently removes a batch and all associated sections.
	// Returns ENOTFOUND if the batch does not exist.
	DeleteBatch(ctx context.Context, id string) error
}

// BatchFilter represents a filter for FindBatches.
type BatchFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BatchUpdate represents fields that can be updated on a batch.
type BatchUpdate struct {
	Pages    *int `json:"pages"`
	Sections *int `json:"sections"`
}
