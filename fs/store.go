package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bkovacs/rovat"
)

// Ensure Store implements rovat.SectionStore at compile time.
var _ rovat.SectionStore = (*Store)(nil)

// Store implements rovat.SectionStore with atomic run semantics. Sections
// are written to a temporary directory, then moved atomically on Commit,
// so an interrupted run never leaves partial output where the downstream
// extraction stage would pick it up.
type Store struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewStore creates a Store for the output directory baseDir/name. Sections
// are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	tmp := filepath.Join(baseDir, name+".tmp")
	return &Store{
		baseDir: baseDir,
		name:    name,
		writer:  NewWriter(tmp),
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteSection writes a section into the pending temporary directory.
func (s *Store) WriteSection(ctx context.Context, section *rovat.Section) error {
	return s.writer.WriteSection(ctx, section)
}

// Commit atomically replaces the final directory with the pending one.
func (s *Store) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards pending output.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
