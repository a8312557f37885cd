package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bkovacs/rovat"
)

// sectionFile is the JSON contract consumed by the downstream
// field-extraction stage.
type sectionFile struct {
	NewspaperHeader string   `json:"newspaper_header"`
	Content         string   `json:"content"`
	SourcePages     []string `json:"source_pages"`
	SourceFile      string   `json:"source_file"`
	TitleText       string   `json:"title_text"`
	ContentLength   int      `json:"content_length"`
}

// FormatSection renders a section as indented JSON.
func FormatSection(section *rovat.Section) ([]byte, error) {
	return json.MarshalIndent(sectionFile{
		NewspaperHeader: section.HeaderText,
		Content:         section.BodyText,
		SourcePages:     section.SourcePageIDs,
		SourceFile:      section.Start.PageID,
		TitleText:       section.TitleText,
		ContentLength:   len(section.BodyText),
	}, "", "  ")
}

// SectionFileName derives a stable output filename from a section's start
// page and emission position.
// Example: start page "1903/maj/page_4", position 2 → "1903_maj_page_4_002.json".
func SectionFileName(section *rovat.Section) string {
	slug := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(section.Start.PageID)
	return fmt.Sprintf("%s_%03d.json", slug, section.Position)
}

// Ensure Writer implements rovat.SectionWriter at compile time.
var _ rovat.SectionWriter = (*Writer)(nil)

// Writer writes sections as JSON files into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer that writes into the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteSection writes one section to disk.
func (w *Writer) WriteSection(ctx context.Context, section *rovat.Section) error {
	if err := section.Validate(); err != nil {
		return err
	}

	data, err := FormatSection(section)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, SectionFileName(section)), data, 0644)
}
