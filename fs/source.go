// Package fs provides file-based page input and section output.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/layout"
)

// Ensure Source implements rovat.PageSource at compile time.
var _ rovat.PageSource = (*Source)(nil)

// Source discovers layout JSON files under a directory and loads them as
// normalized pages. A layout file participates only when a sibling scan
// image exists, matching the archive's JSON/JPEG pairing convention.
// Orphan JSON files are leftovers of aborted OCR runs.
type Source struct {
	dir        string
	normalizer *layout.Normalizer
}

// NewSource creates a Source over the given directory with the default
// layout configuration.
func NewSource(dir string) *Source {
	return NewSourceWithNormalizer(dir, layout.NewNormalizer())
}

// NewSourceWithNormalizer creates a Source using a custom Normalizer.
func NewSourceWithNormalizer(dir string, normalizer *layout.Normalizer) *Source {
	return &Source{dir: dir, normalizer: normalizer}
}

var imageExtensions = []string{".jpg", ".jpeg", ".JPG", ".JPEG"}

// List walks the directory tree and returns paired layout files in natural
// page order. Returns ECONFLICT if the filenames cannot be totally
// ordered.
func (s *Source) List(ctx context.Context) ([]rovat.PageFile, error) {
	var files []rovat.PageFile

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		if !hasSiblingImage(path) {
			return nil
		}

		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		files = append(files, rovat.PageFile{
			ID:   filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := rovat.OrderPages(files); err != nil {
		return nil, err
	}
	return files, nil
}

// Load reads, parses, and normalizes one page.
// Returns EINVALID if the layout data is malformed.
func (s *Source) Load(ctx context.Context, file rovat.PageFile) (*rovat.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, rovat.Errorf(rovat.EINVALID, "cannot read layout for page %q: %v", file.ID, err)
	}

	page, err := layout.Parse(file.ID, data)
	if err != nil {
		return nil, err
	}
	return s.normalizer.Normalize(page), nil
}

func hasSiblingImage(jsonPath string) bool {
	base := strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath))
	for _, ext := range imageExtensions {
		if _, err := os.Stat(base + ext); err == nil {
			return true
		}
	}
	return false
}
