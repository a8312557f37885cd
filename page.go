package rovat

import "context"

// Page is one scanned newspaper page after layout normalization.
type Page struct {
	// ID identifies the page within its archive folder, derived from the
	// layout filename relative to the input root.
	ID string

	// Seq is the page's position in natural page order, assigned once the
	// whole file set has been ordered.
	Seq int

	// Width and Height are the scan dimensions in pixels.
	Width  float64
	Height float64

	// Blocks are the page's layout blocks. After normalization the
	// (Column, Row) pairs are unique and rows increase down each column.
	Blocks []LayoutBlock
}

// Header returns the page's first PageHeader block, if any. Mastheads are
// printed once per page; when OCR detects several fragments the topmost one
// wins.
func (p *Page) Header() (LayoutBlock, bool) {
	for _, b := range p.Blocks {
		if b.Role == RolePageHeader {
			return b, true
		}
	}
	return LayoutBlock{}, false
}

// Empty reports whether the page carries no blocks. Empty pages are
// transparent to section extraction: they neither contribute text nor close
// an open section.
func (p *Page) Empty() bool { return len(p.Blocks) == 0 }

// PageFile locates one page's layout data on disk.
type PageFile struct {
	// ID is the page identifier, the layout path relative to the input
	// root without its extension.
	ID string

	// Path is the absolute or caller-relative path of the layout file.
	Path string
}

// PageSource lists and loads layout pages.
// Implementations hide file discovery, natural ordering, parsing, and
// layout normalization.
type PageSource interface {
	// List returns the available page files in natural page order.
	// Returns ECONFLICT if the file set cannot be totally ordered.
	List(ctx context.Context) ([]PageFile, error)

	// Load parses and normalizes one page.
	// Returns EINVALID if the layout data is malformed; the caller treats
	// such pages as skipped rather than aborting the run.
	Load(ctx context.Context, file PageFile) (*Page, error)
}
