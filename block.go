package rovat

import "strings"

// Role classifies a layout block by its structural function on the page.
type Role int

// Role values, from least to most structurally significant.
const (
	RoleUnknown Role = iota
	RoleBody
	RoleFooter
	RoleSubtitle
	RoleColumnTitle
	RolePageHeader
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleBody:
		return "body"
	case RoleFooter:
		return "footer"
	case RoleSubtitle:
		return "subtitle"
	case RoleColumnTitle:
		return "column_title"
	case RolePageHeader:
		return "page_header"
	default:
		return "unknown"
	}
}

// ParseRole maps a layout-analysis label to a Role. The labels are the
// Hungarian annotation vocabulary of the newspaper corpus. Unrecognized
// labels map to RoleUnknown rather than failing, preserving tolerance
// toward annotation drift between archive batches.
func ParseRole(label string) Role {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "szoveg":
		return RoleBody
	case "hirdetes", "lablec":
		return RoleFooter
	case "alcim", "cim":
		return RoleSubtitle
	case "hasabkozi_cim":
		return RoleColumnTitle
	case "oldalfejlec", "szeles_cim":
		return RolePageHeader
	default:
		return RoleUnknown
	}
}

// SpanningColumn is the column index assigned to blocks that span the full
// page width (mastheads, wide advertisements) and therefore belong to no
// single print column.
const SpanningColumn = -1

// LayoutBlock is one OCR-detected text region on a page.
type LayoutBlock struct {
	// Text is the raw decoded OCR text. May contain OCR artifacts.
	Text string `json:"text"`

	// Role is the structural role derived from the layout label.
	Role Role `json:"role"`

	// Column is the 0-based print column containing the block, or
	// SpanningColumn for full-width blocks.
	Column int `json:"column"`

	// Row is the 0-based vertical order of the block within its column.
	Row int `json:"row"`

	// Bounding geometry in page pixel coordinates, top-left origin.
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns the horizontal extent of the block.
func (b LayoutBlock) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent of the block.
func (b LayoutBlock) Height() float64 { return b.Y2 - b.Y1 }

// CenterX returns the horizontal center of the block, used for column
// assignment.
func (b LayoutBlock) CenterX() float64 { return (b.X1 + b.X2) / 2 }

// Spanning reports whether the block spans the full page width rather than
// sitting inside one print column.
func (b LayoutBlock) Spanning() bool { return b.Column == SpanningColumn }

// BlockRef identifies a block by position within the ordered page set.
// Sections hold refs rather than live blocks so pages can be released once
// a section closes.
type BlockRef struct {
	PageID string `json:"pageId"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
}
