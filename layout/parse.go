// Package layout parses raw layout-analysis output for one newspaper page
// and repairs its column and row segmentation. The input is the annotation
// JSON produced by the archive's OCR stage: a list of labeled shapes with
// polygon points and per-shape OCR text.
package layout

import (
	"encoding/json"
	"strings"

	"github.com/bkovacs/rovat"
)

// defaultPageWidth is used when a layout file omits imageWidth. The archive
// scans are roughly 3000px wide.
const defaultPageWidth = 3000

type rawPage struct {
	Shapes      []rawShape `json:"shapes"`
	ImageWidth  float64    `json:"imageWidth"`
	ImageHeight float64    `json:"imageHeight"`
}

type rawShape struct {
	Label  string      `json:"label"`
	Points [][]float64 `json:"points"`

	// Text fields in order of preference. Older batches of the corpus
	// carry OCR output under different keys.
	Tesseract   rawTesseract `json:"tesseract_output"`
	Text        string       `json:"text"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Value       string       `json:"value"`
}

type rawTesseract struct {
	OCRText string `json:"ocr_text"`
}

// text returns the shape's OCR text, trying the known field locations in
// order of preference.
func (s rawShape) text() string {
	for _, t := range []string{s.Tesseract.OCRText, s.Text, s.Description, s.Content, s.Value} {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return ""
}

// bounds returns the shape's bounding box. Points with fewer than two
// coordinates carry no geometry and are skipped; a shape with fewer than
// two usable points reports a zero box, which normalization drops as
// degenerate.
func (s rawShape) bounds() (x1, y1, x2, y2 float64) {
	seen := 0
	for _, p := range s.Points {
		if len(p) < 2 {
			continue
		}
		if seen == 0 {
			x1, y1, x2, y2 = p[0], p[1], p[0], p[1]
		} else {
			x1, y1 = min(x1, p[0]), min(y1, p[1])
			x2, y2 = max(x2, p[0]), max(y2, p[1])
		}
		seen++
	}
	if seen < 2 {
		return 0, 0, 0, 0
	}
	return x1, y1, x2, y2
}

// Parse decodes one page's raw layout JSON. Column and row indices are not
// assigned here; pass the result through a Normalizer.
// Returns EINVALID if the JSON cannot be decoded.
func Parse(id string, data []byte) (*rovat.Page, error) {
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, rovat.Errorf(rovat.EINVALID, "malformed layout for page %q: %v", id, err)
	}

	page := &rovat.Page{
		ID:     id,
		Width:  raw.ImageWidth,
		Height: raw.ImageHeight,
	}

	for _, shape := range raw.Shapes {
		x1, y1, x2, y2 := shape.bounds()
		page.Blocks = append(page.Blocks, rovat.LayoutBlock{
			Text: shape.text(),
			Role: rovat.ParseRole(shape.Label),
			X1:   x1,
			Y1:   y1,
			X2:   x2,
			Y2:   y2,
		})
	}

	if page.Width == 0 {
		page.Width = defaultPageWidth
	}
	if page.Height == 0 {
		for _, b := range page.Blocks {
			page.Height = max(page.Height, b.Y2)
		}
	}

	return page, nil
}
