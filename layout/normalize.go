package layout

import (
	"sort"

	"github.com/bkovacs/rovat"
)

// Config controls layout repair.
type Config struct {
	// Columns is the expected number of print columns per page.
	Columns int

	// MinColumnFraction is the fraction of the nominal column width below
	// which a detected column is merged into a neighbor. The segmentation
	// occasionally splits one print column into two detected regions;
	// a column this far under nominal width indicates such a split. The
	// threshold is a tunable, validated against sample pages rather than a
	// confirmed constant of the corpus.
	MinColumnFraction float64

	// SpanningFactor is the multiple of the nominal column width above
	// which a variable-width block (advertisements) is treated as
	// full-width rather than column-bound.
	SpanningFactor float64

	// ExtendToBottom extends each column's trailing body block to the
	// common page bottom, compensating for OCR regions cut short of the
	// print area.
	ExtendToBottom bool

	// BelowTolerance is the vertical slack, in pixels, when testing
	// whether any element sits directly below a trailing block.
	BelowTolerance float64
}

// DefaultConfig returns the configuration matching the Népszava corpus:
// three print columns per page.
func DefaultConfig() Config {
	return Config{
		Columns:           3,
		MinColumnFraction: 0.4,
		SpanningFactor:    1.5,
		ExtendToBottom:    true,
		BelowTolerance:    50,
	}
}

// Normalizer repairs a page's column and row segmentation. Normalization is
// idempotent: re-normalizing an already-normalized page yields the same
// block list.
type Normalizer struct {
	config Config
}

// NewNormalizer creates a Normalizer with the default configuration.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithConfig(DefaultConfig())
}

// NewNormalizerWithConfig creates a Normalizer with a custom configuration.
func NewNormalizerWithConfig(config Config) *Normalizer {
	if config.Columns < 1 {
		config.Columns = 1
	}
	return &Normalizer{config: config}
}

// Normalize returns a corrected copy of the page: degenerate shapes
// dropped, implausibly narrow columns merged, and contiguous 0-based
// column and row indices assigned. Full-width blocks get
// rovat.SpanningColumn and are row-numbered among themselves by vertical
// position. A page with no usable blocks normalizes to an empty page,
// never an error.
func (n *Normalizer) Normalize(p *rovat.Page) *rovat.Page {
	out := &rovat.Page{
		ID:     p.ID,
		Seq:    p.Seq,
		Width:  p.Width,
		Height: p.Height,
	}

	nominal := p.Width / float64(n.config.Columns)

	var spanning, bound []rovat.LayoutBlock
	for _, b := range p.Blocks {
		if b.Width() <= 0 || b.Height() <= 0 {
			continue
		}
		switch {
		case b.Role == rovat.RolePageHeader:
			spanning = append(spanning, b)
		case b.Role == rovat.RoleFooter && b.Width() > n.config.SpanningFactor*nominal:
			spanning = append(spanning, b)
		default:
			bound = append(bound, b)
		}
	}

	boundaries := n.columnBoundaries(bound, p.Width)

	columns := make([][]rovat.LayoutBlock, len(boundaries)+1)
	for _, b := range bound {
		idx := columnFor(b.CenterX(), boundaries)
		columns[idx] = append(columns[idx], b)
	}

	sort.SliceStable(spanning, func(i, j int) bool { return spanning[i].Y1 < spanning[j].Y1 })
	for row, b := range spanning {
		b.Column = rovat.SpanningColumn
		b.Row = row
		out.Blocks = append(out.Blocks, b)
	}

	// Re-number so column indices remain contiguous from 0 even after
	// merging dropped a detected column.
	col := 0
	for _, blocks := range columns {
		if len(blocks) == 0 {
			continue
		}
		sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Y1 < blocks[j].Y1 })
		for row, b := range blocks {
			b.Column = col
			b.Row = row
			out.Blocks = append(out.Blocks, b)
		}
		col++
	}

	if n.config.ExtendToBottom {
		n.extendTrailingBlocks(out)
	}

	return out
}

// columnBoundaries detects the separator x-coordinates between print
// columns by finding the largest gaps in the sorted horizontal centers of
// column-bound content, then merges any resulting column narrower than the
// configured minimum into a neighbor. Falls back to equal division when
// there is too little content to analyze.
func (n *Normalizer) columnBoundaries(bound []rovat.LayoutBlock, width float64) []float64 {
	var centers []float64
	for _, b := range bound {
		if b.Role == rovat.RoleBody || b.Role == rovat.RoleColumnTitle {
			centers = append(centers, b.CenterX())
		}
	}
	sort.Float64s(centers)

	if len(centers) < n.config.Columns {
		return equalDivision(width, n.config.Columns)
	}

	type gap struct{ size, mid float64 }
	gaps := make([]gap, 0, len(centers)-1)
	for i := 1; i < len(centers); i++ {
		gaps = append(gaps, gap{
			size: centers[i] - centers[i-1],
			mid:  (centers[i] + centers[i-1]) / 2,
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].size > gaps[j].size })

	want := n.config.Columns - 1
	if want > len(gaps) {
		want = len(gaps)
	}
	boundaries := make([]float64, 0, want)
	for _, g := range gaps[:want] {
		boundaries = append(boundaries, g.mid)
	}
	sort.Float64s(boundaries)

	return n.mergeNarrowColumns(boundaries, width)
}

// mergeNarrowColumns drops boundaries that produce a column span narrower
// than MinColumnFraction of the nominal column width. Each removal merges
// the narrow span with its narrower neighbor, which brings the combined
// width closest to nominal.
func (n *Normalizer) mergeNarrowColumns(boundaries []float64, width float64) []float64 {
	threshold := n.config.MinColumnFraction * width / float64(n.config.Columns)

	for len(boundaries) > 0 {
		edges := append(append([]float64{0}, boundaries...), width)

		narrow := -1
		for i := 0; i+1 < len(edges); i++ {
			span := edges[i+1] - edges[i]
			if span < threshold && (narrow < 0 || span < edges[narrow+1]-edges[narrow]) {
				narrow = i
			}
		}
		if narrow < 0 {
			break
		}

		switch {
		case narrow == 0:
			boundaries = boundaries[1:]
		case narrow == len(edges)-2:
			boundaries = boundaries[:len(boundaries)-1]
		default:
			left := edges[narrow] - edges[narrow-1]
			right := edges[narrow+2] - edges[narrow+1]
			if left < right {
				boundaries = append(boundaries[:narrow-1], boundaries[narrow:]...)
			} else {
				boundaries = append(boundaries[:narrow], boundaries[narrow+1:]...)
			}
		}
	}
	return boundaries
}

func equalDivision(width float64, columns int) []float64 {
	boundaries := make([]float64, 0, columns-1)
	for i := 1; i < columns; i++ {
		boundaries = append(boundaries, width*float64(i)/float64(columns))
	}
	return boundaries
}

func columnFor(centerX float64, boundaries []float64) int {
	for i, b := range boundaries {
		if centerX < b {
			return i
		}
	}
	return len(boundaries)
}

// extendTrailingBlocks extends the bottommost body block of each column to
// the common page bottom, provided nothing sits directly below it. Columns
// cut short by the OCR stage otherwise lose their final lines of context
// in downstream geometry checks.
func (n *Normalizer) extendTrailingBlocks(p *rovat.Page) {
	tol := n.config.BelowTolerance

	var candidates []int
	byColumn := map[int]int{}
	for i, b := range p.Blocks {
		if b.Spanning() || b.Role != rovat.RoleBody {
			continue
		}
		if j, ok := byColumn[b.Column]; !ok || b.Y2 > p.Blocks[j].Y2 {
			byColumn[b.Column] = i
		}
	}

	for _, i := range sortedValues(byColumn) {
		if !n.hasElementBelow(p, i, tol) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}

	var bottom float64
	for _, i := range candidates {
		bottom = max(bottom, p.Blocks[i].Y2)
	}
	for _, i := range candidates {
		p.Blocks[i].Y2 = bottom
	}
}

// hasElementBelow reports whether any block sits directly below block i:
// starting within the tolerance window under its bottom edge and
// overlapping it horizontally.
func (n *Normalizer) hasElementBelow(p *rovat.Page, i int, tol float64) bool {
	b := p.Blocks[i]
	for j, other := range p.Blocks {
		if j == i {
			continue
		}
		if other.Y1 > b.Y2-tol && other.Y1 < b.Y2+tol*3 &&
			!(other.X2 < b.X1 || other.X1 > b.X2) {
			return true
		}
	}
	return false
}

func sortedValues(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	values := make([]int, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}
