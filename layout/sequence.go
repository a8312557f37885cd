package layout

import (
	"sort"

	"github.com/bkovacs/rovat"
)

// Sequence returns a page's blocks in the order a human reader traverses
// them: masthead blocks first (they span the full page width), then other
// full-width blocks, then column-major, every block of column 0 top to
// bottom before column 1.
func Sequence(p *rovat.Page) []rovat.LayoutBlock {
	out := make([]rovat.LayoutBlock, len(p.Blocks))
	copy(out, p.Blocks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ra, rb := sequenceRank(a), sequenceRank(b); ra != rb {
			return ra < rb
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Row < b.Row
	})

	return out
}

func sequenceRank(b rovat.LayoutBlock) int {
	switch {
	case b.Role == rovat.RolePageHeader:
		return 0
	case b.Spanning():
		return 1
	default:
		return 2
	}
}
