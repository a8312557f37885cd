package scan_test

import (
	"strings"
	"testing"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masthead(text string) rovat.LayoutBlock {
	return rovat.LayoutBlock{Role: rovat.RolePageHeader, Text: text, Column: rovat.SpanningColumn, Row: 0}
}

func title(text string, column, row int) rovat.LayoutBlock {
	return rovat.LayoutBlock{Role: rovat.RoleColumnTitle, Text: text, Column: column, Row: row}
}

func bodyBlock(text string, column, row int) rovat.LayoutBlock {
	return rovat.LayoutBlock{Role: rovat.RoleBody, Text: text, Column: column, Row: row}
}

func TestScanner(t *testing.T) {
	t.Parallel()

	t.Run("extracts a section bounded by the next title", func(t *testing.T) {
		t.Parallel()

		// Spec scenario: one page, masthead, matching title, one body
		// block, then an unrelated title.
		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			masthead("NÉPSZAVA 1903"),
			title("Tőke és munka", 0, 0),
			bodyBlock("Sztrájk a bányában.", 0, 1),
			title("Egyéb hírek", 0, 2),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "NÉPSZAVA 1903", sections[0].HeaderText)
		assert.Equal(t, "Sztrájk a bányában.", sections[0].BodyText)
		assert.Equal(t, []string{"page_1"}, sections[0].SourcePageIDs)
		assert.Equal(t, rovat.BlockRef{PageID: "page_1", Column: 0, Row: 0}, sections[0].Start)
	})

	t.Run("emits an empty section for duplicate adjacent titles", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			title("TŐKE ÉS MUNKA", 0, 1),
			bodyBlock("A vasöntők sztrájkja.", 0, 2),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 2)
		assert.Empty(t, sections[0].BodyText)
		assert.Equal(t, 0, sections[0].Position)
		assert.Equal(t, "A vasöntők sztrájkja.", sections[1].BodyText)
		assert.Equal(t, 1, sections[1].Position)
	})

	t.Run("emits nothing when no title matches", func(t *testing.T) {
		t.Parallel()

		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				masthead("NÉPSZAVA 1903"),
				title("Egyéb hírek", 0, 0),
				bodyBlock("Hír szövege.", 0, 1),
			}},
			{ID: "page_2", Blocks: []rovat.LayoutBlock{
				bodyBlock("Még egy hír.", 0, 0),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		assert.Empty(t, sections)
	})

	t.Run("continues across page boundaries", func(t *testing.T) {
		t.Parallel()

		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				masthead("NÉPSZAVA 1903. május 1."),
				title("Tőke és munka", 2, 0),
				bodyBlock("A sztrájk első fele", 2, 1),
			}},
			{ID: "page_2", Blocks: []rovat.LayoutBlock{
				bodyBlock("és a folytatása.", 0, 0),
				title("Törvényszéki hírek", 0, 1),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "A sztrájk első fele és a folytatása.", sections[0].BodyText)
		assert.Equal(t, []string{"page_1", "page_2"}, sections[0].SourcePageIDs)
	})

	t.Run("keeps the starting page's masthead across pages", func(t *testing.T) {
		t.Parallel()

		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				masthead("NÉPSZAVA 1903. május 1."),
				title("Tőke és munka", 0, 0),
				bodyBlock("Folytatódó tudósítás", 0, 1),
			}},
			{ID: "page_2", Blocks: []rovat.LayoutBlock{
				bodyBlock("további része.", 0, 0),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "NÉPSZAVA 1903. május 1.", sections[0].HeaderText)
	})

	t.Run("a later masthead closes the section", func(t *testing.T) {
		t.Parallel()

		// The sequencer puts mastheads first, so a header on page 2 is a
		// boundary before its body blocks are seen.
		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				title("Tőke és munka", 0, 0),
				bodyBlock("Rövid szakasz.", 0, 1),
			}},
			{ID: "page_2", Blocks: []rovat.LayoutBlock{
				masthead("NÉPSZAVA 1903. május 2."),
				bodyBlock("Másik oldal szövege.", 0, 0),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "Rövid szakasz.", sections[0].BodyText)
		assert.Equal(t, []string{"page_1"}, sections[0].SourcePageIDs)
	})

	t.Run("missing masthead yields empty header text", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			bodyBlock("Szöveg.", 0, 1),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Empty(t, sections[0].HeaderText)
	})

	t.Run("subtitles close the section", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			bodyBlock("Első rész.", 0, 1),
			{Role: rovat.RoleSubtitle, Text: "Alcím", Column: 0, Row: 2},
			bodyBlock("Ez már nem tartozik bele.", 0, 3),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "Első rész.", sections[0].BodyText)
	})

	t.Run("footers are transparent", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			bodyBlock("Első fele", 0, 1),
			{Role: rovat.RoleFooter, Text: "HIRDETÉS", Column: 0, Row: 2},
			bodyBlock("második fele.", 0, 3),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "Első fele második fele.", sections[0].BodyText)
	})

	t.Run("empty pages are transparent", func(t *testing.T) {
		t.Parallel()

		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				title("Tőke és munka", 0, 0),
				bodyBlock("Eleje", 0, 1),
			}},
			{ID: "page_2"},
			{ID: "page_3", Blocks: []rovat.LayoutBlock{
				bodyBlock("vége.", 0, 0),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "Eleje vége.", sections[0].BodyText)
		assert.Equal(t, []string{"page_1", "page_3"}, sections[0].SourcePageIDs)
	})

	t.Run("unknown blocks contribute text", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			{Role: rovat.RoleUnknown, Text: "besorolatlan szöveg", Column: 0, Row: 1},
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "besorolatlan szöveg", sections[0].BodyText)
	})

	t.Run("normalizes whitespace in body text", func(t *testing.T) {
		t.Parallel()

		page := &rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			bodyBlock("  Sztrájk\n\na   bányában. ", 0, 1),
			bodyBlock("\tFolytatás.\n", 0, 2),
		}}

		sections := scan.ScanPages([]*rovat.Page{page}, scan.DefaultConfig())

		require.Len(t, sections, 1)
		assert.Equal(t, "Sztrájk a bányában. Folytatás.", sections[0].BodyText)
	})

	t.Run("body text never contains boundary text", func(t *testing.T) {
		t.Parallel()

		pages := []*rovat.Page{
			{ID: "page_1", Blocks: []rovat.LayoutBlock{
				masthead("NÉPSZAVA 1903"),
				title("Tőke és munka", 0, 0),
				bodyBlock("Tartalom egy.", 0, 1),
				title("Egyéb hírek", 1, 0),
				bodyBlock("Más rovat.", 1, 1),
				title("Tőke és munka", 2, 0),
				bodyBlock("Tartalom kettő.", 2, 1),
			}},
		}

		sections := scan.ScanPages(pages, scan.DefaultConfig())

		require.Len(t, sections, 2)
		for _, s := range sections {
			assert.NotContains(t, s.BodyText, "NÉPSZAVA")
			assert.NotContains(t, s.BodyText, "Egyéb hírek")
			assert.False(t, strings.Contains(s.BodyText, "Tőke és munka"))
		}
		assert.Equal(t, "Tartalom egy.", sections[0].BodyText)
		assert.Equal(t, "Tartalom kettő.", sections[1].BodyText)
	})

	t.Run("end of input closes the open section", func(t *testing.T) {
		t.Parallel()

		scanner := scan.New()
		scanner.Page(&rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
			bodyBlock("Nyitva maradt szakasz.", 0, 1),
		}})

		sections := scanner.Finish()

		require.Len(t, sections, 1)
		assert.Equal(t, "Nyitva maradt szakasz.", sections[0].BodyText)
	})

	t.Run("ignores pages after Finish", func(t *testing.T) {
		t.Parallel()

		scanner := scan.New()
		scanner.Finish()
		scanner.Page(&rovat.Page{ID: "page_1", Blocks: []rovat.LayoutBlock{
			title("Tőke és munka", 0, 0),
		}})

		assert.Empty(t, scanner.Finish())
	})
}
