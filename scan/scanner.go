package scan

import (
	"strings"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/layout"
)

type state int

const (
	stateScanning state = iota
	stateMatched
	stateDone
)

// Scanner is the section extraction state machine. Feed it pages in
// natural page order via Page, then call Finish to flush any section still
// open at end of input. A Scanner is single-use and not safe for concurrent
// use: the open-section accumulator is owned by one sequential scan.
type Scanner struct {
	config   Config
	state    state
	open     *openSection
	sections []*rovat.Section
	position int
}

// openSection accumulates an in-progress section until a boundary block or
// end of input closes it.
type openSection struct {
	section *rovat.Section
	body    []string
	pages   map[string]struct{}
}

// New creates a Scanner with the default target tokens.
func New() *Scanner {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Scanner matching the given configuration.
func NewWithConfig(config Config) *Scanner {
	return &Scanner{config: config}
}

// Page consumes one page's blocks in reading order. Crossing into a new
// page never closes an open section; only a header-level block or end of
// input does. Empty pages are transparent.
func (s *Scanner) Page(p *rovat.Page) {
	if s.state == stateDone {
		return
	}
	for _, block := range layout.Sequence(p) {
		s.block(p, block)
	}
}

// Finish closes any still-open section and returns all emitted sections in
// order. The scanner is done afterwards; further pages are ignored.
func (s *Scanner) Finish() []*rovat.Section {
	if s.open != nil {
		s.close()
	}
	s.state = stateDone
	return s.sections
}

func (s *Scanner) block(p *rovat.Page, block rovat.LayoutBlock) {
	switch s.state {
	case stateScanning:
		if block.Role == rovat.RoleColumnTitle && s.config.Matches(block.Text) {
			s.openAt(p, block)
		}
	case stateMatched:
		switch block.Role {
		case rovat.RoleBody, rovat.RoleUnknown:
			s.append(p, block)
		case rovat.RoleColumnTitle, rovat.RoleSubtitle, rovat.RolePageHeader:
			// Close, then re-evaluate the boundary as if freshly seen so a
			// matching title immediately opens the next section.
			s.close()
			s.block(p, block)
		case rovat.RoleFooter:
			// Advertisements and page furniture carry no article text.
		}
	}
}

// openAt starts a section at a matching column title, binding the masthead
// of the page the section starts on. A page without a recognizable
// masthead yields an empty header; the downstream consumer falls back to a
// filename-derived date.
func (s *Scanner) openAt(p *rovat.Page, block rovat.LayoutBlock) {
	header := ""
	if h, ok := p.Header(); ok {
		header = collapseWhitespace(h.Text)
	}
	s.open = &openSection{
		section: &rovat.Section{
			HeaderText: header,
			TitleText:  collapseWhitespace(block.Text),
			Start: rovat.BlockRef{
				PageID: p.ID,
				Column: block.Column,
				Row:    block.Row,
			},
			Position: s.position,
		},
		pages: map[string]struct{}{},
	}
	s.position++
	s.addPage(p.ID)
	s.state = stateMatched
}

func (s *Scanner) append(p *rovat.Page, block rovat.LayoutBlock) {
	text := collapseWhitespace(block.Text)
	if text == "" {
		return
	}
	s.open.body = append(s.open.body, text)
	s.addPage(p.ID)
}

func (s *Scanner) addPage(id string) {
	if _, ok := s.open.pages[id]; ok {
		return
	}
	s.open.pages[id] = struct{}{}
	s.open.section.SourcePageIDs = append(s.open.section.SourcePageIDs, id)
}

func (s *Scanner) close() {
	s.open.section.BodyText = strings.Join(s.open.body, " ")
	s.sections = append(s.sections, s.open.section)
	s.open = nil
	s.state = stateScanning
}

// ScanPages runs a full scan over pages already in natural page order and
// returns the emitted sections. Zero matches is a valid outcome, not an
// error.
func ScanPages(pages []*rovat.Page, config Config) []*rovat.Section {
	scanner := NewWithConfig(config)
	for _, p := range pages {
		scanner.Page(p)
	}
	return scanner.Finish()
}
