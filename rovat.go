// Package rovat extracts recurring feature columns ("rovat") from
// OCR layout analysis of scanned multi-column newspaper pages. It
// reconstructs the continuous text of a named section in reading order,
// across column and page boundaries, and emits one record per section
// occurrence together with the masthead it was printed under.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, fs/, layout/).
package rovat
