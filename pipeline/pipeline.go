// Package pipeline provides section extraction orchestration.
// It coordinates page loading, sequential scanning, duplicate detection,
// and storage of extracted sections.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/bloom"
	"github.com/bkovacs/rovat/scan"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for duplicate detection.
const (
	// dedupeExpectedSections is the expected number of sections for Bloom filter sizing.
	dedupeExpectedSections = 10000
	// dedupeFalsePositiveRate is the acceptable false positive rate before
	// falling through to a catalog lookup.
	dedupeFalsePositiveRate = 0.01
)

// Pipeline orchestrates the extraction of sections from an archive folder.
type Pipeline struct {
	Source      rovat.PageSource
	Store       rovat.SectionStore
	Sections    rovat.SectionService
	Batches     rovat.BatchService
	Match       scan.Config
	Concurrency int
	Dedupe      bool
}

// Result holds the outcome of an extraction run.
type Result struct {
	Pages      int
	Skipped    int
	Sections   int
	Duplicates int
	Bytes      int
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	PageID    string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPageLoaded
	ProgressPageFailed
	ProgressSectionClosed
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
type ProgressFunc func(event ProgressEvent)

// loadResult holds the outcome of loading a single page file.
type loadResult struct {
	position int
	file     rovat.PageFile
	page     *rovat.Page
	err      error
}

// Run extracts sections from the batch's source and persists them. Pages
// are loaded concurrently but scanned strictly in the source's natural
// order, so sections that continue across page boundaries stay intact.
// The progress callback, if provided, receives events as the run proceeds.
func (p *Pipeline) Run(ctx context.Context, batch *rovat.Batch, progress ProgressFunc) (*Result, error) {
	files, err := p.Source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	if len(files) == 0 {
		return nil, rovat.Errorf(rovat.ENOTFOUND, "no layout files found in source")
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan loadResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				page, err := p.Source.Load(gctx, file)
				resultCh <- loadResult{position: i, file: file, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect into position order before scanning. The scanner is a
	// sequential state machine and must see pages in natural order.
	results := make([]loadResult, total)
	var skipped int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressPageFailed,
					Completed: int(completed.Load()),
					Total:     total,
					PageID:    result.file.ID,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressPageLoaded,
				Completed: int(completed.Load()),
				Total:     total,
				PageID:    result.file.ID,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		p.abort()
		return nil, err
	}

	match := p.Match
	if len(match.Tokens) == 0 {
		match = scan.DefaultConfig()
	}
	scanner := scan.NewWithConfig(match)
	for _, result := range results {
		if result.err != nil {
			continue
		}
		scanner.Page(result.page)
	}
	sections := scanner.Finish()

	result, err := p.persist(ctx, batch, sections, progress)
	if err != nil {
		p.abort()
		return nil, err
	}
	result.Pages = total - skipped
	result.Skipped = skipped

	if p.Batches != nil && batch.ID != "" {
		_, err := p.Batches.UpdateBatch(ctx, batch.ID, rovat.BatchUpdate{
			Pages:    &result.Pages,
			Sections: &result.Sections,
		})
		if err != nil {
			return nil, fmt.Errorf("updating batch counts: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// persist writes sections to the store and catalog, dropping duplicates
// when deduplication is enabled, and commits the store on success.
func (p *Pipeline) persist(ctx context.Context, batch *rovat.Batch, sections []*rovat.Section, progress ProgressFunc) (*Result, error) {
	var filter *bloom.Filter
	if p.Dedupe {
		filter = bloom.NewFilter(dedupeExpectedSections, dedupeFalsePositiveRate)
		if err := p.seedFilter(ctx, filter); err != nil {
			return nil, err
		}
	}

	var result Result
	position := 0
	for _, section := range sections {
		section.BatchID = batch.ID
		section.ContentHash = computeHash(section.BodyText)

		if filter != nil {
			dup, err := p.isDuplicate(ctx, filter, section.ContentHash)
			if err != nil {
				return nil, err
			}
			if dup {
				result.Duplicates++
				continue
			}
			filter.Add(section.ContentHash)
		}

		section.Position = position
		position++

		if p.Store != nil {
			if err := p.Store.WriteSection(ctx, section); err != nil {
				return nil, fmt.Errorf("writing section %q: %w", section.TitleText, err)
			}
		}
		if p.Sections != nil {
			if err := p.Sections.CreateSection(ctx, section); err != nil {
				return nil, fmt.Errorf("cataloging section %q: %w", section.TitleText, err)
			}
		}

		result.Sections++
		result.Bytes += len(section.BodyText)

		if progress != nil {
			progress(ProgressEvent{
				Type:   ProgressSectionClosed,
				PageID: section.Start.PageID,
				Title:  section.TitleText,
			})
		}
	}

	if p.Store != nil {
		if err := p.Store.Commit(); err != nil {
			return nil, fmt.Errorf("committing sections: %w", err)
		}
	}

	return &result, nil
}

// seedFilter loads content hashes from prior runs into the Bloom filter so
// deduplication works across batches, not just within one.
func (p *Pipeline) seedFilter(ctx context.Context, filter *bloom.Filter) error {
	if p.Sections == nil {
		return nil
	}
	existing, err := p.Sections.FindSections(ctx, rovat.SectionFilter{})
	if err != nil {
		return fmt.Errorf("seeding duplicate filter: %w", err)
	}
	for _, section := range existing {
		filter.Add(section.ContentHash)
	}
	return nil
}

// isDuplicate reports whether a content hash has been seen before. The
// Bloom filter gives a cheap negative; a positive is confirmed against the
// catalog because the filter admits false positives.
func (p *Pipeline) isDuplicate(ctx context.Context, filter *bloom.Filter, hash string) (bool, error) {
	if !filter.Test(hash) {
		return false, nil
	}
	if p.Sections == nil {
		return true, nil
	}
	existing, err := p.Sections.FindSections(ctx, rovat.SectionFilter{
		ContentHash: &hash,
		Limit:       1,
	})
	if err != nil {
		return false, fmt.Errorf("checking for duplicate: %w", err)
	}
	return len(existing) > 0, nil
}

// abort discards any partially written output. Abort failures are
// ignored; the run error is the one worth reporting.
func (p *Pipeline) abort() {
	if p.Store != nil {
		_ = p.Store.Abort()
	}
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
