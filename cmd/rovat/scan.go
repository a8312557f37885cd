package main

import (
	"fmt"
	"path/filepath"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/pipeline"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	name := c.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(c.Input))
	}

	batch := &rovat.Batch{
		Name:      name,
		SourceDir: c.Input,
	}
	if err := deps.Batches.CreateBatch(deps.Ctx, batch); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rovat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created batch %q (%s)\n", name, batch.ID)

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case pipeline.ProgressPageFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.PageID, event.Error)
		case pipeline.ProgressSectionClosed:
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", event.PageID, event.Title)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, batch, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scanning: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Extracted %d sections from %d pages (%s)\n",
		result.Sections, result.Pages, pipeline.FormatBytes(result.Bytes))
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d unreadable pages\n", result.Skipped)
	}
	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  Dropped %d duplicate sections\n", result.Duplicates)
	}

	return nil
}
