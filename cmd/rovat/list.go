package main

import (
	"fmt"

	"github.com/bkovacs/rovat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	batches, err := deps.Batches.FindBatches(deps.Ctx, rovat.BatchFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rovat.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintln(deps.Stdout, "No batches found. Use 'rovat scan' to create one.")
		return nil
	}

	for _, b := range batches {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d pages  %d sections\n",
			b.ID, b.Name, b.SourceDir, b.Pages, b.Sections)
	}

	return nil
}
