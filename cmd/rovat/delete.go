package main

import (
	"fmt"

	"github.com/bkovacs/rovat"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return rovat.Errorf(rovat.EINVALID, "use --force to confirm deletion")
	}

	batches, err := deps.Batches.FindBatches(deps.Ctx, rovat.BatchFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rovat.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'rovat list' to see available batches.\n", c.Name)
		return rovat.Errorf(rovat.ENOTFOUND, "batch %q not found", c.Name)
	}

	batch := batches[0]
	if err := deps.Batches.DeleteBatch(deps.Ctx, batch.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rovat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted batch %q\n", batch.Name)
	return nil
}
