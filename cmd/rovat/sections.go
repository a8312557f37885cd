package main

import (
	"fmt"
	"strings"

	"github.com/bkovacs/rovat"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
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

	sections, err := deps.Sections.FindSections(deps.Ctx, rovat.SectionFilter{
		BatchID: &batch.ID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rovat.ErrorMessage(err))
		return err
	}

	if len(sections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: batch %q has no sections.\n", c.Name)
		return rovat.Errorf(rovat.ENOTFOUND, "batch %q has no sections", c.Name)
	}

	fmt.Fprintf(deps.Stdout, "Sections for %s (%d total):\n\n", c.Name, len(sections))
	for i, section := range sections {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     starts %s, spans %s\n",
			i+1, section.TitleText, section.Start.PageID,
			strings.Join(section.SourcePageIDs, ", "))
		if c.Full {
			if section.HeaderText != "" {
				fmt.Fprintf(deps.Stdout, "     %s\n", section.HeaderText)
			}
			fmt.Fprintf(deps.Stdout, "     %s\n", section.BodyText)
		}
	}

	return nil
}
