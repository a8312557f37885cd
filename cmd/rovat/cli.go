package main

import (
	"context"
	"io"

	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/pipeline"
	"github.com/bkovacs/rovat/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Batches  rovat.BatchService
	Sections rovat.SectionService
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan     ScanCmd     `cmd:"" help:"Extract sections from a folder of page layout files"`
	List     ListCmd     `cmd:"" help:"List all extraction batches"`
	Sections SectionsCmd `cmd:"" help:"List sections extracted in a batch"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a batch and its sections"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Input       string   `arg:"" type:"existingdir" help:"Folder of OCR layout JSON files"`
	Output      string   `arg:"" help:"Folder to write extracted sections to"`
	Name        string   `short:"n" help:"Batch name (defaults to the input folder name)"`
	Tokens      []string `short:"t" name:"token" help:"Title token that must appear to open a section (repeatable)"`
	Columns     int      `help:"Number of print columns per page (default 3)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent page load limit"`
	Dedupe      bool     `short:"d" help:"Skip sections whose content was already extracted"`
	Verbose     bool     `short:"v" help:"Log page loads and section writes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Name string `arg:"" help:"Batch name"`
	Full bool   `help:"Show full section text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Batch name"`
	Force bool   `help:"Confirm deletion"`
}
