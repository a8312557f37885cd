package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/bkovacs/rovat"
	"github.com/bkovacs/rovat/fs"
	"github.com/bkovacs/rovat/layout"
	"github.com/bkovacs/rovat/pipeline"
	"github.com/bkovacs/rovat/scan"
	rovatslog "github.com/bkovacs/rovat/slog"
	"github.com/bkovacs/rovat/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BatchService   rovat.BatchService
	SectionService rovat.SectionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rovat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rovat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ROVAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BatchService = sqlite.NewBatchService(m.DB)
	m.SectionService = sqlite.NewSectionService(m.DB)
	deps.DB = m.DB
	deps.Batches = m.BatchService
	deps.Sections = m.SectionService

	if cmd == "scan" {
		config := layout.DefaultConfig()
		if cli.Scan.Columns > 0 {
			config.Columns = cli.Scan.Columns
		}
		normalizer := layout.NewNormalizerWithConfig(config)

		var source rovat.PageSource = fs.NewSourceWithNormalizer(cli.Scan.Input, normalizer)
		var store rovat.SectionStore = fs.NewStore(cli.Scan.Output, cli.Scan.Name)
		if cli.Scan.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			source = rovatslog.NewLoggingPageSource(source, logger)
			store = rovatslog.NewLoggingSectionStore(store, logger)
		}

		match := scan.DefaultConfig()
		if len(cli.Scan.Tokens) > 0 {
			match = scan.Config{Tokens: cli.Scan.Tokens}
		}

		deps.Pipeline = &pipeline.Pipeline{
			Source:      source,
			Store:       store,
			Sections:    m.SectionService,
			Batches:     m.BatchService,
			Match:       match,
			Concurrency: cli.Scan.Concurrency,
			Dedupe:      cli.Scan.Dedupe,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("ROVAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rovat.db"
	}
	dir := filepath.Join(home, ".rovat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rovat.db")
}
