package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	pagemetahttp "github.com/fwojciec/pagemeta/http"
	pagemetaslog "github.com/fwojciec/pagemeta/slog"
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
	// Fetcher used by all commands. Replaceable for end-to-end testing.
	Fetcher pagemeta.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemeta --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services into dependencies. The fetcher may be pre-set for
	// end-to-end testing.
	if m.Fetcher == nil {
		m.Fetcher = pagemetahttp.NewFetcher()
	}
	defer m.Close()
	deps.Fetcher = m.Fetcher

	var extractor pagemeta.MetadataExtractor = goquery.NewExtractor()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		extractor = pagemetaslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	return kongCtx.Run(deps)
}
