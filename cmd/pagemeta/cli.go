package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagemeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   pagemeta.Fetcher
	Extractor pagemeta.MetadataExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract metadata from one or more pages"`
	Links   LinksCmd   `cmd:"" help:"List resolved link targets from a page"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" help:"Page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Internal bool   `short:"i" help:"Only links on the page's own domain"`
	Media    bool   `short:"m" help:"Resolve media sources (img) instead of anchors"`
}
