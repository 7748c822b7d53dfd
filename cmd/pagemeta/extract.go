package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/sync/errgroup"
)

// PageResult is the JSON output record for a single extracted page.
type PageResult struct {
	URL         string             `json:"url"`
	ContentHash string             `json:"contentHash,omitempty"`
	Metadata    *pagemeta.Metadata `json:"metadata,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Run executes the "extract" command. Pages are fetched and extracted
// concurrently; a failure on one page is reported in its result record
// without aborting the others.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	results := make([]PageResult, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, u := range c.URLs {
		i, u := i, u
		g.Go(func() error {
			results[i] = extractPage(ctx, deps, u)
			return nil
		})
	}
	_ = g.Wait()

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("all %d pages failed", failed)
	}
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "Warning: %d of %d pages failed\n", failed, len(results))
	}
	return nil
}

func extractPage(ctx context.Context, deps *Dependencies, url string) PageResult {
	html, err := deps.Fetcher.Fetch(ctx, url)
	if err != nil {
		return PageResult{URL: url, Error: err.Error()}
	}

	md, err := deps.Extractor.Extract(html, url)
	if err != nil {
		return PageResult{URL: url, Error: err.Error()}
	}

	return PageResult{
		URL:         url,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(html)),
		Metadata:    md,
	}
}
