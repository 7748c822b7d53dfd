package main

import (
	"fmt"

	"github.com/fwojciec/pagemeta/goquery"
)

// Run executes the "links" command, printing one resolved URL per line.
func (c *LinksCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", c.URL, err)
	}

	doc, err := goquery.NewDocument(html, c.URL)
	if err != nil {
		return err
	}

	sel := doc.All("a")
	if c.Media {
		sel = doc.All("img")
	}

	for _, u := range doc.ResolveAll(sel, c.Internal) {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
