// Package goquery implements the heuristic metadata extraction engine on
// top of github.com/PuerkitoBio/goquery. A Document pairs one parsed HTML
// tree with its source URL; every extractor combines weak signals (meta
// tags, structured data, class/id substrings, footer text, similarity
// scoring) into a best-effort value guarded by plausibility checks.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Document is an immutable parsed HTML tree plus its source URL.
//
// Each extractor is computed at most once per Document and memoized for the
// Document's lifetime. Memoization uses sync.Once discipline, so a Document
// is safe for concurrent readers after construction. Extractors never
// mutate the tree or each other's cached state; the only cross-extractor
// dependency is the topic filter reading the memoized site name.
type Document struct {
	doc *goquery.Document
	url string

	siteName   func() (string, bool)
	topics     func() []string
	address    func() (string, bool)
	faq        func() []pagemeta.QA
	table      func() []pagemeta.TableRow
	structured func() (*jsonValue, bool)
}

// NewDocument parses html and returns a Document bound to its source URL.
// Malformed markup never fails: the parser produces a best-effort tree.
// Returns EINVALID when the URL is missing or the content is unreadable.
func NewDocument(html string, url string) (*Document, error) {
	if url == "" {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "document URL required")
	}
	gd, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{doc: gd, url: url}
	d.siteName = sync.OnceValues(d.extractSiteName)
	d.topics = sync.OnceValue(d.extractTopics)
	d.address = sync.OnceValues(d.extractAddress)
	d.faq = sync.OnceValue(d.extractFAQ)
	d.table = sync.OnceValue(d.extractTable)
	d.structured = sync.OnceValues(d.parseStructuredData)
	return d, nil
}

// URL returns the document's source URL.
func (d *Document) URL() string {
	return d.url
}

// SiteName returns the site's display name, derived from meta tags or the
// navigation logo. Absent when no candidate passes the plausibility filter.
func (d *Document) SiteName() (string, bool) {
	return d.siteName()
}

// Topics returns the deduplicated set of breadcrumb/category names found on
// the page. Order is not significant.
func (d *Document) Topics() []string {
	return d.topics()
}

// Address returns the page's postal address, if one can be located.
func (d *Document) Address() (string, bool) {
	return d.address()
}

// FAQ returns one question/answer mapping per FAQ-like block on the page.
func (d *Document) FAQ() []pagemeta.QA {
	return d.faq()
}

// Table returns the first HTML table as a sequence of row mappings.
func (d *Document) Table() []pagemeta.TableRow {
	return d.table()
}
