package goquery

import (
	"github.com/fwojciec/pagemeta"
)

// Ensure Extractor implements pagemeta.MetadataExtractor at compile time.
var _ pagemeta.MetadataExtractor = (*Extractor)(nil)

// Extractor is the goquery-backed implementation of
// pagemeta.MetadataExtractor. It parses the HTML once and runs every
// heuristic eagerly, so the returned Metadata is safe to share.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs every extractor against the HTML and aggregates the
// results. Individual heuristics finding nothing leave their field at its
// zero value; only unusable input is an error.
func (e *Extractor) Extract(html string, url string) (*pagemeta.Metadata, error) {
	doc, err := NewDocument(html, url)
	if err != nil {
		return nil, err
	}

	md := &pagemeta.Metadata{}
	md.SiteName, _ = doc.SiteName()
	md.Topics = doc.Topics()
	md.Address, _ = doc.Address()
	md.FAQ = doc.FAQ()
	md.Table = doc.Table()
	md.StructuredData, _ = doc.StructuredData()
	return md, nil
}
