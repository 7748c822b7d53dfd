package mock

import (
	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagemeta.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(html string, url string) (*pagemeta.Metadata, error)
}

func (e *MetadataExtractor) Extract(html string, url string) (*pagemeta.Metadata, error) {
	return e.ExtractFn(html, url)
}
