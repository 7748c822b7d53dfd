package pagemeta

// QA holds the question/answer pairs split out of a single FAQ-like text
// block. A block whose text contains no valid question/answer split yields
// an empty (but present) map.
type QA map[string]string

// TableRow maps header cell text to data cell text for one table row.
//
// The pairing is a header/data cross-product rather than a positional
// th-td zip: with H header cells and D data cells each header key ends up
// bound to the last data cell of the row. See the tabular-data extractor
// for details.
type TableRow map[string]string

// Metadata holds the page-level metadata extracted from one HTML document.
// Every field is optional: a zero value means "no confident signal found",
// which is the normal outcome for a failed heuristic, never an error.
type Metadata struct {
	// SiteName is the site's display name derived from meta tags or the
	// navigation logo, guarded by a plausibility check against the domain.
	SiteName string `json:"siteName,omitempty"`

	// Topics is a deduplicated set of breadcrumb/category names.
	// Order is not significant.
	Topics []string `json:"topics,omitempty"`

	// Address is the postal address found via semantic tag, footer class
	// or footer keyword search.
	Address string `json:"address,omitempty"`

	// FAQ holds one QA mapping per FAQ-like block found on the page.
	FAQ []QA `json:"faq,omitempty"`

	// Table holds the first HTML table as a sequence of row mappings.
	Table []TableRow `json:"table,omitempty"`

	// StructuredData is the parsed JSON-LD value tree of the largest
	// structured-data block on the page, if any.
	StructuredData any `json:"structuredData,omitempty"`
}

// MetadataExtractor extracts page metadata from raw HTML.
type MetadataExtractor interface {
	// Extract parses the HTML and runs every heuristic extractor.
	// The url is the page's source URL; it feeds the plausibility checks
	// and link resolution. Returns EINVALID if the inputs are unusable.
	// Extractors are independently fault-isolated: one heuristic finding
	// nothing never prevents the others from producing values.
	Extract(html string, url string) (*Metadata, error)
}
