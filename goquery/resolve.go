package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResolveHref resolves sel's reference into an absolute URL.
//
// Anchor and link elements are read via href; any other element via src,
// falling back to data-src (lazy-loaded media). A reference that already
// looks absolute (contains "http") is accepted as-is, unless internalOnly
// is set and its www-stripped host differs from the document's. A relative
// reference must start with "/" — fragment and query-only references
// resolve to absent — and is joined to the document's scheme and
// www-stripped host.
func (d *Document) ResolveHref(sel *goquery.Selection, internalOnly bool) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}

	var ref string
	switch goquery.NodeName(sel) {
	case "a", "link":
		ref, _ = sel.Attr("href")
	default:
		ref, _ = sel.Attr("src")
		if ref == "" {
			ref, _ = sel.Attr("data-src")
		}
	}
	if ref == "" {
		return "", false
	}

	docURL, err := url.Parse(d.url)
	if err != nil {
		return "", false
	}
	docHost := strings.TrimPrefix(docURL.Host, "www.")

	if strings.Contains(ref, "http") {
		if internalOnly {
			refURL, err := url.Parse(ref)
			if err != nil {
				return "", false
			}
			if strings.TrimPrefix(refURL.Host, "www.") != docHost {
				return "", false
			}
		}
		return ref, true
	}

	if !strings.HasPrefix(ref, "/") {
		// fragments, query-only references and the like
		return "", false
	}
	return docURL.Scheme + "://" + docHost + ref, true
}

// ResolveAll resolves every element in sel, dropping elements without a
// resolvable reference. Duplicate URLs are preserved in document order.
func (d *Document) ResolveAll(sel *goquery.Selection, internalOnly bool) []string {
	var urls []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if u, ok := d.ResolveHref(s, internalOnly); ok {
			urls = append(urls, u)
		}
	})
	return urls
}
