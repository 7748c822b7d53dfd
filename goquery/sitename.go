package goquery

import (
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/textutil"
)

// navLogoSimilarityThreshold is the minimum similarity between a nav logo's
// alt text and the domain-derived name for the alt text to be trusted as
// the site name.
const navLogoSimilarityThreshold = 15

// extractSiteName derives the site's display name from weak signals in
// priority order: the Open Graph site_name, the Twitter-card creator, then
// the alt text of an image inside the first <nav> element. The nav image
// alt is only trusted when it plausibly matches the page's domain name.
func (d *Document) extractSiteName() (string, bool) {
	if name, ok := d.OGContent("site_name"); ok {
		return finishTitle(name)
	}
	if name, ok := d.MetaContent("name", "twitter:creator"); ok {
		return finishTitle(name)
	}
	if alt, ok := d.navLogoAlt(); ok {
		return finishTitle(alt)
	}
	return "", false
}

func (d *Document) navLogoAlt() (string, bool) {
	img := d.First("nav").Find("img[alt]").First()
	alt, ok := img.Attr("alt")
	if !ok || alt == "" {
		return "", false
	}
	// transliterate first so non-Latin alt text can still match the
	// ASCII domain name
	unicoded := textutil.Transliterate(alt)
	domainName := pagemeta.DomainName(d.url)
	if textutil.SimilarityOf(unicoded, domainName) < navLogoSimilarityThreshold {
		return "", false
	}
	return alt, true
}

func finishTitle(raw string) (string, bool) {
	t := textutil.CleanTitle(raw)
	return t, t != ""
}
