package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta/textutil"
)

// All returns every element with the given tag name.
func (d *Document) All(tag string) *goquery.Selection {
	return d.doc.Find(tag)
}

// First returns the first element with the given tag name.
// The selection is empty when no such element exists.
func (d *Document) First(tag string) *goquery.Selection {
	return d.doc.Find(tag).First()
}

// Select runs an arbitrary CSS selector against the document.
func (d *Document) Select(pattern string) *goquery.Selection {
	return d.doc.Find(pattern)
}

// Contains returns every element of tag whose attr attribute contains value
// as a case-sensitive substring, i.e. the selector tag[attr*="value"].
func (d *Document) Contains(tag, attr, value string) *goquery.Selection {
	return d.doc.Find(fmt.Sprintf(`%s[%s*=%q]`, tag, attr, value))
}

// AllContains is Contains over every tag name.
func (d *Document) AllContains(attr, value string) *goquery.Selection {
	return d.Contains("*", attr, value)
}

// MetaContent returns the content attribute of the first <meta> element
// with the given attribute key/value, e.g. MetaContent("name",
// "twitter:creator"). Absent is the normal "not found" outcome.
func (d *Document) MetaContent(key, name string) (string, bool) {
	sel := d.doc.Find(fmt.Sprintf(`meta[%s=%q]`, key, name)).First()
	if sel.Length() == 0 {
		return "", false
	}
	content, ok := sel.Attr("content")
	return content, ok && content != ""
}

// OGContent returns the content of the Open Graph meta property og:<name>.
func (d *Document) OGContent(name string) (string, bool) {
	return d.MetaContent("property", "og:"+name)
}

// LinkedFiles returns every <a> element whose href contains ".ext", e.g.
// LinkedFiles("mp3") for all anchors pointing at mp3 files.
func (d *Document) LinkedFiles(ext string) *goquery.Selection {
	return d.Contains("a", "href", "."+ext)
}

// elementText returns sel's cleaned text, absent when blank.
func elementText(sel *goquery.Selection) (string, bool) {
	t := textutil.CleanText(sel.Text())
	return t, t != ""
}

// firstText returns the cleaned text of the first element in sel whose text
// is non-blank.
func firstText(sel *goquery.Selection) (string, bool) {
	var text string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t, ok := elementText(s); ok {
			text = t
			return false
		}
		return true
	})
	return text, text != ""
}
