package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta/textutil"
	"golang.org/x/net/html"
)

// addressClasses are the class-name fragments that mark address-bearing
// elements inside a footer, in priority order.
var addressClasses = []string{"address", "location", "contact"}

// addressKeywords are address-indicator words for the supported locale,
// in priority order. A footer text node containing any of them is taken
// as the address.
var addressKeywords = []string{
	"آدرس",
	"نشانی",
	"شعبه",
	"خیابان",
	"کوچه",
	"پلاک",
	"بلوار",
	"میدان",
	"چهارراه",
	"طبقه",
	"تفاطع",
}

// extractAddress finds the page's postal address. Priority chain, first
// success wins: the semantic <address> element; elements inside the last
// <footer> with an address-like class; a keyword scan over the last
// footer's text nodes. A page without a footer yields absent, not an error.
func (d *Document) extractAddress() (string, bool) {
	if text, ok := firstText(d.All("address")); ok {
		return text, true
	}

	footer := d.All("footer").Last()
	if footer.Length() == 0 {
		return "", false
	}

	// When address-like classes exist the keyword fallback is skipped,
	// even if none of them carries usable text.
	matched := false
	for _, class := range addressClasses {
		sel := footer.Find(fmt.Sprintf(`[class*=%q]`, class))
		if sel.Length() > 0 {
			matched = true
		}
		if text, ok := firstText(sel); ok {
			return text, true
		}
	}
	if matched {
		return "", false
	}

	for _, keyword := range addressKeywords {
		if text, ok := textNodeContaining(footer, keyword); ok {
			return text, true
		}
	}
	return "", false
}

// textNodeContaining walks sel's subtree depth-first and returns the
// cleaned text of the first text node containing keyword.
func textNodeContaining(sel *goquery.Selection, keyword string) (string, bool) {
	for _, node := range sel.Nodes {
		if text, ok := findTextNode(node, keyword); ok {
			return text, true
		}
	}
	return "", false
}

func findTextNode(n *html.Node, keyword string) (string, bool) {
	if n.Type == html.TextNode && strings.Contains(n.Data, keyword) {
		if text := textutil.CleanText(n.Data); text != "" {
			return text, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text, ok := findTextNode(c, keyword); ok {
			return text, true
		}
	}
	return "", false
}
