package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta/textutil"
)

const (
	// maxTopicNameLength is the longest candidate (in runes) still
	// plausible as a category name.
	maxTopicNameLength = 26

	// siteNameSimilarityThreshold rejects candidates that are near
	// duplicates of the site name.
	siteNameSimilarityThreshold = 65

	// maxClassContainers caps the div.cat/div.tag heuristic: more
	// matches than this means the classes are styling, not taxonomy.
	maxClassContainers = 7
)

// topicStopWords are navigation labels that are never real topics,
// checked case-insensitively.
var topicStopWords = map[string]struct{}{
	// en
	"home":   {},
	"return": {},
	"back":   {},
	"undo":   {},
	"shop":   {},
	// fa
	"فروشگاه":   {},
	"خانه":      {},
	"صفحه اصلی": {},
	"برگشت":     {},
	"بازگشت":    {},
}

// extractTopics collects candidate breadcrumb/category links, filters them
// for plausibility and returns the surviving names capitalized and
// deduplicated. Result order is not significant.
func (d *Document) extractTopics() []string {
	seen := make(map[string]struct{})
	var topics []string

	add := func(anchors *goquery.Selection) {
		anchors.Each(func(_ int, a *goquery.Selection) {
			text := strings.TrimSpace(a.Text())
			if !d.okTopicName(text) {
				return
			}
			name := capitalize(text)
			if _, dup := seen[name]; dup {
				return
			}
			seen[name] = struct{}{}
			topics = append(topics, name)
		})
	}

	for _, container := range d.topicContainers() {
		add(container.Find("a"))
	}

	// links inside the first article's list are usually tags
	add(d.First("article").Find("ul").First().Find("a"))

	return topics
}

// topicContainers returns the elements likely to hold topic links: anything
// with "breadcrumb" in its id or class, plus <div> elements whose class
// contains "cat" or "tag". The class-based set is discarded entirely when
// it is too large to be a real taxonomy.
func (d *Document) topicContainers() []*goquery.Selection {
	containers := []*goquery.Selection{
		d.AllContains("id", "breadcrumb"),
		d.AllContains("class", "breadcrumb"),
	}

	classCat := d.Contains("div", "class", "cat")
	classTag := d.Contains("div", "class", "tag")
	if classCat.Length()+classTag.Length() <= maxClassContainers {
		containers = append(containers, classCat, classTag)
	}

	return containers
}

// okTopicName reports whether text is plausible as a topic name: non-empty,
// short enough, not a stop word, and neither equal nor too similar to the
// site name.
func (d *Document) okTopicName(text string) bool {
	name := strings.ToLower(text)
	if name == "" || utf8.RuneCountInString(name) > maxTopicNameLength {
		return false
	}
	if _, bad := topicStopWords[name]; bad {
		return false
	}
	siteName, ok := d.siteName()
	if !ok {
		return true
	}
	if name == strings.ToLower(siteName) {
		return false
	}
	if textutil.SimilarityOf(name, siteName) >= siteNameSimilarityThreshold {
		return false
	}
	return true
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	s = strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
