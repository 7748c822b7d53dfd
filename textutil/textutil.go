// Package textutil provides the stateless text primitives the extraction
// heuristics are built on: whitespace normalization, title cleaning, fuzzy
// similarity scoring and ASCII transliteration. All functions are pure and
// hold no shared state.
package textutil

import (
	"math"
	"regexp"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mozillazg/go-unidecode"
)

// CleanText trims the string and collapses internal whitespace and newlines
// into single spaces.
func CleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// titleCutset holds the decorative separators commonly padded around short
// title strings.
const titleCutset = " \t|–—-·•:~"

// CleanTitle is CleanText tuned for short title strings: decorative
// punctuation and separators are trimmed from both ends.
func CleanTitle(raw string) string {
	return strings.TrimSpace(strings.Trim(CleanText(raw), titleCutset))
}

// SimilarityOf returns a fuzzy similarity score between a and b on a 0-100
// scale, higher meaning more similar. Both operands are lowercased first so
// threshold checks behave symmetrically. The score is only ever used as a
// thresholded heuristic, not as a distance.
func SimilarityOf(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	sim := strutil.Similarity(a, b, metrics.NewLevenshtein())
	return int(math.Round(sim * 100))
}

// Transliterate folds non-Latin text into its best-effort ASCII
// approximation. Used to make candidates comparable with domain-derived
// names before similarity scoring.
func Transliterate(raw string) string {
	return unidecode.Unidecode(raw)
}

// NumberGroups extracts digit groups matching pattern from text after
// stripping all whitespace and transliterating localized digits to ASCII.
//
// A hyphenated match whose left half is longer than its right half has been
// reversed by RTL rendering; the halves are rejoined right-to-left and
// scanning stops at that match.
func NumberGroups(text string, pattern *regexp.Regexp) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, " ", "")
	text = Transliterate(text)

	var groups []string
	for _, n := range pattern.FindAllString(text, -1) {
		if strings.Contains(n, "-") {
			parts := strings.Split(n, "-")
			first, last := parts[0], parts[len(parts)-1]
			if len(first) > len(last) {
				groups = append(groups, last+first)
				break
			}
		}
		groups = append(groups, n)
	}
	return groups
}
