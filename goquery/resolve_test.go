package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveDocument(t *testing.T, body, url string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocument("<html><body>"+body+"</body></html>", url)
	require.NoError(t, err)
	return doc
}

func TestDocument_ResolveHref(t *testing.T) {
	t.Parallel()

	const pageURL = "https://example.com/page"

	t.Run("relative href joins scheme and domain", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="/a/b">link</a>`, pageURL)
		resolved, ok := doc.ResolveHref(doc.First("a"), false)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/a/b", resolved)
	})

	t.Run("fragment reference is absent", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="#section">jump</a>`, pageURL)
		_, ok := doc.ResolveHref(doc.First("a"), false)
		assert.False(t, ok)
	})

	t.Run("query-only reference is absent", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="?page=2">next</a>`, pageURL)
		_, ok := doc.ResolveHref(doc.First("a"), false)
		assert.False(t, ok)
	})

	t.Run("absolute href accepted as-is", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="https://other.com/x">ext</a>`, pageURL)
		resolved, ok := doc.ResolveHref(doc.First("a"), false)
		require.True(t, ok)
		assert.Equal(t, "https://other.com/x", resolved)
	})

	t.Run("external href rejected when internal only", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="https://other.com/x">ext</a>`, pageURL)
		_, ok := doc.ResolveHref(doc.First("a"), true)
		assert.False(t, ok)
	})

	t.Run("www prefix ignored for the internal check", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="https://www.example.com/x">int</a>`, pageURL)
		resolved, ok := doc.ResolveHref(doc.First("a"), true)
		require.True(t, ok)
		assert.Equal(t, "https://www.example.com/x", resolved)
	})

	t.Run("media elements read src", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<img src="/img/logo.png">`, pageURL)
		resolved, ok := doc.ResolveHref(doc.First("img"), false)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/img/logo.png", resolved)
	})

	t.Run("media elements fall back to data-src", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<img data-src="/img/lazy.png">`, pageURL)
		resolved, ok := doc.ResolveHref(doc.First("img"), false)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/img/lazy.png", resolved)
	})

	t.Run("document scheme is preserved", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="/a">link</a>`, "http://example.com/page")
		resolved, ok := doc.ResolveHref(doc.First("a"), false)
		require.True(t, ok)
		assert.Equal(t, "http://example.com/a", resolved)
	})

	t.Run("www stripped from the joined domain", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a href="/a">link</a>`, "https://www.example.com/page")
		resolved, ok := doc.ResolveHref(doc.First("a"), false)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/a", resolved)
	})

	t.Run("element without a reference is absent", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<a>nameless</a>`, pageURL)
		_, ok := doc.ResolveHref(doc.First("a"), false)
		assert.False(t, ok)
	})

	t.Run("empty selection is absent", func(t *testing.T) {
		t.Parallel()

		doc := resolveDocument(t, `<p>nothing</p>`, pageURL)
		_, ok := doc.ResolveHref(doc.First("a"), false)
		assert.False(t, ok)
	})
}

func TestDocument_ResolveAll(t *testing.T) {
	t.Parallel()

	body := `
<a href="/a">one</a>
<a href="#skip">two</a>
<a href="https://other.com/x">three</a>`

	doc := resolveDocument(t, body, "https://example.com/page")

	t.Run("all resolvable links", func(t *testing.T) {
		t.Parallel()

		urls := doc.ResolveAll(doc.All("a"), false)
		assert.Equal(t, []string{"https://example.com/a", "https://other.com/x"}, urls)
	})

	t.Run("internal only", func(t *testing.T) {
		t.Parallel()

		urls := doc.ResolveAll(doc.All("a"), true)
		assert.Equal(t, []string{"https://example.com/a"}, urls)
	})
}
