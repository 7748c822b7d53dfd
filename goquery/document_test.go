package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewDocument("<html></html>", "")
		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument("<div><p>unclosed", "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", doc.URL())
	})
}

func TestDocument_Memoization(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><meta property="og:site_name" content="Acme Store"></head>
<body>
<div class="breadcrumb"><a href="/c/1">Electronics</a></div>
<footer><div class="address">12 Main St</div></footer>
</body>
</html>`

	doc, err := goquery.NewDocument(html, "https://acme.com/page")
	require.NoError(t, err)

	// every extractor is idempotent: a second call yields identical results
	name1, ok1 := doc.SiteName()
	name2, ok2 := doc.SiteName()
	assert.Equal(t, name1, name2)
	assert.Equal(t, ok1, ok2)

	assert.Equal(t, doc.Topics(), doc.Topics())

	addr1, _ := doc.Address()
	addr2, _ := doc.Address()
	assert.Equal(t, addr1, addr2)

	assert.Equal(t, doc.FAQ(), doc.FAQ())
	assert.Equal(t, doc.Table(), doc.Table())
}
