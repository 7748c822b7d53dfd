package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<meta property="og:site_name" content="Acme Store">
<script type="application/ld+json">{"@type":"Organization","name":"Acme Store"}</script>
</head>
<body>
<nav><img alt="Acme" src="/logo.png"></nav>
<div class="breadcrumb">
	<a href="/">Home</a>
	<a href="/c/garden">garden</a>
	<a href="/c/tools">tools</a>
</div>
<article>
	<table>
		<tr><th>Weight</th><td>10kg</td></tr>
	</table>
	<div class="faq">Do you ship?Yes, worldwide</div>
</article>
<footer><div class="address">12 Main St, Springfield</div></footer>
</body>
</html>`

	e := goquery.NewExtractor()
	md, err := e.Extract(html, "https://acme.com/c/garden")
	require.NoError(t, err)

	assert.Equal(t, "Acme Store", md.SiteName)
	assert.ElementsMatch(t, []string{"Garden", "Tools"}, md.Topics)
	assert.Equal(t, "12 Main St, Springfield", md.Address)
	require.Len(t, md.FAQ, 1)
	assert.Equal(t, pagemeta.QA{"Do you ship": "Yes, worldwide"}, md.FAQ[0])
	require.Len(t, md.Table, 1)
	assert.Equal(t, pagemeta.TableRow{"Weight": "10kg"}, md.Table[0])

	obj, ok := md.StructuredData.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Organization", obj["@type"])
}

func TestExtractor_Extract_EmptyPage(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()
	md, err := e.Extract("<html><body></body></html>", "https://acme.com")
	require.NoError(t, err)

	// absence everywhere, no errors
	assert.Empty(t, md.SiteName)
	assert.Empty(t, md.Topics)
	assert.Empty(t, md.Address)
	assert.Empty(t, md.FAQ)
	assert.Empty(t, md.Table)
	assert.Nil(t, md.StructuredData)
}

func TestExtractor_Extract_InvalidInput(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()
	_, err := e.Extract("<html></html>", "")
	require.Error(t, err)
	assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
}
