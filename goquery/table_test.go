package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Table(t *testing.T) {
	t.Parallel()

	t.Run("maps header text to cell text per row", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
<tr><th>Weight</th><td>10kg</td></tr>
<tr><th>Color</th><td>Red</td></tr>
</table></body></html>`

		doc := mustDocument(t, html)
		rows := doc.Table()
		require.Len(t, rows, 2)
		assert.Equal(t, pagemeta.TableRow{"Weight": "10kg"}, rows[0])
		assert.Equal(t, pagemeta.TableRow{"Color": "Red"}, rows[1])
	})

	t.Run("cross-product binds every header to the last cell", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
<tr><th>H1</th><th>H2</th><td>D1</td><td>D2</td><td>D3</td></tr>
</table></body></html>`

		doc := mustDocument(t, html)
		rows := doc.Table()
		require.Len(t, rows, 1)

		// 2 headers x 3 cells collapse to at most 2 keys, each bound to
		// the last cell in iteration order
		assert.Equal(t, pagemeta.TableRow{"H1": "D3", "H2": "D3"}, rows[0])
	})

	t.Run("only the first table is read", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table><tr><th>A</th><td>1</td></tr></table>
<table><tr><th>B</th><td>2</td></tr></table>
</body></html>`

		doc := mustDocument(t, html)
		rows := doc.Table()
		require.Len(t, rows, 1)
		assert.Equal(t, pagemeta.TableRow{"A": "1"}, rows[0])
	})

	t.Run("rows without headers yield empty mappings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><table>
<tr><td>orphan</td></tr>
</table></body></html>`

		doc := mustDocument(t, html)
		rows := doc.Table()
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0])
	})

	t.Run("no table yields nothing", func(t *testing.T) {
		t.Parallel()

		doc := mustDocument(t, `<html><body><p>no table</p></body></html>`)
		assert.Empty(t, doc.Table())
	})
}
