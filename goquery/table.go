package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/textutil"
)

// extractTable converts the first <table> element into a sequence of row
// mappings from header cell text to data cell text.
//
// The pairing is a literal header/data cross-product per row, not a
// positional th-td zip: every (td, th) combination assigns into the map,
// so with H headers and D data cells the row yields at most H keys, each
// bound to the last td in iteration order. Callers depend on this output
// shape; see DESIGN.md before changing it.
func (d *Document) extractTable() []pagemeta.TableRow {
	table := d.First("table")
	if table.Length() == 0 {
		return nil
	}
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil
	}

	var out []pagemeta.TableRow
	rows.Each(func(_ int, row *goquery.Selection) {
		heads := row.Find("th")
		cells := row.Find("td")
		m := pagemeta.TableRow{}
		cells.Each(func(_ int, cell *goquery.Selection) {
			cellText := textutil.CleanText(cell.Text())
			heads.Each(func(_ int, head *goquery.Selection) {
				m[textutil.CleanText(head.Text())] = cellText
			})
		})
		out = append(out, m)
	})
	return out
}
