package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
)

// extractCurricula maps the four-column curricula rows (degree, program,
// semester, PO version). The program text frequently embeds a version
// marker inline; it stays in one piece for the downstream cleaning stage,
// which owns name normalization.
func extractCurricula(table *goquery.Selection) []lsfextract.Curriculum {
	curricula := []lsfextract.Curriculum{}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		curricula = append(curricula, lsfextract.Curriculum{
			Abschluss:   cellAt(cells, 0),
			Studiengang: programValue(cells),
			Semester:    cellAt(cells, 2),
			POVersion:   cellAt(cells, 3),
		})
	})

	return curricula
}

// programValue prefers the program link text over the plain cell text.
func programValue(cells *goquery.Selection) *string {
	if cells.Length() < 2 {
		return nil
	}
	cell := cells.Eq(1)
	if link := cell.Find(linkMarker).First(); link.Length() > 0 {
		v := normalizeText(link.Text())
		return &v
	}
	return cellValue(cell)
}

// extractNameList handles the single-column list tables (modules,
// institutions). Rows without data cells are skipped, which also covers the
// header row; empty entries are dropped since an empty list is the normal
// "none associated" case, not a signal.
func extractNameList(table *goquery.Selection) []string {
	names := []string{}

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		cell := cells.Eq(0)
		var v *string
		if link := cell.Find(linkMarker).First(); link.Length() > 0 {
			s := normalizeText(link.Text())
			v = &s
		} else {
			v = cellValue(cell)
		}
		if v != nil && *v != "" {
			names = append(names, *v)
		}
	})

	return names
}
