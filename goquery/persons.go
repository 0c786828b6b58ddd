package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
)

// extractPersons maps the responsible-lecturers rows to persons. The name
// prefers the marker-class link text and falls back to the raw cell text;
// names keep academic titles and comma-separated surname/given-name order
// untouched. The role passes through verbatim so unknown future values
// survive extraction.
func extractPersons(table *goquery.Selection) []lsfextract.Person {
	persons := []lsfextract.Person{}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		name := ""
		cell := cells.Eq(0)
		if link := cell.Find(linkMarker).First(); link.Length() > 0 {
			name = normalizeText(link.Text())
		} else if v := cellValue(cell); v != nil {
			name = *v
		}

		persons = append(persons, lsfextract.Person{
			Name:  name,
			Rolle: cellAt(cells, 1),
		})
	})

	return persons
}
