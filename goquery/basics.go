package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
)

// Header cell identifiers in the basics table. Data cells reference their
// header via the headers attribute, so fields resolve by identifier instead
// of by position. The identifiers survive markup and styling churn; cell
// order does not.
const (
	fieldArt          = "basic_1"
	fieldID           = "basic_3"
	fieldSemester     = "basic_5"
	fieldECTS         = "basic_11"
	fieldHauptlink    = "basic_13"
	fieldWeitereLinks = "basic_15"
	fieldSprache      = "basic_16"
)

// linkMarker selects content links. LSF marks them with the "regular" class
// to tell them apart from navigation chrome.
const linkMarker = "a.regular"

// titleSuffix is appended to the h1 of every detail view.
const titleSuffix = " - Einzelansicht"

// basicsData holds the output of the basics extractor.
type basicsData struct {
	art              *string
	veranstaltungsID *string
	semester         *string
	ects             *string
	hauptlink        *string
	sprache          *string
	weitereLinks     []lsfextract.Link
	warnings         []lsfextract.Warning
}

// extractBasics resolves the fields of the basics table via two-pass
// header-relationship lookup: find the header cell by identifier, then the
// data cells whose headers attribute references it.
func extractBasics(table *goquery.Selection) basicsData {
	d := basicsData{
		art:              fieldValue(table, fieldArt),
		veranstaltungsID: fieldValue(table, fieldID),
		semester:         fieldValue(table, fieldSemester),
		sprache:          fieldValue(table, fieldSprache),
		weitereLinks:     []lsfextract.Link{},
	}

	d.ects, d.warnings = ectsValue(table)
	d.hauptlink = hauptlinkValue(table)

	if cells := fieldCells(table, fieldWeitereLinks); cells != nil {
		cells.Find(linkMarker).Each(func(_ int, a *goquery.Selection) {
			d.weitereLinks = append(d.weitereLinks, classifyLink(a))
		})
	}

	return d
}

// fieldCells returns the data cells referencing the given header identifier,
// or nil when the header cell or its data cells are absent. The nil return
// keeps a missing field distinguishable from a present-but-empty one.
func fieldCells(table *goquery.Selection, id string) *goquery.Selection {
	if table.Find("th#"+id).Length() == 0 {
		return nil
	}
	cells := table.Find(fmt.Sprintf("td[headers~=%q]", id))
	if cells.Length() == 0 {
		return nil
	}
	return cells
}

// fieldValue resolves a single-valued field to the first matching data cell.
func fieldValue(table *goquery.Selection, id string) *string {
	cells := fieldCells(table, id)
	if cells == nil {
		return nil
	}
	return cellValue(cells.First())
}

// ectsValue resolves the ECTS field. The identifier legitimately repeats for
// the "without exam" / "with exam" row variants, so all matching cells are
// collected in document order and the first non-empty value wins. More than
// one non-empty candidate is flagged rather than silently dropped.
func ectsValue(table *goquery.Selection) (*string, []lsfextract.Warning) {
	cells := fieldCells(table, fieldECTS)
	if cells == nil {
		return nil, nil
	}

	var candidates []*string
	cells.Each(func(_ int, cell *goquery.Selection) {
		candidates = append(candidates, cellValue(cell))
	})

	var value *string
	nonEmpty := 0
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if value == nil {
			value = c
		}
		if *c != "" {
			nonEmpty++
			if *value == "" {
				value = c
			}
		}
	}

	var warnings []lsfextract.Warning
	if nonEmpty > 1 {
		warnings = append(warnings, lsfextract.Warning{
			Code:    lsfextract.WarnDuplicateValue,
			Section: "grunddaten",
			Message: fmt.Sprintf("%d non-empty values for header %s, keeping the first", nonEmpty, fieldECTS),
		})
	}
	return value, warnings
}

// hauptlinkValue resolves the primary course link to its raw href.
func hauptlinkValue(table *goquery.Selection) *string {
	cells := fieldCells(table, fieldHauptlink)
	if cells == nil {
		return nil
	}
	link := cells.First().Find(linkMarker).First()
	if link.Length() == 0 {
		return nil
	}
	href, ok := link.Attr("href")
	if !ok {
		return nil
	}
	return &href
}

// extractTitle reads the course title from the page heading, dropping the
// " - Einzelansicht" marker of the detail view.
func extractTitle(doc *goquery.Document) *string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return nil
	}
	title := strings.TrimSpace(strings.TrimSuffix(normalizeText(h1.Text()), titleSuffix))
	return &title
}
