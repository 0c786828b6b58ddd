package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
)

// Schedule column positions. The schedule table maps by fixed position
// rather than by header lookup: its header row text is decorative and
// carries no identifiers, while the column set has been the most stable part
// of the source format. The tradeoff is fragility against column
// reordering, which degrades to warnings instead of breaking extraction.
// Column 5 holds a room-plan icon and carries no data.
const (
	colTag           = 0
	colZeit          = 1
	colRhythmus      = 2
	colDauer         = 3
	colRaum          = 4
	colLehrperson    = 6
	colStatus        = 7
	colBemerkung     = 8
	colFaelltAusAm   = 9
	colMaxTeilnehmer = 10

	scheduleColumns = 11
)

// extractSchedule maps the schedule rows to entries, skipping exactly one
// header row. A row whose cell count deviates from the expected arity
// produces a warning and partial extraction of the cells that are still
// addressable; it never aborts the row or the table.
func extractSchedule(table *goquery.Selection) ([]lsfextract.ScheduleEntry, []lsfextract.Warning) {
	entries := []lsfextract.ScheduleEntry{}
	var warnings []lsfextract.Warning

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		n := cells.Length()
		if n == 0 {
			return
		}
		if n != scheduleColumns {
			warnings = append(warnings, lsfextract.Warning{
				Code:    lsfextract.WarnShapeMismatch,
				Section: "termine",
				Message: fmt.Sprintf("row %d has %d cells, expected %d", i, n, scheduleColumns),
			})
		}

		entries = append(entries, lsfextract.ScheduleEntry{
			Tag:           cellAt(cells, colTag),
			Zeit:          cellAt(cells, colZeit),
			Rhythmus:      cellAt(cells, colRhythmus),
			Dauer:         cellAt(cells, colDauer),
			Raum:          roomValue(cells),
			Lehrperson:    cellAt(cells, colLehrperson),
			Status:        cellAt(cells, colStatus),
			Bemerkung:     cellAt(cells, colBemerkung),
			FaelltAusAm:   cellAt(cells, colFaelltAusAm),
			MaxTeilnehmer: cellAt(cells, colMaxTeilnehmer),
		})
	})

	return entries, warnings
}

// cellAt returns the normalized value at position i, or nil when the row has
// no cell there.
func cellAt(cells *goquery.Selection, i int) *string {
	if i >= cells.Length() {
		return nil
	}
	return cellValue(cells.Eq(i))
}

// roomValue prefers the text of a link inside the room cell over the plain
// cell text. A non-breaking-space-only cell normalizes to nil via cellValue;
// whether that should instead mean "online/no physical room" is a downstream
// schema question.
func roomValue(cells *goquery.Selection) *string {
	if colRaum >= cells.Length() {
		return nil
	}
	cell := cells.Eq(colRaum)
	if link := cell.Find("a").First(); link.Length() > 0 {
		return cellValue(link)
	}
	return cellValue(cell)
}
