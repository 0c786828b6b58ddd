package goquery_test

import (
	"testing"

	"github.com/lsftools/lsfextract"
	"github.com/lsftools/lsfextract/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedulePage(rows string) string {
	return `<html><body>
<a name="terms"></a>
<table summary="Übersicht über alle Veranstaltungstermine">
<tr><th>Tag</th><th>Zeit</th><th>Rhythmus</th><th>Dauer</th><th>Raum</th><th></th><th>Lehrperson</th><th>Status</th><th>Bemerkung</th><th>fällt aus am</th><th>Max. Teilnehmer</th></tr>` +
		rows + `</table>
</body></html>`
}

func TestExtractor_Schedule(t *testing.T) {
	t.Parallel()

	t.Run("short row warns and extracts addressable cells", func(t *testing.T) {
		t.Parallel()

		html := schedulePage(`<tr><td>Mo</td><td>08:30 bis 10:00</td><td>wöch.</td><td>13.10.2025 bis 02.02.2026</td><td>2522.HS 5D</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		require.Len(t, record.Termine, 1)
		entry := record.Termine[0]
		assert.Equal(t, ptr("Mo"), entry.Tag)
		assert.Equal(t, ptr("13.10.2025 bis 02.02.2026"), entry.Dauer)
		assert.Equal(t, ptr("2522.HS 5D"), entry.Raum)
		assert.Nil(t, entry.Lehrperson, "cells past the row end stay absent")
		assert.Nil(t, entry.Status)

		mismatches := warningsWithCode(record, lsfextract.WarnShapeMismatch)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "termine", mismatches[0].Section)
	})

	t.Run("one anomalous row does not affect its neighbors", func(t *testing.T) {
		t.Parallel()

		html := schedulePage(`
<tr><td>Mo</td><td>08:30</td></tr>
<tr><td>Di</td><td>10:30 bis 12:00</td><td>wöch.</td><td>14.10.2025 bis 03.02.2026</td><td>5C 2</td><td></td><td>Klau</td><td>findet statt</td><td></td><td>&nbsp;</td><td>&nbsp;</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		require.Len(t, record.Termine, 2)
		assert.Equal(t, ptr("Mo"), record.Termine[0].Tag)
		assert.Equal(t, ptr("Klau"), record.Termine[1].Lehrperson)
		assert.Len(t, warningsWithCode(record, lsfextract.WarnShapeMismatch), 1)
	})

	t.Run("room falls back to plain cell text without a link", func(t *testing.T) {
		t.Parallel()

		html := schedulePage(`<tr><td>Do</td><td>14:30 bis 16:00</td><td>wöch.</td><td></td><td>Online-Veranstaltung</td><td></td><td></td><td></td><td></td><td></td><td></td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		require.Len(t, record.Termine, 1)
		assert.Equal(t, ptr("Online-Veranstaltung"), record.Termine[0].Raum)
		assert.Equal(t, ptr(""), record.Termine[0].Dauer, "empty duration cell is empty, not absent")
	})

	t.Run("schedule order follows document order", func(t *testing.T) {
		t.Parallel()

		html := schedulePage(`
<tr><td>Mi</td><td>10:30</td><td>wöch.</td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td></tr>
<tr><td>Mo</td><td>08:30</td><td>wöch.</td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		require.Len(t, record.Termine, 2)
		assert.Equal(t, ptr("Mi"), record.Termine[0].Tag)
		assert.Equal(t, ptr("Mo"), record.Termine[1].Tag)
	})

	t.Run("empty schedule table yields no entries", func(t *testing.T) {
		t.Parallel()

		record, err := goquery.NewExtractor().ExtractCourse(schedulePage(""), "t")
		require.NoError(t, err)

		assert.NotNil(t, record.Termine)
		assert.Empty(t, record.Termine)
		assert.Empty(t, warningsWithCode(record, lsfextract.WarnShapeMismatch))
	})
}
