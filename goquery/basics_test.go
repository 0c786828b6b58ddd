package goquery_test

import (
	"testing"

	"github.com/lsftools/lsfextract"
	"github.com/lsftools/lsfextract/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// warningsWithCode filters a record's warnings by code. Partial fixtures
// trigger missing_section warnings for the sections they leave out, so
// assertions target the code under test.
func warningsWithCode(record *lsfextract.CourseRecord, code string) []lsfextract.Warning {
	var out []lsfextract.Warning
	for _, w := range record.Warnings {
		if w.Code == code {
			out = append(out, w)
		}
	}
	return out
}

func basicsPage(rows string) string {
	return `<html><body>
<a name="basicdata"></a>
<table summary="Grunddaten zur Veranstaltung">` + rows + `</table>
</body></html>`
}

func TestExtractor_Basics(t *testing.T) {
	t.Parallel()

	t.Run("absent header identifier yields nil field", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`<tr><th id="basic_1">Veranstaltungsart</th><td headers="basic_1">Übung</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr("Übung"), record.Art)
		assert.Nil(t, record.Semester)
		assert.Nil(t, record.ECTS)
		assert.Nil(t, record.Sprache)
	})

	t.Run("present but empty cell yields empty string", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`<tr><th id="basic_16">Unterrichtssprache</th><td headers="basic_16"></td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr(""), record.Sprache)
	})

	t.Run("data cell resolves by headers attribute, not position", func(t *testing.T) {
		t.Parallel()

		// The semester cell sits in a different row than its header.
		html := basicsPage(`
<tr><th id="basic_5">Semester</th><th id="basic_1">Veranstaltungsart</th></tr>
<tr><td headers="basic_1">Vorlesung Präsenz</td><td headers="basic_5">WiSe 2025/26</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr("Vorlesung Präsenz"), record.Art)
		assert.Equal(t, ptr("WiSe 2025/26"), record.Semester)
	})

	t.Run("repeated ECTS identifier keeps first non-empty value", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`
<tr><th id="basic_11">ECTS ohne Prüfung</th><td headers="basic_11">&nbsp;</td>
<th id="basic_11">ECTS mit Prüfung</th><td headers="basic_11">7,5</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr("7,5"), record.ECTS)
		assert.Empty(t, warningsWithCode(record, lsfextract.WarnDuplicateValue),
			"a single non-empty candidate is not a conflict")
	})

	t.Run("multiple non-empty ECTS values warn and keep the first", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`
<tr><th id="basic_11">ECTS ohne Prüfung</th><td headers="basic_11">5</td>
<th id="basic_11">ECTS mit Prüfung</th><td headers="basic_11">7,5</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr("5"), record.ECTS)
		duplicates := warningsWithCode(record, lsfextract.WarnDuplicateValue)
		require.Len(t, duplicates, 1)
		assert.Equal(t, "grunddaten", duplicates[0].Section)
	})

	t.Run("ECTS value stays raw free text", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`<tr><th id="basic_11">ECTS</th><td headers="basic_11">5 CP bei bestandener Klausur</td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Equal(t, ptr("5 CP bei bestandener Klausur"), record.ECTS)
	})

	t.Run("hauptlink requires the marker class", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`<tr><th id="basic_13">Hyperlink</th>
<td headers="basic_13"><a href="https://example.org">nicht regulär</a></td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		assert.Nil(t, record.Hauptlink)
	})

	t.Run("weitere links keep external links unclassified", func(t *testing.T) {
		t.Parallel()

		html := basicsPage(`<tr><th id="basic_15">Weitere Links</th>
<td headers="basic_15"><a class="regular" href="https://www.cs.hhu.de/algo">Kurs</a></td>
<td headers="basic_15"><a class="regular" href="/qisserver/rds?state=redirect&amp;destination=https%3A%2F%2Fexample.org&amp;noDBAction=y">Extern</a></td></tr>`)

		record, err := goquery.NewExtractor().ExtractCourse(html, "t")
		require.NoError(t, err)

		require.Len(t, record.WeitereLinks, 2)

		external := record.WeitereLinks[0]
		assert.False(t, external.IsInternalRedirect)
		assert.Nil(t, external.RawDestinationParam)

		redirect := record.WeitereLinks[1]
		assert.True(t, redirect.IsInternalRedirect)
		require.NotNil(t, redirect.RawDestinationParam)
		assert.Equal(t, "https%3A%2F%2Fexample.org", *redirect.RawDestinationParam,
			"destination payload stays undecoded and stops at the next parameter")
	})
}
