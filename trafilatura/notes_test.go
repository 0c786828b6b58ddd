package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/lsftools/lsfextract"
	"github.com/lsftools/lsfextract/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chairPage = `<!DOCTYPE html>
<html>
<head><title>Lehrstuhl für Algorithmen und Datenstrukturen</title></head>
<body>
<nav><a href="/impressum">Impressum</a></nav>
<main>
<h1>Lehrstuhl für Algorithmen und Datenstrukturen</h1>
<p>Die Klausur zur Vorlesung Algorithmen und Datenstrukturen findet am Ende des
Wintersemesters statt. Die Anmeldung erfolgt über das Studierendenportal, und eine
Probeklausur wird in der letzten Vorlesungswoche angeboten, damit sich alle
Teilnehmerinnen und Teilnehmer mit dem Aufgabenformat vertraut machen können.</p>
<p>Die Sprechstunde von Prof. Dr. Klau findet dienstags von 14 bis 15 Uhr in Raum
25.13.02.22 statt. Eine Anmeldung per E-Mail an gunnar.klau@hhu.de wird erbeten,
damit sich keine langen Wartezeiten vor dem Büro ergeben.</p>
<p>Das Skript und weitere Vorlesungsunterlagen werden über die Lernplattform
<a href="https://ilias.hhu.de/course/42">ILIAS</a> bereitgestellt und nach jeder
Vorlesung aktualisiert, sodass der aktuelle Stoff jederzeit nachgelesen werden kann.</p>
</main>
<footer>Heinrich-Heine-Universität Düsseldorf</footer>
</body>
</html>`

func TestNotesExtractor_ExtractNotes(t *testing.T) {
	t.Parallel()

	t.Run("finds catalog keywords with context", func(t *testing.T) {
		t.Parallel()

		notes, err := trafilatura.NewNotesExtractor().ExtractNotes(chairPage, "algo-chair")
		require.NoError(t, err)

		assert.Equal(t, "algo-chair", notes.SourceID)
		assert.Positive(t, notes.TextLaenge)

		require.Contains(t, notes.Stichworte, "klausur")
		hit := notes.Stichworte["klausur"][0]
		assert.Equal(t, "klausur", hit.Keyword)
		assert.Contains(t, strings.ToLower(hit.Context), "klausur")

		assert.Contains(t, notes.Stichworte, "sprechstunde")
		assert.Contains(t, notes.Stichworte, "skript")
	})

	t.Run("collects emails and outbound links", func(t *testing.T) {
		t.Parallel()

		notes, err := trafilatura.NewNotesExtractor().ExtractNotes(chairPage, "algo-chair")
		require.NoError(t, err)

		assert.Contains(t, notes.Emails, "gunnar.klau@hhu.de")

		require.Len(t, notes.Links, 1, "relative links are skipped")
		assert.Equal(t, "https://ilias.hhu.de/course/42", notes.Links[0].URL)
		assert.Equal(t, "ILIAS", notes.Links[0].Text)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewNotesExtractor().ExtractNotes("", "x")
		require.Error(t, err)
		assert.Equal(t, lsfextract.EINVALID, lsfextract.ErrorCode(err))
	})
}
