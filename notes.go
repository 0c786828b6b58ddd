package lsfextract

// KeywordHit is one occurrence of a catalog keyword with surrounding context.
type KeywordHit struct {
	Keyword  string `json:"keyword"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

// NoteLink is an outbound hyperlink found on a course-related page.
type NoteLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// CourseNotes holds unstructured information extracted from a course-related
// web page (chair homepage, course site). Unlike CourseRecord this is
// keyword-driven: it collects context snippets around catalog terms such as
// "Klausur" or "Sprechstunde" rather than typed fields.
type CourseNotes struct {
	SourceID   string                  `json:"sourceId"`
	Titel      string                  `json:"titel"`
	TextLaenge int                     `json:"textLaenge"`
	Stichworte map[string][]KeywordHit `json:"stichworte"`
	Links      []NoteLink              `json:"links"`
	Emails     []string                `json:"emails"`
}

// NotesExtractor extracts keyword-driven notes from arbitrary HTML pages.
type NotesExtractor interface {
	ExtractNotes(html string, sourceID string) (*CourseNotes, error)
}
