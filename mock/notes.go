package mock

import "github.com/lsftools/lsfextract"

var _ lsfextract.NotesExtractor = (*NotesExtractor)(nil)

// NotesExtractor is a mock implementation of lsfextract.NotesExtractor.
type NotesExtractor struct {
	ExtractNotesFn func(html, sourceID string) (*lsfextract.CourseNotes, error)
}

func (e *NotesExtractor) ExtractNotes(html, sourceID string) (*lsfextract.CourseNotes, error) {
	return e.ExtractNotesFn(html, sourceID)
}
