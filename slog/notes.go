package slog

import (
	"log/slog"
	"time"

	"github.com/lsftools/lsfextract"
)

// Ensure LoggingNotesExtractor implements lsfextract.NotesExtractor.
var _ lsfextract.NotesExtractor = (*LoggingNotesExtractor)(nil)

// LoggingNotesExtractor wraps a NotesExtractor with structured logging.
type LoggingNotesExtractor struct {
	next   lsfextract.NotesExtractor
	logger *slog.Logger
}

// NewLoggingNotesExtractor creates a new LoggingNotesExtractor.
func NewLoggingNotesExtractor(next lsfextract.NotesExtractor, logger *slog.Logger) *LoggingNotesExtractor {
	return &LoggingNotesExtractor{next: next, logger: logger}
}

// ExtractNotes delegates to the wrapped extractor and logs the operation.
func (e *LoggingNotesExtractor) ExtractNotes(html, sourceID string) (notes *lsfextract.CourseNotes, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source_id", sourceID,
			"duration", time.Since(begin),
		}
		if notes != nil {
			attrs = append(attrs, "text_length", notes.TextLaenge, "keywords", len(notes.Stichworte))
		}
		if err != nil {
			attrs = append(attrs, "err", err, "code", lsfextract.ErrorCode(err))
		}
		e.logger.Info("notes extraction", attrs...)
	}(time.Now())
	return e.next.ExtractNotes(html, sourceID)
}
