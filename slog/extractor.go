// Package slog provides logging decorators for the extraction services.
package slog

import (
	"log/slog"
	"time"

	"github.com/lsftools/lsfextract"
)

// Ensure LoggingExtractor implements lsfextract.CourseExtractor.
var _ lsfextract.CourseExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a CourseExtractor with structured logging.
type LoggingExtractor struct {
	next   lsfextract.CourseExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lsfextract.CourseExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractCourse delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractCourse(html, sourceID string) (record *lsfextract.CourseRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source_id", sourceID,
			"duration", time.Since(begin),
		}
		if record != nil {
			attrs = append(attrs, "warnings", len(record.Warnings))
		}
		if err != nil {
			attrs = append(attrs, "err", err, "code", lsfextract.ErrorCode(err))
		}
		e.logger.Info("course extraction", attrs...)
	}(time.Now())
	return e.next.ExtractCourse(html, sourceID)
}
