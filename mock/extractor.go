// Package mock provides function-field mocks for the service interfaces.
package mock

import "github.com/lsftools/lsfextract"

var _ lsfextract.CourseExtractor = (*Extractor)(nil)

// Extractor is a mock implementation of lsfextract.CourseExtractor.
type Extractor struct {
	ExtractCourseFn func(html, sourceID string) (*lsfextract.CourseRecord, error)
}

func (e *Extractor) ExtractCourse(html, sourceID string) (*lsfextract.CourseRecord, error) {
	return e.ExtractCourseFn(html, sourceID)
}
