package mock

import (
	"context"

	"github.com/lsftools/lsfextract"
)

var _ lsfextract.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of lsfextract.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, record *lsfextract.CourseRecord) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, record *lsfextract.CourseRecord) error {
	return w.WriteRecordFn(ctx, record)
}
