// Package fs provides file-based output for extracted course records.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/lsftools/lsfextract"
)

// RecordPath converts a source identifier to a relative JSON file name.
// Path separators and other unfriendly characters are replaced so that
// identifiers derived from file names or URLs stay usable as file names.
func RecordPath(sourceID string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, sourceID)
	name = strings.Trim(name, " .")
	if name == "" {
		name = "record"
	}
	return name + ".json"
}

// Ensure Writer implements lsfextract.RecordWriter at compile time.
var _ lsfextract.RecordWriter = (*Writer)(nil)

// Writer writes course records as indented JSON files to a directory.
// Serialization lives here, outside the extraction engine; the JSON field
// names on the record types are the wire contract.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk as a JSON file named after its source ID.
func (w *Writer) WriteRecord(ctx context.Context, record *lsfextract.CourseRecord) error {
	if record.SourceID == "" {
		return lsfextract.Errorf(lsfextract.EINVALID, "record source ID required")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return lsfextract.Errorf(lsfextract.EINTERNAL, "failed to encode record: %v", err)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, RecordPath(record.SourceID))
	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}
