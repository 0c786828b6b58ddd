package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/lsftools/lsfextract"
)

// Compile-time interface verification.
var _ lsfextract.CourseService = (*CourseService)(nil)

// CourseService implements lsfextract.CourseService using SQLite.
type CourseService struct {
	db *DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateCourse stores a new course. The source hash allows callers to detect
// unchanged inputs without re-reading the record; when the caller did not
// hash the raw document itself, the serialized record is hashed instead.
func (s *CourseService) CreateCourse(ctx context.Context, course *lsfextract.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	record, err := json.Marshal(course.Record)
	if err != nil {
		return lsfextract.Errorf(lsfextract.EINTERNAL, "failed to encode record: %v", err)
	}

	course.ID = uuid.New().String()
	course.ExtractedAt = time.Now().UTC()
	if course.SourceHash == "" {
		course.SourceHash = hashContent(string(record))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO courses (id, source_id, source_hash, titel, semester, record, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, course.ID, course.SourceID, course.SourceHash,
		deref(course.Record.Titel), deref(course.Record.Semester),
		string(record), course.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindCourseByID retrieves a course by ID.
func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*lsfextract.Course, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_id, source_hash, record, extracted_at
		FROM courses
		WHERE id = ?
	`, id)

	course, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, lsfextract.Errorf(lsfextract.ENOTFOUND, "course not found")
	}
	if err != nil {
		return nil, err
	}
	return course, nil
}

// FindCourses retrieves courses matching the filter, newest first.
func (s *CourseService) FindCourses(ctx context.Context, filter lsfextract.CourseFilter) ([]*lsfextract.Course, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, source_id, source_hash, record, extracted_at
		FROM courses
		WHERE 1=1
	`)
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.Semester != nil {
		query.WriteString(" AND semester = ?")
		args = append(args, *filter.Semester)
	}
	query.WriteString(" ORDER BY extracted_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []*lsfextract.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// DeleteCourse permanently removes a course.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return lsfextract.Errorf(lsfextract.ENOTFOUND, "course not found")
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanCourse.
type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (*lsfextract.Course, error) {
	var course lsfextract.Course
	var record, extractedAt string

	if err := s.Scan(&course.ID, &course.SourceID, &course.SourceHash, &record, &extractedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(record), &course.Record); err != nil {
		return nil, lsfextract.Errorf(lsfextract.EINTERNAL, "failed to decode record: %v", err)
	}

	t, err := parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	course.ExtractedAt = t

	return &course, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
