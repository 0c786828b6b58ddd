package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lsftools/lsfextract"
	main "github.com/lsftools/lsfextract/cmd/lsfx"
	"github.com/lsftools/lsfextract/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists courses with ID, source ID, semester, and title", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCoursesFn: func(_ context.Context, _ lsfextract.CourseFilter) ([]*lsfextract.Course, error) {
				return []*lsfextract.Course{
					{
						ID:       "course-123",
						SourceID: "210001",
						Record: &lsfextract.CourseRecord{
							SourceID: "210001",
							Titel:    ptr("Algorithmen und Datenstrukturen"),
							Semester: ptr("WiSe 2025/26"),
						},
						ExtractedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:       "course-456",
						SourceID: "210002",
						Record: &lsfextract.CourseRecord{
							SourceID: "210002",
							Titel:    ptr("Programmierung"),
							Semester: ptr("SoSe 2026"),
						},
						ExtractedAt: time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Courses: courses,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "course-123")
		assert.Contains(t, output, "course-456")
		assert.Contains(t, output, "210001")
		assert.Contains(t, output, "Algorithmen und Datenstrukturen")
		assert.Contains(t, output, "WiSe 2025/26")
	})

	t.Run("passes semester filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter lsfextract.CourseFilter
		courses := &mock.CourseService{
			FindCoursesFn: func(_ context.Context, filter lsfextract.CourseFilter) ([]*lsfextract.Course, error) {
				gotFilter = filter
				return []*lsfextract.Course{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Courses: courses,
		}

		cmd := &main.ListCmd{Semester: "WiSe 2025/26", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.Semester)
		assert.Equal(t, "WiSe 2025/26", *gotFilter.Semester)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no courses exist", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCoursesFn: func(_ context.Context, _ lsfextract.CourseFilter) ([]*lsfextract.Course, error) {
				return []*lsfextract.Course{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Courses: courses,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No courses")
	})

	t.Run("returns error when FindCourses fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		courses := &mock.CourseService{
			FindCoursesFn: func(_ context.Context, _ lsfextract.CourseFilter) ([]*lsfextract.Course, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Courses: courses,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
