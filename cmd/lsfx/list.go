package main

import (
	"fmt"

	"github.com/lsftools/lsfextract"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := lsfextract.CourseFilter{Limit: c.Limit}
	if c.Semester != "" {
		filter.Semester = &c.Semester
	}

	courses, err := deps.Courses.FindCourses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lsfextract.ErrorMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses found. Use 'lsfx extract --save' to store some.")
		return nil
	}

	for _, course := range courses {
		titel := ""
		if course.Record != nil && course.Record.Titel != nil {
			titel = *course.Record.Titel
		}
		semester := ""
		if course.Record != nil && course.Record.Semester != nil {
			semester = *course.Record.Semester
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", course.ID, course.SourceID, semester, titel)
	}

	return nil
}
