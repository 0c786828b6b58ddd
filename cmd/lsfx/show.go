package main

import (
	"encoding/json"
	"fmt"

	"github.com/lsftools/lsfextract"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	course, err := deps.Courses.FindCourseByID(deps.Ctx, c.ID)
	if err != nil {
		if lsfextract.ErrorCode(err) == lsfextract.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: course %q not found. Use 'lsfx list' to see stored courses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lsfextract.ErrorMessage(err))
		}
		return err
	}

	data, err := json.MarshalIndent(course, "", "  ")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
