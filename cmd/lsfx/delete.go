package main

import (
	"fmt"

	"github.com/lsftools/lsfextract"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return lsfextract.Errorf(lsfextract.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Courses.DeleteCourse(deps.Ctx, c.ID); err != nil {
		if lsfextract.ErrorCode(err) == lsfextract.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: course %q not found. Use 'lsfx list' to see stored courses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lsfextract.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted course %q\n", c.ID)
	return nil
}
