package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lsftools/lsfextract"
)

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.Path, err)
		return err
	}

	notes, err := deps.Notes.ExtractNotes(string(data), deriveSourceID(c.Path))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lsfextract.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
