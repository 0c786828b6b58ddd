package main

import (
	"context"
	"io"

	"github.com/lsftools/lsfextract"
	"github.com/lsftools/lsfextract/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Courses   lsfextract.CourseService
	Extractor lsfextract.CourseExtractor
	Notes     lsfextract.NotesExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract course records from LSF detail pages"`
	List    ListCmd    `cmd:"" help:"List stored courses"`
	Show    ShowCmd    `cmd:"" help:"Show a stored course record as JSON"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored course"`
	Notes   NotesCmd   `cmd:"" help:"Extract keyword notes from an arbitrary HTML page"`

	Verbose bool `short:"v" help:"Enable extraction logging"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" help:"HTML files or directories to extract"`
	Out         string   `short:"o" default:"out" help:"Output directory for JSON records"`
	Save        bool     `short:"s" help:"Also store records in the database"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent extraction limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Semester string `help:"Filter by semester label"`
	Limit    int    `help:"Maximum number of courses to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Course ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Course ID"`
	Force bool   `help:"Confirm deletion"`
}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	Path string `arg:"" help:"HTML file to analyze"`
}
