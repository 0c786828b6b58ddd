// Command lsfx extracts normalized course records from saved LSF course
// detail pages and manages a local store of extraction results.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/lsftools/lsfextract"
	"github.com/lsftools/lsfextract/goquery"
	lsfslog "github.com/lsftools/lsfextract/slog"
	"github.com/lsftools/lsfextract/sqlite"
	"github.com/lsftools/lsfextract/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CourseService lsfextract.CourseService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lsfx"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lsfx --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Extraction logging goes to stderr so stdout stays clean for JSON output.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractor = lsfslog.NewLoggingExtractor(goquery.NewExtractor(), logger)
	deps.Notes = lsfslog.NewLoggingNotesExtractor(trafilatura.NewNotesExtractor(), logger)

	// The database backs list/show/delete and extract --save. The notes and
	// plain extract commands work without it, so only open when needed.
	if commandNeedsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LSFX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.CourseService = sqlite.NewCourseService(m.DB)
		deps.DB = m.DB
		deps.Courses = m.CourseService
	}

	return kongCtx.Run(deps)
}

func commandNeedsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "extract":
		return cli.Extract.Save
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("LSFX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lsfx.db"
	}
	dir := filepath.Join(home, ".lsfx")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lsfx.db")
}
