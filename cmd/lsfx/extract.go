package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/lsftools/lsfextract"
	lsffs "github.com/lsftools/lsfextract/fs"
	"golang.org/x/sync/errgroup"
)

// extractResult carries the outcome of one file so results can be reported
// in input order regardless of worker scheduling.
type extractResult struct {
	position int
	path     string
	record   *lsfextract.CourseRecord
	html     string
	err      error
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := collectInputs(c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lsfextract.ErrorMessage(err))
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no HTML files found\n")
		return lsfextract.Errorf(lsfextract.ENOTFOUND, "no HTML files found in %s", strings.Join(c.Paths, ", "))
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan extractResult, len(inputs))

	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range inputs {
			i, path := i, path
			g.Go(func() error {
				resultCh <- extractFile(deps.Extractor, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]extractResult, len(inputs))
	for result := range resultCh {
		results[result.position] = result
	}

	writer := lsffs.NewWriter(c.Out)

	var okCount, failedCount int
	for _, result := range results {
		if result.err == nil {
			result.err = writer.WriteRecord(deps.Ctx, result.record)
		}
		if result.err == nil && c.Save {
			result.err = deps.Courses.CreateCourse(deps.Ctx, &lsfextract.Course{
				SourceID:   result.record.SourceID,
				SourceHash: fmt.Sprintf("%016x", xxhash.Sum64String(result.html)),
				Record:     result.record,
			})
		}

		if result.err != nil {
			failedCount++
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", result.path, lsfextract.ErrorMessage(result.err))
			continue
		}

		okCount++
		fmt.Fprintf(deps.Stdout, "  ok %s (%d warnings)\n", result.path, len(result.record.Warnings))
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d of %d pages to %s\n", okCount, len(inputs), c.Out)

	if failedCount > 0 {
		return lsfextract.Errorf(lsfextract.EINTERNAL, "%d of %d pages failed", failedCount, len(inputs))
	}
	return nil
}

// extractFile reads and extracts a single detail page.
func extractFile(extractor lsfextract.CourseExtractor, position int, path string) extractResult {
	result := extractResult{position: position, path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.err = err
		return result
	}
	result.html = string(data)

	record, err := extractor.ExtractCourse(result.html, deriveSourceID(path))
	if err != nil {
		result.err = err
		return result
	}

	result.record = record
	return result
}

// collectInputs expands the argument paths into a list of HTML files.
// Directories are walked recursively; explicitly named files are accepted
// regardless of extension.
func collectInputs(paths []string) ([]string, error) {
	var inputs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, lsfextract.Errorf(lsfextract.ENOTFOUND, "cannot read %q: %v", path, err)
		}

		if !info.IsDir() {
			inputs = append(inputs, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if isHTMLFile(p) {
				inputs = append(inputs, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// deriveSourceID turns a file path into a source identifier, typically the
// LSF event ID the page was saved under.
func deriveSourceID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
