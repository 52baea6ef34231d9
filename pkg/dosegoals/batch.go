package dosegoals

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds how many workbooks convert at once. Conversions
// are independent, so any bound is safe.
const batchConcurrency = 4

// DirLister yields the workbook paths to convert for a directory. It is
// injected so batch behavior is testable without a real templates tree.
type DirLister func(dir string) ([]string, error)

// ListWorkbooks is the default DirLister: all *.xlsx directly under dir,
// sorted by name, skipping office lock files ("~$...").
func ListWorkbooks(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var out []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// ConvertDir converts every workbook the lister yields, writing each XML
// beside its source as <stem>.xml. One file's fatal error never stops the
// others; the summary records every outcome. The returned error is non-nil
// only when the directory itself cannot be listed.
func (c *Converter) ConvertDir(dir string, list DirLister) (*BatchSummary, error) {
	if list == nil {
		list = ListWorkbooks
	}

	inputs, err := list(dir)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(inputs))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			output := strings.TrimSuffix(input, filepath.Ext(input)) + ".xml"
			report, err := c.ConvertFile(input, output, Options{})
			if err != nil {
				c.log.Error("conversion failed",
					slog.String("input", input),
					slog.String("error", err.Error()))
			}
			results[i] = FileResult{Input: input, Report: report, Err: err}
			return nil
		})
	}
	// Workers only record results, they never return errors.
	_ = g.Wait()

	summary := &BatchSummary{Files: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Converted++
		}
	}

	c.log.Info("batch finished", slog.String("summary", summary.String()))
	return summary, nil
}
