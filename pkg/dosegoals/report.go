package dosegoals

import (
	"fmt"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/parser"
)

// FileReport is the outcome of converting one workbook.
type FileReport struct {
	// SourceID is the unique id assigned to the opened workbook.
	SourceID string `json:"source_id"`
	Input    string `json:"input"`
	Output   string `json:"output"`
	// Rows is the number of data rows in the sheet.
	Rows int `json:"rows"`
	// Converted counts rows that produced a clinical goal.
	Converted int `json:"converted"`
	// Skipped counts spacer rows with blank structure ids.
	Skipped int `json:"skipped"`
	// RowErrors holds the collected row-level validation failures.
	RowErrors []*parser.RowError `json:"row_errors,omitempty"`
}

// FileResult pairs one batch input with its report or fatal error.
type FileResult struct {
	Input  string      `json:"input"`
	Report *FileReport `json:"report,omitempty"`
	Err    error       `json:"-"`
}

// BatchSummary aggregates the per-file outcomes of a directory conversion.
type BatchSummary struct {
	Files     []FileResult `json:"files"`
	Converted int          `json:"converted"`
	Failed    int          `json:"failed"`
}

// Failures returns the results whose files failed fatally.
func (s *BatchSummary) Failures() []FileResult {
	var out []FileResult
	for _, f := range s.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// String renders a one-line batch outcome for logs and CLI output.
func (s *BatchSummary) String() string {
	return fmt.Sprintf("%d converted, %d failed of %d files",
		s.Converted, s.Failed, len(s.Files))
}
