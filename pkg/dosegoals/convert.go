package dosegoals

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/parser"
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/rowsource"
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/xmlout"
)

// requiredColumns must be present in the Constraints sheet header; a missing
// one aborts the file.
var requiredColumns = []string{
	rowsource.ColStructureIDs,
	rowsource.ColDVHObjective,
	rowsource.ColPriority,
}

// Converter runs the conversion pipeline. It holds configuration only; all
// per-file state lives on the stack, so conversions never leak aliases or
// groups into each other.
type Converter struct {
	cfg Config
	log *slog.Logger

	// WriteFile persists output bytes; defaults to os.WriteFile. Tests and
	// embedding callers may substitute it.
	WriteFile func(name string, data []byte, perm os.FileMode) error
	// Now supplies preview timestamps; defaults to time.Now.
	Now func() time.Time
}

// NewConverter creates a converter with the given configuration and logger.
func NewConverter(cfg Config, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{
		cfg:       cfg,
		log:       log,
		WriteFile: os.WriteFile,
		Now:       time.Now,
	}
}

// ConvertFile converts one workbook into a DoseObjectives XML file.
//
// Row-level validation failures are collected on the report and logged, not
// fatal. The returned error is non-nil only for file-level failures:
// unreadable workbook, missing Constraints sheet, missing required column,
// or an unwritable output path.
func (c *Converter) ConvertFile(inputPath, outputPath string, opts Options) (*FileReport, error) {
	src, err := rowsource.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sheet, err := src.Sheet(SheetName)
	if err != nil {
		return nil, err
	}

	for _, col := range requiredColumns {
		if !sheet.HasColumn(col) {
			return nil, fmt.Errorf("%s: %w", inputPath, NewMissingColumnError(col))
		}
	}

	report := &FileReport{
		SourceID: src.ID(),
		Input:    inputPath,
		Output:   outputPath,
		Rows:     len(sheet.Rows),
	}

	p := parser.New(c.cfg.DefaultTemplateID)
	var goals []models.ClinicalGoal

	for _, row := range sheet.Rows {
		goal, err := p.ParseRow(row)
		switch {
		case errors.Is(err, parser.ErrEmptyStructure):
			report.Skipped++
		case err != nil:
			var rowErr *parser.RowError
			if errors.As(err, &rowErr) {
				report.RowErrors = append(report.RowErrors, rowErr)
				c.log.Warn("row rejected",
					slog.String("input", inputPath),
					slog.Int("row", rowErr.Row),
					slog.String("column", rowErr.Column),
					slog.String("value", rowErr.Value),
					slog.String("reason", rowErr.Err.Error()))
			} else {
				return nil, fmt.Errorf("%s row %d: %w", inputPath, row.Num, err)
			}
		default:
			goals = append(goals, *goal)
			report.Converted++
		}
	}

	builder := &xmlout.Builder{
		CodeScheme:        c.cfg.CodeScheme,
		CodeSchemeVersion: c.cfg.CodeSchemeVersion,
		AssignedUsers:     c.cfg.AssignedUsers,
		Now:               c.Now,
	}

	info := xmlout.BuildInfo{
		PreviewID:  opts.PreviewIDFor(inputPath),
		SourceName: filepath.Base(inputPath),
	}
	if opts.OverridesPrimaryGroup() {
		info.PrimaryGroupID = opts.PreviewID
	}

	data, err := xmlout.Serialize(builder.Build(goals, info))
	if err != nil {
		return nil, err
	}

	if err := c.WriteFile(outputPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}

	c.log.Info("converted",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("goals", report.Converted),
		slog.Int("skipped", report.Skipped),
		slog.Int("row_errors", len(report.RowErrors)))

	return report, nil
}
