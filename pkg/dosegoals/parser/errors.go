package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyStructure signals a spacer row with a blank "Structure IDs" cell.
// It is a skip marker, not a validation failure.
var ErrEmptyStructure = errors.New("empty structure ids")

// ErrInvalidPriority indicates a Priority cell that is not an integer.
var ErrInvalidPriority = errors.New("invalid priority")

// ErrInvalidEvaluationPoint indicates an Evaluation Point or Variation cell
// that cannot be split into a numeric value and unit token, or a blank
// evaluation point on a parametrized metric.
var ErrInvalidEvaluationPoint = errors.New("invalid evaluation point")

// ErrInvalidMetric indicates a DVH Objective that matches neither a
// fixed-form metric name nor the bracketed-parameter form.
var ErrInvalidMetric = errors.New("invalid dvh objective")

// RowError is a row-level validation failure with enough context to point
// the user at the offending cell. Row errors are collected and reported;
// they never abort the remaining rows of a file.
type RowError struct {
	// Row is the 1-based spreadsheet row number.
	Row int
	// Column is the canonical header of the failing cell.
	Column string
	// Value is the raw cell content.
	Value string
	// Err is the underlying cause.
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v (value %q)", e.Row, e.Column, e.Err, e.Value)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func rowErr(row int, column, value string, err error) *RowError {
	return &RowError{Row: row, Column: column, Value: value, Err: err}
}
