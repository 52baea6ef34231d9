package dosegoals

import "fmt"

// MissingColumnError indicates a required column is absent from the
// Constraints sheet header. It is fatal for the file.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q is missing", e.Column)
}

// NewMissingColumnError creates a MissingColumnError for the named column.
func NewMissingColumnError(column string) *MissingColumnError {
	return &MissingColumnError{Column: column}
}
