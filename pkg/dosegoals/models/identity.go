// Package models defines the domain model for clinical goal conversion.
package models

// StructureIdentity identifies the anatomical structure a goal applies to.
type StructureIdentity struct {
	// ID is the canonical structure id (first token of "Structure IDs").
	ID string `json:"id"`
	// Synonyms holds the remaining pipe-separated tokens, distinct from ID.
	Synonyms []string `json:"synonyms,omitempty"`
	// Code is the numeric structure code as a digit string, empty when absent.
	Code string `json:"code,omitempty"`
}

// HasCode reports whether a numeric structure code is present.
func (s StructureIdentity) HasCode() bool {
	return s.Code != ""
}
