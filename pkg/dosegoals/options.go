// Package dosegoals converts clinical goal spreadsheets into DoseObjectives
// template XML for a treatment planning system importer.
package dosegoals

import (
	"path/filepath"
	"strings"
)

// SheetName is the worksheet holding the constraint table.
const SheetName = "Constraints"

// Options configures one conversion.
type Options struct {
	// PreviewID identifies the template in the importer's preview and, when
	// explicitly supplied, rekeys the primary output group. If empty, the
	// input file stem is used for the preview and no group is rekeyed.
	PreviewID string
}

// PreviewIDFor returns the preview id to use for the given input path.
func (o Options) PreviewIDFor(inputPath string) string {
	if o.PreviewID != "" {
		return o.PreviewID
	}
	return FileStem(inputPath)
}

// OverridesPrimaryGroup reports whether the caller supplied an explicit
// preview id that should rekey the first output group.
func (o Options) OverridesPrimaryGroup() bool {
	return o.PreviewID != ""
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
