package parser

import "strings"

// Substrings of the raw "Structure IDs" cell that force the TemplateID
// override. The test is a case-sensitive substring match over the whole
// string, not per-token, so a name like "Converted_PTV" also matches; that
// edge is pinned by tests rather than guessed away.
var overrideMarkers = []string{"Conv", "Fx"}

// OverridesTemplateID reports whether the raw "Structure IDs" string forces
// the row's TemplateID to be overridden.
func OverridesTemplateID(structureIDs string) bool {
	for _, marker := range overrideMarkers {
		if strings.Contains(structureIDs, marker) {
			return true
		}
	}
	return false
}

// EffectiveTemplateID applies the single override rule: rows whose
// "Structure IDs" contain "Conv" or "Fx" are keyed by that raw string,
// replacing whatever the TemplateID column held. Other rows use the literal
// TemplateID cell, falling back to the placeholder when blank. The result is
// written back into the model so the override is explicit downstream.
func EffectiveTemplateID(structureIDs, templateID, placeholder string) string {
	if OverridesTemplateID(structureIDs) {
		return structureIDs
	}
	if templateID = strings.TrimSpace(templateID); templateID != "" {
		return templateID
	}
	return placeholder
}
