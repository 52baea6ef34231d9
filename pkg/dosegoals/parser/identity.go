package parser

import (
	"strings"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

// ResolveIdentity derives the structure identity from the raw "Structure IDs"
// and "Structure Codes" cells. The first pipe-separated token is the
// canonical id, the remainder the synonym set; synonyms equal to the
// canonical id are dropped. The caller guarantees structureIDs is non-blank.
func ResolveIdentity(structureIDs, structureCodes string) models.StructureIdentity {
	tokens := splitTrim(structureIDs, "|")
	if len(tokens) == 0 {
		// Degenerate cells like "|" keep the trimmed raw string as id.
		tokens = []string{strings.TrimSpace(structureIDs)}
	}

	identity := models.StructureIdentity{
		ID:   tokens[0],
		Code: firstNumericCode(structureCodes),
	}

	seen := map[string]struct{}{identity.ID: {}}
	for _, t := range tokens[1:] {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		identity.Synonyms = append(identity.Synonyms, t)
	}

	return identity
}

// ResolveAliases splits the "IDAliases" cell on semicolons into the output
// alias list, collapsing duplicates to the first occurrence. A blank cell
// falls back to the canonical structure id as the sole alias.
func ResolveAliases(idAliases, canonicalID string) []string {
	tokens := splitTrim(idAliases, ";")
	if len(tokens) == 0 {
		return []string{canonicalID}
	}

	seen := make(map[string]struct{}, len(tokens))
	aliases := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		aliases = append(aliases, t)
	}

	return aliases
}

// firstNumericCode returns the first positive all-digit token of a
// pipe-separated code list, or "" when none is present. A non-numeric cell
// is not an error; the code is simply absent.
func firstNumericCode(s string) string {
	for _, t := range splitTrim(s, "|") {
		if isDigits(t) && t != "0" {
			return t
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// splitTrim splits on sep, trims each token and drops empty ones.
func splitTrim(s, sep string) []string {
	var out []string
	for _, t := range strings.Split(s, sep) {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
