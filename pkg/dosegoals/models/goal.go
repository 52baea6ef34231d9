package models

// Metric identifies a DVH metric family.
type Metric struct {
	// Name is the family name, e.g. "Dmean" or "V".
	Name string `json:"name"`
	// Parametrized is true for bracketed forms such as "V[x]", whose
	// parameter is filled from the evaluation point.
	Parametrized bool `json:"parametrized"`
}

// Quantity is a numeric value with a unit token, e.g. 20 "Gy" or 5 "%".
type Quantity struct {
	Value float64 `json:"value"`
	// Unit is the trailing unit token; may be empty for bare numbers.
	Unit string `json:"unit,omitempty"`
}

// ClinicalGoal is one validated dose/volume constraint from a spreadsheet row.
type ClinicalGoal struct {
	// Structure identifies the constrained structure.
	Structure StructureIdentity `json:"structure"`
	// Aliases are the output entry ids, in first-seen order, at least one.
	Aliases []string `json:"aliases"`
	// Metric is the DVH metric family.
	Metric Metric `json:"metric"`
	// EvalPoint is the evaluation point; nil only for fixed-form metrics.
	EvalPoint *Quantity `json:"eval_point,omitempty"`
	// Variation is the acceptable variation, nil when the cell is blank.
	Variation *Quantity `json:"variation,omitempty"`
	// Priority is carried through exactly as parsed, never transformed.
	Priority int `json:"priority"`
	// TemplateID is the effective grouping key after rule application.
	TemplateID string `json:"template_id"`

	// Row is the 1-based spreadsheet row the goal came from.
	Row int `json:"row"`

	// Informational fields below are retained for QA inspection only and
	// are never serialized into the output document.

	// Source is the protocol or publication the constraint came from.
	Source string `json:"source,omitempty"`
	// RawTemplateID is the literal "TemplateID" cell before rule application.
	RawTemplateID string `json:"raw_template_id,omitempty"`
	// Notes is the free-text "ZusatzInfo" cell.
	Notes string `json:"notes,omitempty"`
	// Endpoint is the "Endpoint (grade >= 3)" annotation.
	Endpoint string `json:"endpoint,omitempty"`
}
