// Package parser validates raw spreadsheet rows into typed clinical goals.
package parser

import (
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/rowsource"
)

// Parser turns raw rows into validated clinical goals. It holds no state
// across rows; every call is a pure function of its input.
type Parser struct {
	// DefaultTemplateID keys rows whose TemplateID cell is blank and whose
	// structure ids do not trigger the override rule.
	DefaultTemplateID string
}

// New creates a row parser with the given TemplateID placeholder.
func New(defaultTemplateID string) *Parser {
	return &Parser{DefaultTemplateID: defaultTemplateID}
}

// ParseRow validates one raw row into a ClinicalGoal.
//
// A blank "Structure IDs" cell returns ErrEmptyStructure: the row is a
// spacer, to be skipped without affecting grouping or ordering. Validation
// failures return a *RowError identifying the offending cell.
func (p *Parser) ParseRow(row rowsource.Row) (*models.ClinicalGoal, error) {
	structureIDs := row.Get(rowsource.ColStructureIDs)
	if structureIDs == "" {
		return nil, ErrEmptyStructure
	}

	metricRaw := row.Get(rowsource.ColDVHObjective)
	metric, err := ParseMetric(metricRaw)
	if err != nil {
		return nil, rowErr(row.Num, rowsource.ColDVHObjective, metricRaw, err)
	}

	evalRaw := row.Get(rowsource.ColEvalPoint)
	var evalPoint *models.Quantity
	switch {
	case evalRaw != "":
		q, err := ParseQuantity(evalRaw)
		if err != nil {
			return nil, rowErr(row.Num, rowsource.ColEvalPoint, evalRaw, err)
		}
		evalPoint = &q
	case metric.Parametrized:
		// Parametrized metrics have no value without their parameter.
		return nil, rowErr(row.Num, rowsource.ColEvalPoint, evalRaw, ErrInvalidEvaluationPoint)
	}

	var variation *models.Quantity
	if variationRaw := row.Get(rowsource.ColVariation); variationRaw != "" {
		q, err := ParseQuantity(variationRaw)
		if err != nil {
			return nil, rowErr(row.Num, rowsource.ColVariation, variationRaw, err)
		}
		variation = &q
	}

	priorityRaw := row.Get(rowsource.ColPriority)
	priority, err := ParsePriority(priorityRaw)
	if err != nil {
		return nil, rowErr(row.Num, rowsource.ColPriority, priorityRaw, err)
	}

	identity := ResolveIdentity(structureIDs, row.Get(rowsource.ColStructureCodes))
	rawTemplateID := row.Get(rowsource.ColTemplateID)

	return &models.ClinicalGoal{
		Structure:     identity,
		Aliases:       ResolveAliases(row.Get(rowsource.ColIDAliases), identity.ID),
		Metric:        metric,
		EvalPoint:     evalPoint,
		Variation:     variation,
		Priority:      priority,
		TemplateID:    EffectiveTemplateID(structureIDs, rawTemplateID, p.DefaultTemplateID),
		Row:           row.Num,
		Source:        row.Get(rowsource.ColSource),
		RawTemplateID: rawTemplateID,
		Notes:         row.Get(rowsource.ColZusatzInfo),
		Endpoint:      row.Get(rowsource.ColEndpoint),
	}, nil
}
