package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

// Fixed-form metric families that take no parameter. Their evaluation point
// may be blank.
var fixedMetrics = map[string]struct{}{
	"Dmean": {},
	"Dmax":  {},
	"Dmin":  {},
}

// parametrizedMetricRe matches the bracketed-parameter form, e.g. "V[x]" or
// "D[x]". The parameter is filled later from the evaluation point.
var parametrizedMetricRe = regexp.MustCompile(`^([A-Za-z]+)\[x\]$`)

// ParseMetric parses a DVH Objective cell into a metric family.
func ParseMetric(s string) (models.Metric, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Metric{}, ErrInvalidMetric
	}

	if _, ok := fixedMetrics[s]; ok {
		return models.Metric{Name: s}, nil
	}

	if m := parametrizedMetricRe.FindStringSubmatch(s); m != nil {
		return models.Metric{Name: m[1], Parametrized: true}, nil
	}

	return models.Metric{}, ErrInvalidMetric
}
