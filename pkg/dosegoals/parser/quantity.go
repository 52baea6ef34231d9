package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

// quantityRe splits a leading numeric portion from a trailing unit suffix,
// e.g. "20Gy" -> 20 + "Gy", "10cc" -> 10 + "cc", "5%" -> 5 + "%".
var quantityRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z%]*)$`)

// ParseQuantity parses an Evaluation Point or Variation cell into a numeric
// value and unit token. The unit may be empty for bare numbers.
func ParseQuantity(s string) (models.Quantity, error) {
	m := quantityRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return models.Quantity{}, ErrInvalidEvaluationPoint
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Quantity{}, ErrInvalidEvaluationPoint
	}

	return models.Quantity{Value: value, Unit: m[2]}, nil
}

// ParsePriority parses a Priority cell as an integer. Integer-valued
// decimals such as "2.0" are accepted; anything else fails.
func ParsePriority(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPriority
	}

	if p, err := strconv.Atoi(s); err == nil {
		return p, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, ErrInvalidPriority
	}
	return int(f), nil
}
