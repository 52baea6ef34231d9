package xmlout

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

// Serialize renders the document as indented XML with an explicit UTF-8
// declaration. Writing the bytes anywhere is the caller's concern.
func Serialize(doc *Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dose objectives: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// FormatValue renders a numeric value to one decimal place, the importer's
// documented precision ceiling, rounding half away from zero. The decimal
// separator is always ".", independent of locale.
func FormatValue(v float64) string {
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

// FormatQuantity renders a value/unit pair, e.g. 60 "Gy" -> "60.0Gy".
func FormatQuantity(q models.Quantity) string {
	return FormatValue(q.Value) + q.Unit
}
