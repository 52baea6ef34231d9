package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/dosegoals-go/pkg/dosegoals/models"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Quantity
		wantErr bool
	}{
		{"20Gy", models.Quantity{Value: 20, Unit: "Gy"}, false},
		{"10cc", models.Quantity{Value: 10, Unit: "cc"}, false},
		{"5%", models.Quantity{Value: 5, Unit: "%"}, false},
		{"60.5Gy", models.Quantity{Value: 60.5, Unit: "Gy"}, false},
		{"20 Gy", models.Quantity{Value: 20, Unit: "Gy"}, false},
		{"30", models.Quantity{Value: 30}, false},
		{"Gy", models.Quantity{}, true},
		{"Gy20", models.Quantity{}, true},
		{"20Gy5", models.Quantity{}, true},
		{"", models.Quantity{}, true},
	}

	for _, tt := range tests {
		got, err := ParseQuantity(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidEvaluationPoint) {
				t.Errorf("ParseQuantity(%q) error = %v, want ErrInvalidEvaluationPoint", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseQuantity(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseQuantity(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"2", 2, false},
		{" 4 ", 4, false},
		{"2.0", 2, false},
		{"-1", -1, false},
		{"2.5", 0, true},
		{"high", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
