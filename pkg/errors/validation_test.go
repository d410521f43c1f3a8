package errors

import (
	"math"
	"testing"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 3, false},
		{"small positive", 1e-9, false},
		{"fraction", 0.5, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength("side", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGeometry) {
				t.Errorf("ValidateLength(%v) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "3", 3, false},
		{"decimal point", "3.5", 3.5, false},
		{"decimal comma", "3,5", 3.5, false},
		{"surrounding spaces", "  7 ", 7, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-2", 0, true},
		{"negative comma", "-2,5", 0, true},
		{"letters", "abc", 0, true},
		{"two commas", "1,2,3", 0, true},
		{"comma and point", "1,2.3", 0, true},
		{"NaN", "NaN", 0, true},
		{"Inf", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidInput) {
					t.Errorf("ParseLength(%q) returned wrong error code: %v", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
