package errors

import (
	"math"
	"strconv"
	"strings"
)

// ValidateLength checks that v can be used as a geometric length: finite and
// strictly positive. name identifies the parameter in the message
// (e.g. "circle radius").
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidGeometry, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "%s must be positive, got %s", name, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

// ParseLength parses a user-entered length.
//
// A single decimal comma is accepted in place of the point ("3,5" is 3.5).
// The result must pass ValidateLength; anything else, including the empty
// string, is reported as ErrCodeInvalidInput.
func ParseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "value cannot be empty")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "not a number: %q", s)
	}
	if err := ValidateLength("value", v); err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "not a valid length: %q", s)
	}
	return v, nil
}
