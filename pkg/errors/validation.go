package errors

import (
	"math"
	"strings"
	"unicode"
)

// Year bounds accepted by the calendar tooling. The week resolver itself
// works for any proleptic Gregorian year; these bounds only keep labels
// at four digits.
const (
	MinYear = 1
	MaxYear = 9999
)

// ValidatePositive reports an INVALID_INPUT error unless v is a finite
// number greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative reports an INVALID_INPUT error unless v is a finite
// number greater than or equal to zero.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidateYear checks that year lies in [MinYear, MaxYear].
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return New(ErrCodeInvalidYear, "year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	return nil
}

// ValidateYearRange checks both bounds and that from <= to.
func ValidateYearRange(from, to int) error {
	if err := ValidateYear(from); err != nil {
		return err
	}
	if err := ValidateYear(to); err != nil {
		return err
	}
	if from > to {
		return New(ErrCodeInvalidYear, "year range is empty: %d > %d", from, to)
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
