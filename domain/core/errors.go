package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Domain errors - centralized error definitions
var (
	ErrEmptyFrame       = errors.New("frame has no rows")
	ErrColumnNotFound   = errors.New("column not found")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrDegenerateInput signals that co-missingness clustering is undefined
	// (fewer than two variables carry missing values). Fatal for the
	// clustering artifact only, never for the rest of the report.
	ErrDegenerateInput = errors.New("degenerate input: fewer than two variables with missing values")
)

// SchemaError reports every non-numeric column found during validation.
// Validation is all-or-nothing: the caller gets the full list of offending
// columns, not just the first one.
type SchemaError struct {
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("non-numeric columns present: %s", strings.Join(e.Columns, ", "))
}

// NewSchemaError builds a SchemaError over the named columns.
func NewSchemaError(columns []string) *SchemaError {
	return &SchemaError{Columns: columns}
}

// IsSchemaError checks if an error is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Undefined returns the inline marker for a statistic with no defined value
// (zero variance, empty support, zero denominator). Undefined entries stay
// confined to their own cell and are never defaulted to zero.
func Undefined() float64 {
	return math.NaN()
}

// IsUndefined reports whether a statistic carries the undefined marker.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}
