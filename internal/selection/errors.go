package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection matches every *ValidationError via errors.Is.
var ErrInvalidSelection = errors.New("invalid selection")

// Field names a selection field.
type Field string

const (
	FieldYearRange       Field = "year_range"
	FieldWindowSize      Field = "window_size"
	FieldPolynomialOrder Field = "polynomial_order"
)

// Label is the human readable name of the field.
func (f Field) Label() string {
	switch f {
	case FieldYearRange:
		return "Year range"
	case FieldWindowSize:
		return "Window size"
	case FieldPolynomialOrder:
		return "Polynomial order"
	default:
		return string(f)
	}
}

// Violation is one failed constraint.
type Violation struct {
	Field      Field
	Constraint string
	Value      string
}

func (v Violation) String() string {
	if v.Value == "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Constraint)
	}
	return fmt.Sprintf("%s: %s (got %s)", v.Field, v.Constraint, v.Value)
}

// ValidationError reports every constraint a candidate selection violated.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return ErrInvalidSelection.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// Has reports whether any violation concerns f.
func (e *ValidationError) Has(f Field) bool {
	if e == nil {
		return false
	}
	for _, v := range e.Violations {
		if v.Field == f {
			return true
		}
	}
	return false
}

// Fields lists the offending fields in report order, without duplicates.
func (e *ValidationError) Fields() []Field {
	if e == nil {
		return nil
	}
	seen := make(map[Field]bool, len(e.Violations))
	var out []Field
	for _, v := range e.Violations {
		if seen[v.Field] {
			continue
		}
		seen[v.Field] = true
		out = append(out, v.Field)
	}
	return out
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
