package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for offer catalog operations.
var (
	ErrOfferNotFound         = errors.New("offer not found")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
	ErrInvalidSortField      = errors.New("invalid sort field")
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrValidation            = errors.New("validation failed")
)

// Violation describes a single field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an offer definition fails its field constraints.
// errors.Is(err, ErrValidation) reports true for it.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns nil when there are no violations.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
