package normalizer

import (
	"errors"
	"fmt"

	"candidates/internal/models"
)

// Validation errors.
var (
	ErrMissingOffice   = errors.New("no office present or resolvable")
	ErrMissingDistrict = errors.New("house candidate has no resolvable district")
)

// ValidationError reports a candidate that cannot be built.
type ValidationError struct {
	Field string
	Name  string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid candidate: %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("invalid candidate %q: %s: %v", e.Name, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator checks candidate invariants.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that an office is set and that house candidates have a district.
func (v *Validator) Validate(c *models.Candidate) error {
	if c.Office == "" {
		return &ValidationError{Field: models.FieldOffice, Name: c.Name, Err: ErrMissingOffice}
	}

	if c.Office == models.OfficeHouse && c.District == "" {
		return &ValidationError{Field: models.FieldDistrict, Name: c.Name, Err: ErrMissingDistrict}
	}

	return nil
}
