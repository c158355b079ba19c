package service

import (
	"errors"
	"fmt"

	"github.com/Devendra616/collectEmpData-sub000/internal/model"
	"github.com/Devendra616/collectEmpData-sub000/internal/validation"
)

// Business errors shared across services.
var (
	ErrInvalidCredentials = errors.New("invalid SAP ID or password")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSectionNotFound    = errors.New("section not saved yet")
	ErrAlreadySubmitted   = errors.New("form already submitted, sections are read-only")
	ErrPasswordMismatch   = errors.New("current password does not match")
	ErrNotAdmin           = errors.New("administrator access required")
)

// ValidationError carries the field-keyed error map for a rejected payload.
// Handlers unwrap it into the 400 response body.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// IncompleteSectionsError is returned by Submit when the require-complete
// policy is on and some sections were never saved.
type IncompleteSectionsError struct {
	Missing []model.Section
}

func (e *IncompleteSectionsError) Error() string {
	return fmt.Sprintf("submission requires all sections, %d missing", len(e.Missing))
}
