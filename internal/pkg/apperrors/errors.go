package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Entity errors. Each one chains to the matching common sentinel so routes
// can map the whole family with a single errors.Is check.
var (
	ErrEstudianteNotFound   = fmt.Errorf("estudiante: %w", ErrNotFound)
	ErrDocumentoAlreadyUsed = fmt.Errorf("documento ya registrado: %w", ErrAlreadyExists)
	ErrProgramaNotFound     = fmt.Errorf("programa: %w", ErrNotFound)
	ErrCodigoAlreadyUsed    = fmt.Errorf("código de programa ya registrado: %w", ErrAlreadyExists)
	ErrServicioNotFound     = fmt.Errorf("servicio: %w", ErrNotFound)
	ErrUsuarioNotFound      = fmt.Errorf("usuario: %w", ErrNotFound)
	ErrEmailAlreadyUsed     = fmt.Errorf("email ya registrado: %w", ErrAlreadyExists)
	ErrRegistroNotFound     = fmt.Errorf("registro: %w", ErrNotFound)
	ErrEstudianteHasRecords = fmt.Errorf("el estudiante tiene registros de atención asociados: %w", ErrConflict)
)

// ValidationError carries the field→message map produced by a ruleset. It is
// an expected outcome, not a store failure: routes turn it into a 400
// envelope with the map attached, and nothing is written before it is
// checked.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError builds a ValidationError from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError is an ErrNotFound carrying the resource and id that were
// asked for, so routes can return a descriptive 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %s no encontrado", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError builds a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
