package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Error is a domain failure tagged with one of the kinds above.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewNotFoundError(entity string, id string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with the provided id: '%s' not found", entity, id),
	}
}

func NewConflictError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrConflict,
		Message: message,
		Err:     cause,
	}
}

func NewValidationError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrValidation,
		Message: message,
		Err:     cause,
	}
}
