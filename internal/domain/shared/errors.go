package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Lookup errors

// NotFoundError reports a missing catalog entry, customer or order
type NotFoundError struct {
	*DomainError
	Kind string
	Key  string
}

func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("%s not found: %s", kind, key)),
		Kind:        kind,
		Key:         key,
	}
}

// InvalidStateError reports an operation rejected by a state machine.
// Core state machines ignore such calls; this error is only surfaced by the
// scripting layer so dialogue scripts can log what they attempted.
type InvalidStateError struct {
	*DomainError
	Operation string
	State     string
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{
		DomainError: NewDomainError(fmt.Sprintf("cannot %s while %s", operation, state)),
		Operation:   operation,
		State:       state,
	}
}
