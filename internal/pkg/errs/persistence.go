package errs

import (
	"errors"
	"fmt"
)

// ErrPersistenceFailed is the sentinel error for storage failures that are
// not constraint violations: connectivity loss, failed commits, scan errors.
var ErrPersistenceFailed = errors.New("persistence failed")

// ErrConstraintViolation is the sentinel error for uniqueness or integrity
// constraint violations surfaced by the store, such as a duplicate VIN.
var ErrConstraintViolation = errors.New("constraint violation")

// PersistenceError reports a failed storage operation.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError creates a PersistenceError for the named storage operation.
func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailed, e.Operation)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}

// ConstraintViolationError reports that the store rejected a write because it
// would break an integrity constraint.
type ConstraintViolationError struct {
	Constraint string
	Cause      error
}

// NewConstraintViolationError creates a ConstraintViolationError for the named constraint.
func NewConstraintViolationError(constraint string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{
		Constraint: constraint,
		Cause:      cause,
	}
}

func (e *ConstraintViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConstraintViolation, e.Constraint, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Constraint)
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}
