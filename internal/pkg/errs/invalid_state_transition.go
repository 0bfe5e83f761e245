package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition is the sentinel error for vehicle status changes
// that the state machine does not allow.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidStateTransitionError reports an attempt to perform a status
// transition that is illegal from the current status.
type InvalidStateTransitionError struct {
	Operation     string
	CurrentStatus string
	Cause         error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError without an underlying cause.
func NewInvalidStateTransitionError(operation, currentStatus string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation:     operation,
		CurrentStatus: currentStatus,
	}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError wrapping a lower-level error.
func NewInvalidStateTransitionErrorWithCause(operation, currentStatus string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation:     operation,
		CurrentStatus: currentStatus,
		Cause:         cause,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s vehicle in status %s (cause: %s)",
			ErrInvalidStateTransition, e.Operation, e.CurrentStatus, e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s vehicle in status %s",
		ErrInvalidStateTransition, e.Operation, e.CurrentStatus)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
