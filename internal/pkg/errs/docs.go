// Package errs provides standardized error types for the vehicle inventory service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed or blank
//   - ValueIsOutOfRangeError: For when a numeric value violates its bounds
//   - InvalidStateTransitionError: For illegal vehicle status transitions
//   - ObjectNotFoundError: For when an aggregate cannot be found
//   - PersistenceError / ConstraintViolationError: For storage failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets callers classify failures with errors.Is
// at every boundary: guarded setters, repositories, and the HTTP adapter.
package errs
