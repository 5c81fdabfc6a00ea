// Package errs provides standardized error types for the printshop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two groups of errors are provided:
//
// Validation errors, used when constructing value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its permitted range
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: an aggregate version is unusable
//
// Workflow errors, surfaced by the order fulfillment state machine:
//   - InvalidTransitionError: the target status is unreachable from the current one
//   - PreconditionNotMetError: the transition is reachable but its gate does not hold
//   - UnauthorizedError: the acting role may not perform the operation
//   - ConcurrentModificationError: an optimistic-concurrency write lost the race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All workflow errors are recoverable: the core never retries, the caller decides.
package errs
