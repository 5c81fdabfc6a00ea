package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error type
// below unwraps to exactly one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrPreconditionNotMet     = errors.New("precondition not met")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// sanitize collapses newlines so error messages stay on one log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version value is not usable.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName}
}

func (e VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError indicates that a requested status change is not reachable
// from the current status per the transition table.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given statuses.
func NewInvalidTransitionError(from, to string) InvalidTransitionError {
	return InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) InvalidTransitionError {
	return InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PreconditionNotMetError indicates that a status change is reachable but its
// gating condition does not hold yet. Reason is user-facing and actionable.
type PreconditionNotMetError struct {
	Reason string
	Cause  error
}

// NewPreconditionNotMetError creates a PreconditionNotMetError with an actionable reason.
func NewPreconditionNotMetError(reason string) PreconditionNotMetError {
	return PreconditionNotMetError{Reason: reason}
}

// NewPreconditionNotMetErrorWithCause creates a PreconditionNotMetError wrapping an underlying cause.
func NewPreconditionNotMetErrorWithCause(reason string, cause error) PreconditionNotMetError {
	return PreconditionNotMetError{Reason: reason, Cause: cause}
}

func (e PreconditionNotMetError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionNotMet, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionNotMet, e.Reason))
}

func (e PreconditionNotMetError) Unwrap() error {
	return ErrPreconditionNotMet
}

// UnauthorizedError indicates that the acting role is not permitted to perform
// the attempted operation.
type UnauthorizedError struct {
	Role   string
	Action string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError for the given role and action.
func NewUnauthorizedError(role, action string) UnauthorizedError {
	return UnauthorizedError{Role: role, Action: action}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(role, action string, cause error) UnauthorizedError {
	return UnauthorizedError{Role: role, Action: action, Cause: cause}
}

func (e UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: role %s cannot %s (cause: %s)", ErrUnauthorized, e.Role, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: role %s cannot %s", ErrUnauthorized, e.Role, e.Action))
}

func (e UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConcurrentModificationError indicates that an optimistic-concurrency write lost
// the race: the stored aggregate version no longer matches the loaded one.
// Callers are expected to reload and retry.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Version   int64
	Cause     error
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the given
// aggregate and the version the writer expected.
func NewConcurrentModificationError(paramName string, id any, version int64) ConcurrentModificationError {
	return ConcurrentModificationError{ParamName: paramName, ID: id, Version: version}
}

// NewConcurrentModificationErrorWithCause creates a ConcurrentModificationError wrapping an underlying cause.
func NewConcurrentModificationErrorWithCause(paramName string, id any, version int64, cause error) ConcurrentModificationError {
	return ConcurrentModificationError{ParamName: paramName, ID: id, Version: version, Cause: cause}
}

func (e ConcurrentModificationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s at version %d (cause: %s)",
			ErrConcurrentModification, e.ParamName, e.ID, e.Version, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s at version %d", ErrConcurrentModification, e.ParamName, e.ID, e.Version))
}

func (e ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
