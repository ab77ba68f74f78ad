package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the structured error types below.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
)

// sanitize strips newlines from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a concurrency token on an update did not
// match the stored object's version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an
// underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
