package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBadRequest is the sentinel for every client-side validation failure:
	// missing fields, malformed fields, invalid state transitions and
	// identity mismatches all unwrap to it.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is the sentinel for failures caused by a referenced
	// resource id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrObjectNotFound is the repository-level sentinel returned when a
	// record lookup comes up empty. It carries no HTTP semantics; the
	// validation layer translates it into a RequestError.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel for values that fail a domain rule
	// outside the request path, e.g. while restoring records from storage.
	ErrValueIsInvalid = errors.New("value is invalid")
)

// RequestError is the structured failure produced by a validation step.
// It pairs the HTTP status to respond with and the exact message to render,
// and is propagated unchanged from the failing step to the response boundary.
type RequestError struct {
	Status  int
	Message string
	kind    error
}

// NewBadRequestError creates a RequestError carrying status 400.
func NewBadRequestError(message string) *RequestError {
	return &RequestError{
		Status:  http.StatusBadRequest,
		Message: message,
		kind:    ErrBadRequest,
	}
}

// NewNotFoundError creates a RequestError carrying status 404.
func NewNotFoundError(message string) *RequestError {
	return &RequestError{
		Status:  http.StatusNotFound,
		Message: message,
		kind:    ErrNotFound,
	}
}

// Error returns the message verbatim; the boundary must not decorate it.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns ErrBadRequest or ErrNotFound so callers can classify
// failures with errors.Is without matching on message text.
func (e *RequestError) Unwrap() error {
	return e.kind
}

// ObjectNotFoundError reports that a record with the given id does not exist
// in a repository collection.
type ObjectNotFoundError struct {
	ParamName string
	ID        string
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id string) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("object not found: %s", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// error that explains why the value was rejected.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
