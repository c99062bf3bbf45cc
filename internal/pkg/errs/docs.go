// Package errs provides standardized error types for the grubdash application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Two families of errors exist:
//
//   - RequestError: the structured {status, message} failure a validation
//     pipeline step terminates a request with. The message is rendered to the
//     client verbatim; the status is the HTTP status code of the response.
//     Every RequestError unwraps to either ErrBadRequest or ErrNotFound.
//   - ObjectNotFoundError / ValueIsInvalidError: infrastructure and domain
//     errors raised below the request boundary, e.g. by repositories. They
//     unwrap to their matching sentinel (ErrObjectNotFound, ErrValueIsInvalid)
//     so callers can classify them with errors.Is.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
