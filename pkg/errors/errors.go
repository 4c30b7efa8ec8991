// Package errors defines the error kinds the API surfaces to callers.
//
// Every error carries a machine-readable Code that maps 1:1 onto the
// `extensions.code` field of a GraphQL error, so clients can branch on the
// kind without parsing messages.
package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	// CodeNotFound: a by-id lookup or update addressed a document that does
	// not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeValidation: a schema constraint was violated (required field,
	// uniqueness, numeric bound, pattern, enumeration membership).
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeBadInput: a referenced foreign entity supplied by the caller does
	// not exist.
	CodeBadInput Code = "BAD_USER_INPUT"
	// CodeInternal: the entity store or another dependency failed.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is the concrete error type returned by repositories and services.
type Error struct {
	code    Code
	message string
	fields  map[string]string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

// WithFields attaches per-field validation messages.
func (e *Error) WithFields(fields map[string]string) *Error {
	e.fields = fields
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

// Extensions implements graphql-go's gqlerrors.ExtendedError so the code
// (and any field errors) surface under `extensions` in the response.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.code)}
	if len(e.fields) > 0 {
		ext["fields"] = e.fields
	}
	return ext
}

// CodeOf extracts the Code from any error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if stdErrors.As(err, &appErr) {
		return appErr.Code()
	}
	return CodeInternal
}

func IsNotFound(err error) bool   { return CodeOf(err) == CodeNotFound }
func IsValidation(err error) bool { return CodeOf(err) == CodeValidation }
func IsBadInput(err error) bool   { return CodeOf(err) == CodeBadInput }

// As is a convenience re-export so callers don't need both this package and
// the standard library one.
func As(err error, target any) bool { return stdErrors.As(err, target) }
