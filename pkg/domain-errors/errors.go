// Package domainerrors provides coded errors shared across modules.
//
// Services wrap infrastructure failures with a stable code so handlers can map
// them to transport responses without inspecting error strings. Codes are part
// of the API contract; messages are not.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers and transports.
type Code string

const (
	// CodeBadRequest: the request is malformed (bad JSON, missing params).
	CodeBadRequest Code = "bad_request"
	// CodeValidation: the input parsed but violates a domain rule
	// (unknown section id, negative financial year).
	CodeValidation Code = "validation_error"
	// CodeInvalidInput: a value failed enum/format validation at a trust boundary.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound: the referenced organization or record does not exist.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized: the caller is not authenticated.
	CodeUnauthorized Code = "unauthorized"
	// CodeUpstream: a repository/reference-data read failed.
	CodeUpstream Code = "upstream_error"
	// CodeInternal: an unexpected failure; details are logged, not returned.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	code Code
	msg  string
	err  error
}

// New creates a coded error with a message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a code and message. The cause stays
// reachable through errors.Unwrap for logging; only code and message cross
// module boundaries.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the classification code.
func (e *Error) Code() Code {
	return e.code
}

// Message returns the human-readable message without the cause chain.
func (e *Error) Message() string {
	return e.msg
}

// Is matches two coded errors by code, so sentinel-style comparisons work:
// errors.Is(err, dErrors.New(dErrors.CodeNotFound, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.code == t.code
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.code == code
}

// CodeOf extracts the code from err, defaulting to CodeInternal for uncoded
// errors so unexpected failures never leak details through transports.
func CodeOf(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return CodeInternal
	}
	return e.code
}
