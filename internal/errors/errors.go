package errors

import (
	"errors"
	"fmt"
)

// Error is a coded failure. Message is safe to show a client; Cause stays server side.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// NotFound reports a missing session, build or catalog entry
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return newf(CodeNotFound, format, args...)
}

// InvalidArgument reports input the configurator cannot act on
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists reports a saved build id collision
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf is AlreadyExists with a formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return newf(CodeAlreadyExists, format, args...)
}

// PermissionDeniedf reports access to another owner's session or build
func PermissionDeniedf(format string, args ...interface{}) *Error {
	return newf(CodePermissionDenied, format, args...)
}

// FailedPrecondition reports an operation the current state does not allow
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// Internal reports a broken invariant
func Internal(message string) *Error {
	return New(CodeInternal, message)
}
