package errors

import "fmt"

// Error is the structured error type used across the module. Every error
// carries a Code so callers can branch on the failure class without
// matching message strings.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]string
}

// Core constructors - code is compulsory first argument
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

func Wrapf(code Code, err error, format string, args ...interface{}) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// AddContext attaches a key/value pair and returns the error for chaining
func (e *Error) AddContext(key, value string) *Error {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause sets the underlying cause and returns the error for chaining
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
