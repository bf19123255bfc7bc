package errors

import (
	"fmt"
	"strings"
)

// IsDataprepError reports whether err is our structured Error type
func IsDataprepError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// GetCode returns the error code string, or "" for foreign error types
func GetCode(err error) string {
	if dpErr, ok := err.(*Error); ok {
		return dpErr.Code.String()
	}
	return ""
}

// GetContext returns the attached context, or nil for foreign error types
func GetContext(err error) map[string]string {
	if dpErr, ok := err.(*Error); ok {
		return dpErr.Context
	}
	return nil
}

// HasCode reports whether err is a structured Error carrying the given code
func HasCode(err error, code Code) bool {
	if dpErr, ok := err.(*Error); ok {
		return dpErr.Code.Equals(code)
	}
	return false
}

// AsError converts any error to the structured Error type, wrapping
// foreign errors under CommonInternal. Returns nil for nil input.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if dpErr, ok := err.(*Error); ok {
		return dpErr
	}
	return Wrap(CommonInternal, err, err.Error())
}

// Format renders a structured error with its code, context and cause on
// separate lines. Foreign errors render as their plain Error() string.
func Format(err error) string {
	dpErr, ok := err.(*Error)
	if !ok {
		return err.Error()
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Code: %s", dpErr.Code))
	parts = append(parts, fmt.Sprintf("Message: %s", dpErr.Message))

	if len(dpErr.Context) > 0 {
		parts = append(parts, "Context:")
		for k, v := range dpErr.Context {
			parts = append(parts, fmt.Sprintf("  %s: %v", k, v))
		}
	}

	if dpErr.Cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %v", dpErr.Cause))
	}

	return strings.Join(parts, "\n")
}
