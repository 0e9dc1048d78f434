package models

import "fmt"

// ValidationError is a malformed request shape: the request never reaches
// query translation. Maps to 422 at the HTTP layer.
type ValidationError struct {
	msg string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

// FilterError is a structurally valid request carrying a filter the
// translator rejects: wrong value arity or type for the operator, or an
// operator we do not know. Maps to 400 at the HTTP layer.
type FilterError struct {
	msg string
}

func NewFilterError(format string, args ...interface{}) *FilterError {
	return &FilterError{msg: fmt.Sprintf(format, args...)}
}

func (e *FilterError) Error() string { return e.msg }
