// Package domain defines core types, interfaces, and errors for the query
// presentation service.
package domain

import (
	"errors"
	"fmt"
)

// ErrPastEnd is returned by a RowSource when the requested range starts
// beyond the last available row. It is an expected signal near the end of a
// result set, distinct from data-access failures, and callers may recover
// from it locally.
var ErrPastEnd = errors.New("requested range is past the end of the results")

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a conflict (e.g., duplicate resource).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// DataAccessError indicates the underlying query engine or store failed.
// These are fatal to the operation that triggered them and are never
// swallowed by the paging core.
type DataAccessError struct {
	Message string
	Err     error
}

func (e *DataAccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrDataAccess wraps an engine/store failure with a formatted message.
func ErrDataAccess(err error, format string, args ...interface{}) *DataAccessError {
	return &DataAccessError{Message: fmt.Sprintf(format, args...), Err: err}
}
