// Package apperrors classifies the failures the service layer can raise
// so the transport layer can map them onto response codes.
package apperrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeValidation Code = "validation"
)

// Error is a classified, user-correctable failure. None of the codes are
// fatal to the process; they surface verbatim at the boundary.
type Error struct {
	Code     Code
	Message  string
	Resource string
	ID       int64
	Fields   map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports that the referenced entity does not exist.
func NotFound(resource string, id int64) *Error {
	return &Error{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s not found with id: %d", resource, id),
		Resource: resource,
		ID:       id,
	}
}

// Conflict reports a duplicate-record collision.
func Conflict(message string) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: message,
	}
}

// Validation reports field constraint violations with a field-to-message map.
func Validation(fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// CodeOf returns the code carried by err, or "" for unclassified errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

func IsConflict(err error) bool {
	return CodeOf(err) == CodeConflict
}

func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}
