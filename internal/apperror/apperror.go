// Package apperror defines the structured error value raised by the service
// layer when a request cannot be satisfied. It carries the HTTP status and the
// message returned to the client verbatim.
package apperror

import (
	"errors"
	"net/http"
)

// Error is an application-raised failure with an explicit status and message
type Error struct {
	Status int
	Msg    string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Msg
}

// New creates an Error with the given status and message
func New(status int, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

// BadRequest reports malformed input
func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

// NotFound reports that a referenced entity is absent
func NotFound(msg string) *Error {
	return New(http.StatusNotFound, msg)
}

// IsNotFound reports whether err is, or wraps, a NotFound Error
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusNotFound
}

// IsBadRequest reports whether err is, or wraps, a BadRequest Error
func IsBadRequest(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest
}
