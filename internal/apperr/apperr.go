// Package apperr defines the recoverable error kinds the directory core
// hands back to callers. Handlers map anything else to a 500.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// Invalid reports malformed caller input (bad email shape, missing
// required resource fields).
func Invalid(msg string) *Error {
	return &Error{Message: msg, Status: http.StatusBadRequest}
}

// Forbidden reports a caller that fails the admin gate.
func Forbidden() *Error {
	return &Error{Message: "Forbidden", Status: http.StatusForbidden}
}

// NotFound reports an id absent from the catalog.
func NotFound(msg string) *Error {
	return &Error{Message: msg, Status: http.StatusNotFound}
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// errors the core does not classify (storage failures included).
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
