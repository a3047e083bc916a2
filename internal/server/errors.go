package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-coach/internal/agent"
	"github.com/jonathan/career-coach/internal/validation"
)

// httpStatus maps agent errors to HTTP status codes. Bad input is the
// caller's fault, a session in the wrong state is a conflict, anything
// else is ours.
func httpStatus(err error) int {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var stateErr *agent.SessionStateError
	if errors.As(err, &stateErr) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
