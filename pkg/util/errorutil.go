package util

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError is a single validation failure, reported in the order the
// rules are declared.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError standardizes application errors. Payload is written verbatim as
// the JSON response body; RawBody, when set, takes precedence and is relayed
// untouched (used for proxied downstream failures).
type HTTPError struct {
	Status  int
	Payload any
	RawBody []byte
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("http %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("http %d", e.Status)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewValidation reports field-level validation failures as a 400 with the
// structured error list.
func NewValidation(errs []FieldError) error {
	return &HTTPError{Status: http.StatusBadRequest, Payload: map[string]any{"errors": errs}}
}

// NewNotFound answers 404 with a resource-specific sentinel string.
func NewNotFound(sentinel string) error {
	return &HTTPError{Status: http.StatusNotFound, Payload: sentinel}
}

// NewUnauthorized answers 401 with a sentinel string.
func NewUnauthorized(sentinel string) error {
	return &HTTPError{Status: http.StatusUnauthorized, Payload: sentinel}
}

// NewForbidden answers 403 with a sentinel string.
func NewForbidden(sentinel string) error {
	return &HTTPError{Status: http.StatusForbidden, Payload: sentinel}
}

// NewStoreFailure wraps a data-access error. The original surface answers
// these as 501 with the raw error, and callers depend on that distinction
// from 404s.
func NewStoreFailure(err error) error {
	return &HTTPError{Status: http.StatusNotImplemented, Payload: err.Error(), Err: err}
}

// NewMessage answers the given status with a {"message": ...} body.
func NewMessage(status int, message string, err error) error {
	return &HTTPError{Status: status, Payload: map[string]any{"message": message}, Err: err}
}

// NewInternal answers 500 with a generic message, keeping the cause for the
// logs only.
func NewInternal(err error) error {
	return NewMessage(http.StatusInternalServerError, "Internal Server Error", err)
}

// NewRemote relays a downstream response's status and body verbatim.
func NewRemote(status int, body []byte) error {
	return &HTTPError{Status: status, RawBody: body}
}

// AsHTTPError unwraps err into an *HTTPError when possible.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
