package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const fallbackMessage = "An unexpected error occurred"

// Error is a non-2xx response from the backend.
type Error struct {
	Method     string              `json:"-"`
	Path       string              `json:"-"`
	StatusCode int                 `json:"-"`
	Message    string              `json:"message"`
	Code       string              `json:"error_code,omitempty"`
	Fields     map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsUnauthorized reports a 401.
func (e *Error) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports a 403.
func (e *Error) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsNotFound reports a 404.
func (e *Error) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsValidation reports a 422 carrying field errors.
func (e *Error) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity && len(e.Fields) > 0
}

// IsServer reports a 5xx.
func (e *Error) IsServer() bool { return e.StatusCode >= 500 }

// FieldError returns the first validation message for field.
func (e *Error) FieldError(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// AsError unwraps err into an *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	e, ok := AsError(err)
	return ok && e.IsUnauthorized()
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.IsNotFound()
}

func decodeError(resp *http.Response, method, path string) *Error {
	e := &Error{Method: method, Path: path, StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(e); err != nil || e.Message == "" {
		e.Message = fallbackMessage
	}
	return e
}
