package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is a non-2xx response from the remote API.
// Message carries the remote "message" field when the body could be decoded;
// Body keeps the raw payload for callers that need more.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func NewAPIError(code int, message string, body []byte) error {
	return &APIError{StatusCode: code, Message: message, Body: body}
}

func (err APIError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", err.StatusCode, http.StatusText(err.StatusCode), err.Message)
	}
	return fmt.Sprintf("api: %d %s", err.StatusCode, http.StatusText(err.StatusCode))
}

// IsAPIError returns the APIError in err's cause chain, if any.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}

// ImportRowError describes why one spreadsheet row was rejected by the remote API.
type ImportRowError struct {
	Row       int                    `json:"row"`
	Attribute string                 `json:"attribute"`
	Errors    []string               `json:"errors"`
	Values    map[string]interface{} `json:"values"`
}

// ImportError is the structured 422 payload returned when an import file
// fails remote validation. It is surfaced verbatim so callers can render
// per-row errors; it must never be collapsed into a generic message.
type ImportError struct {
	Message string           `json:"message"`
	Rows    []ImportRowError `json:"errors"`
}

func (err ImportError) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return fmt.Sprintf("import rejected: %d invalid rows", len(err.Rows))
}

// IsImportError returns the ImportError in err's cause chain, if any.
func IsImportError(err error) (*ImportError, bool) {
	impErr, ok := errors.Cause(err).(*ImportError)
	return impErr, ok
}
