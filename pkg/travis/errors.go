package travis

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode failure sentinels. These are surfaced, wrapped with context, for
// every malformed or unexpectedly shaped response document.
var (
	ErrMalformedDocument    = errors.New("malformed response document")
	ErrMissingDiscriminator = errors.New("missing @type discriminator")
	ErrSchemaMismatch       = errors.New("payload does not match expected shape")
	ErrUnparseableLink      = errors.New("unparseable link")
	ErrUndecodableResponse  = errors.New("undecodable error response")
	ErrNoMoreItems          = errors.New("no more items")
)

// MissingFieldError reports a mandatory metadata key absent from a response
// document.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory field %q", e.Field)
}

// Error types returned by the service in structured error documents.
const (
	ErrorTypeNotFound           = "not_found"
	ErrorTypeLoginRequired      = "login_required"
	ErrorTypeInsufficientAccess = "insufficient_access"
	ErrorTypeMethodNotAllowed   = "method_not_allowed"
	ErrorTypeWrongParams        = "wrong_params"
	ErrorTypeServerError        = "server_error"
)

// APIError represents a structured error document returned by the API:
//
//	{"@type": "error", "error_type": "not_found", "error_message": "..."}
type APIError struct {
	ErrorType    string `json:"error_type"    yaml:"error_type"`
	ErrorMessage string `json:"error_message" yaml:"error_message"`
	StatusCode   int    `json:"-"             yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.ErrorType, e.ErrorMessage, e.StatusCode)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ErrorType == ErrorTypeNotFound
	}

	return false
}

// IsLoginRequired checks if the error signals a missing or rejected token.
func IsLoginRequired(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ErrorType == ErrorTypeLoginRequired
	}

	return false
}

// IsInsufficientAccess checks if the error is an authorization failure.
func IsInsufficientAccess(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.ErrorType == ErrorTypeInsufficientAccess
	}

	return false
}

// ParseErrorResponse decodes a structured error document. The returned error
// wraps ErrUndecodableResponse when the body is not a recognizable error
// document, so callers can fall back to a status-only error.
func ParseErrorResponse(data []byte, statusCode int) (*APIError, error) {
	var doc struct {
		Type         string `json:"@type"`
		ErrorType    string `json:"error_type"`
		ErrorMessage string `json:"error_message"`
	}

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodableResponse, err)
	}

	if doc.Type != "error" || doc.ErrorType == "" {
		return nil, fmt.Errorf("%w: not an error document", ErrUndecodableResponse)
	}

	return &APIError{
		ErrorType:    doc.ErrorType,
		ErrorMessage: doc.ErrorMessage,
		StatusCode:   statusCode,
	}, nil
}
