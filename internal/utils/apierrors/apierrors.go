package apierrors

import (
	"fmt"
	"net/http"
)

// Stable error codes surfaced to clients in the response envelope.
const (
	CodeInvalidContentType    = "INVALID_CONTENT_TYPE"
	CodeMissingBoundary       = "MISSING_BOUNDARY"
	CodeNoFileFound           = "NO_FILE_FOUND"
	CodeUnsupportedConversion = "UNSUPPORTED_CONVERSION"
	CodeInvalidFileFormat     = "INVALID_FILE_FORMAT"
	CodeRateLimitExceeded     = "RATE_LIMIT_EXCEEDED"
	CodeParsingError          = "PARSING_ERROR"
	CodeProcessingError       = "PROCESSING_ERROR"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Error is the typed error carried between layers. Status and Code map
// one-to-one onto the HTTP response; Err keeps the wrapped cause for logs.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a typed error with an explicit status.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap builds a typed error around a cause.
func Wrap(status int, code, message string, err error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: err}
}

// BadRequest builds a 400 error.
func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

// Internal builds a 500 error around a cause.
func Internal(code, message string, err error) *Error {
	return Wrap(http.StatusInternalServerError, code, message, err)
}
