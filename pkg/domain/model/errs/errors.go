package errs

import (
	"errors"
	"net/http"
)

// Error codes returned in the body of API errors.
const (
	CodeForbidden     = "rest_forbidden"
	CodeInvalidJSON   = "rest_invalid_json"
	CodeInternalError = "rest_internal_error"
	CodeInsertFailed  = "db_insert_error"
)

// APIError is a structured error reported to API clients as JSON. It is
// written to the response body as is.
type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Data    APIErrorData `json:"data"`
}

type APIErrorData struct {
	Status int `json:"status"`
}

func NewAPIError(code, message string, status int) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Data:    APIErrorData{Status: status},
	}
}

func (x *APIError) Error() string {
	return x.Code + ": " + x.Message
}

// AsAPIError extracts APIError from the error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// InternalError is returned to clients for failures without a structured error
// so that internal details are not exposed.
func InternalError() *APIError {
	return NewAPIError(CodeInternalError, "Internal server error", http.StatusInternalServerError)
}
