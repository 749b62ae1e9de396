package api

import "net/http"

// ErrorKind tags the category of a request error.
type ErrorKind string

const (
	// ErrMissingParam means the client omitted a required field.
	ErrMissingParam ErrorKind = "missing_param"
	// ErrInvalidParam means a supplied field value failed validation.
	ErrInvalidParam ErrorKind = "invalid_param"
	// ErrServerFailure means an internal collaborator failed; no detail
	// is exposed to the client.
	ErrServerFailure ErrorKind = "server_failure"
)

// RequestError is the JSON error body for failed issuance requests.
// It is a comparable value type: two errors with the same kind and
// param are equal.
type RequestError struct {
	Kind    ErrorKind `json:"code"`
	Param   string    `json:"param,omitempty"`
	Message string    `json:"error"`
}

// NewMissingParamError reports an absent or empty required field.
func NewMissingParamError(param string) RequestError {
	return RequestError{
		Kind:    ErrMissingParam,
		Param:   param,
		Message: "missing param: " + param,
	}
}

// NewInvalidParamError reports a field that failed validation.
func NewInvalidParamError(param string) RequestError {
	return RequestError{
		Kind:    ErrInvalidParam,
		Param:   param,
		Message: "invalid param: " + param,
	}
}

// NewServerError reports an internal failure without leaking its cause.
func NewServerError() RequestError {
	return RequestError{
		Kind:    ErrServerFailure,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// Error makes RequestError usable as an error value.
func (e RequestError) Error() string {
	return e.Message
}

// StatusCode maps the error kind to its HTTP status.
func (e RequestError) StatusCode() int {
	if e.Kind == ErrServerFailure {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
