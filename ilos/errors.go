package ilos

import "errors"

// Sentinel errors, one per classification kind. Callers match them with
// errors.Is; the classification order lives in classify.
var (
	ErrTimeout      = errors.New("request timeout")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrUnknown      = errors.New("unknown error")
)

// User-facing message templates. The screens display these verbatim, so the
// wording is fixed.
const (
	MsgNetworkError = "Network connection error. Please check your internet connection."
	MsgServerError  = "Server error. Please try again later."
	MsgTimeoutError = "Request timeout. Please try again."
	MsgUnauthorized = "Unauthorized access. Please login again."
	MsgNotFound     = "Resource not found."
	MsgUnknownError = "An unknown error occurred. Please try again."
)

// APIError is the only error type client methods return. Kind is one of the
// sentinel errors above, Message is what the officer sees, Status is the HTTP
// status when a response was received, and Cause is the underlying transport
// or decode error kept for logging.
type APIError struct {
	Kind    error
	Message string
	Status  int
	Cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func (e *APIError) Is(target error) bool {
	return e.Kind == target
}

// BackendError is the error payload the ILOS backend returns alongside
// non-2xx statuses.
type BackendError struct {
	ErrorText string `json:"error"`
	Message   string `json:"message"`
}
