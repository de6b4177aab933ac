package github

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ResponseCode is a coarse classification of a non-success HTTP status.
type ResponseCode string

const (
	ResponseCodeBadRequest    ResponseCode = "BAD_REQUEST"
	ResponseCodeUnauthorized  ResponseCode = "UNAUTHORIZED"
	ResponseCodeForbidden     ResponseCode = "FORBIDDEN"
	ResponseCodeNotFound      ResponseCode = "NOT_FOUND"
	ResponseCodeConflict      ResponseCode = "CONFLICT"
	ResponseCodeUnprocessable ResponseCode = "UNPROCESSABLE"
	ResponseCodeServerError   ResponseCode = "SERVER_ERROR"
	ResponseCodeUnknown       ResponseCode = "UNKNOWN"
)

func responseCodeForStatus(status int) ResponseCode {
	switch {
	case status == 400:
		return ResponseCodeBadRequest
	case status == 401:
		return ResponseCodeUnauthorized
	case status == 403:
		return ResponseCodeForbidden
	case status == 404:
		return ResponseCodeNotFound
	case status == 409:
		return ResponseCodeConflict
	case status == 422:
		return ResponseCodeUnprocessable
	case status >= 500:
		return ResponseCodeServerError
	default:
		return ResponseCodeUnknown
	}
}

// ApiError is any non-2xx response from the API. The raw body is always
// preserved; Message and DocumentationURL are filled on a best-effort
// basis from the conventional {message, documentation_url} envelope.
type ApiError struct {
	HTTPCode         int
	Code             ResponseCode
	Method           string
	Path             string
	RawBody          []byte
	Message          string
	DocumentationURL string
}

func (e *ApiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.HTTPCode, e.Code, e.Message)
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.HTTPCode, e.Code)
}

func (e *ApiError) NotFound() bool {
	return e.Code == ResponseCodeNotFound
}

// errorFromResponse decodes a failed exchange into an ApiError. A body
// that is not the conventional envelope, or not JSON at all, still
// produces an ApiError carrying the raw bytes.
func errorFromResponse(method, path string, r *Response) *ApiError {
	parsed := gjson.ParseBytes(r.Body)

	return &ApiError{
		HTTPCode:         r.StatusCode,
		Code:             responseCodeForStatus(r.StatusCode),
		Method:           method,
		Path:             path,
		RawBody:          r.Body,
		Message:          parsed.Get("message").String(),
		DocumentationURL: parsed.Get("documentation_url").String(),
	}
}

// ValidationError means the caller's input violates a domain rule, or
// the requested resource is confirmed absent where absence is
// user-actionable. Cause holds the underlying ApiError when one exists.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is a 2xx body that does not match the expected
// entity shape. Field and Value are set when a single field (such as an
// enumerated token) is the offender.
type MalformedResponseError struct {
	Entity string
	Field  string
	Value  string
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf(
			"malformed %s response: field %q has unrecognized value %q",
			e.Entity, e.Field, e.Value,
		)
	}

	return fmt.Sprintf("malformed %s response: %v", e.Entity, e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// TransportError means the exchange itself could not be completed.
// It is opaque to this layer and never retried.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
