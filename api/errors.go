package api

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is returned for every non-2xx response.
type ResponseError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

// Unwrap returns the sentinel matching the status code.
func (e *ResponseError) Unwrap() error {
	return e.kind
}
