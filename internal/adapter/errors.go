package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("remote document is malformed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("remote document is not loaded")
	ErrTooManyRequests     = errors.New("remote server is rate limiting requests")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)
