package client

import (
	"errors"
	"fmt"
)

// ValidationError is returned before any request is made when an argument
// breaks a client side precondition
type ValidationError struct {
	Field string
	Count int
	Limit int
}

func (e *ValidationError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("%s must not be empty", e.Field)
	}
	return fmt.Sprintf("the maximum number of %s is %d, got %d", e.Field, e.Limit, e.Count)
}

// TransportError is returned when the HTTP exchange itself failed
type TransportError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP error %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when the response body does not match the envelope
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: error decoding response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsDecode reports whether err is or wraps a *DecodeError.
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// CheckBatch validates the size of a batch of identifiers: it must hold at
// least one entry and no more than limit
func CheckBatch(field string, count, limit int) error {
	if count == 0 || count > limit {
		return &ValidationError{Field: field, Count: count, Limit: limit}
	}
	return nil
}
