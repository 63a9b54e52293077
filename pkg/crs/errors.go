package crs

import (
	"errors"
	"fmt"
)

// ServiceError is returned when the service understood the request and
// answered with its structured diagnostic body {message, code, reason}.
type ServiceError struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
	Reason  string `json:"reason"  yaml:"reason"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Reason, e.Code, e.Message)
}

// GeneralError is returned for non-success responses without a structured
// JSON body, e.g. plain-text errors produced by intermediaries. Code is the
// HTTP status code and Message the raw response body.
type GeneralError struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
}

// Error implements the error interface.
func (e *GeneralError) Error() string {
	return fmt.Sprintf("(%d): %s", e.Code, e.Message)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrTokenRequired       = errors.New("API token is required")
	ErrMissingLocation     = errors.New("asynchronous response carries no Location header")
)

// IsServiceError checks if the error is a structured service error.
func IsServiceError(err error) bool {
	svcErr := &ServiceError{}

	return errors.As(err, &svcErr)
}

// IsNotFound checks if the error is a not-found service error.
func IsNotFound(err error) bool {
	svcErr := &ServiceError{}
	if errors.As(err, &svcErr) {
		return svcErr.Code == 404
	}

	genErr := &GeneralError{}
	if errors.As(err, &genErr) {
		return genErr.Code == 404
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	svcErr := &ServiceError{}
	if errors.As(err, &svcErr) {
		return svcErr.Code == 401
	}

	genErr := &GeneralError{}
	if errors.As(err, &genErr) {
		return genErr.Code == 401
	}

	return false
}
