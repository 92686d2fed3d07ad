package web

import (
	"errors"
	"net/http"
)

// Set of error variables for returning on operations.
var (
	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("not found")
	ErrAuthenticationFailure = errors.New("authentication failed")
	ErrForbidden             = errors.New("attempted action is not allowed")
	ErrInternalServerError   = errors.New("internal server error")
	ErrUnauthorized          = errors.New("Unauthorized")
)

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (err *Error) Error() string {
	return err.Err.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (err *Error) Unwrap() error {
	return err.Err
}

// shutdown is a type used to help with the graceful termination of the service.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// Error is the implementation of the error interface.
func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown checks to see if the shutdown error is contained
// in the specified error value.
func IsShutdown(err error) bool {
	var s *shutdown
	return errors.As(err, &s)
}

// ErrorMapping pairs a domain error with the status it is answered with.
type ErrorMapping struct {
	Err    error
	Status int
}

// TranslateError wraps err with the status of the first mapping it matches
// (errors.Is), falling back to the framework errors and finally to 500.
// This function should be used only inside handlers.
func TranslateError(err error, mappings ...ErrorMapping) error {
	if err == nil {
		return nil
	}

	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			return NewRequestError(err, m.Status)
		}
	}

	switch {
	case errors.Is(err, ErrBadRequest):
		return NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		return NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, ErrAuthenticationFailure), errors.Is(err, ErrUnauthorized):
		return NewRequestError(err, http.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		return NewRequestError(err, http.StatusForbidden)
	}

	return NewRequestError(err, http.StatusInternalServerError)
}
