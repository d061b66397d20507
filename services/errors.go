package services

import (
	"errors"
)

// Error kinds. Controllers map each kind to one HTTP status.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// ServiceError carries a user-facing message plus the underlying cause.
// The cause never reaches the client.
type ServiceError struct {
	Kind    error
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Is(target error) bool {
	return target == e.Kind
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func validationError(msg string) error {
	return &ServiceError{Kind: ErrValidation, Message: msg}
}

func unauthorized(msg string) error {
	return &ServiceError{Kind: ErrUnauthorized, Message: msg}
}

func forbidden(msg string) error {
	return &ServiceError{Kind: ErrForbidden, Message: msg}
}

func notFound(msg string) error {
	return &ServiceError{Kind: ErrNotFound, Message: msg}
}

func conflict(msg string, err error) error {
	return &ServiceError{Kind: ErrConflict, Message: msg, Err: err}
}

func internal(msg string, err error) error {
	return &ServiceError{Kind: ErrInternal, Message: msg, Err: err}
}

// PublicMessage returns the text safe to show a client.
func PublicMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Terjadi kesalahan pada server"
}
