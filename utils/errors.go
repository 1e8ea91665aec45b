package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries an HTTP status and a public message from the service
// layer to the handlers. Err, when set, is logged but never sent.
type AppError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so a wrapped copy still equals its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Wrap returns a copy of the sentinel carrying cause.
func (e *AppError) Wrap(cause error) *AppError {
	cp := *e
	cp.Err = cause
	return &cp
}

const ErrCodeInternal = "internal_server_error"

// Internal wraps an unexpected failure (usually the database) as a 500.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    ErrCodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}
