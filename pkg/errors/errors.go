package errors

import (
	"errors"
	"fmt"

	"github.com/jwalitptl/passcheck/pkg/password"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrBadRequest ErrorCode = iota + 1000
	ErrWeakPassword
	ErrInternal
)

// Password policy errors, one per rejected status
var (
	ErrTooShort      = errors.New("password too short")
	ErrNoLowercase   = errors.New("password has no lowercase letter")
	ErrNoUppercase   = errors.New("password has no uppercase letter")
	ErrNoDigit       = errors.New("password has no digit")
	ErrNoSpecialChar = errors.New("password has no special character")
)

// StatusError returns the sentinel for a rejected status, or nil when the status is Valid.
func StatusError(status password.Status) error {
	switch status {
	case password.Valid:
		return nil
	case password.TooShort:
		return ErrTooShort
	case password.NoLowercase:
		return ErrNoLowercase
	case password.NoUppercase:
		return ErrNoUppercase
	case password.NoDigit:
		return ErrNoDigit
	case password.NoSpecialChar:
		return ErrNoSpecialChar
	}
	return fmt.Errorf("unknown password status %s", status)
}

// WeakPassword wraps the error for a rejected status. It returns nil for a Valid status.
func WeakPassword(status password.Status) *AppError {
	err := StatusError(status)
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    ErrWeakPassword,
		Message: "password does not meet policy",
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return NewBadRequest(message, err)
}

func Internal(err error) *AppError {
	return NewInternal(err)
}

// CodeOf returns the code of the first AppError in err's chain, or 0.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return 0
}
