package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure shape carried in the response envelope. The
// predefined values below are kinds; handlers derive request specific copies
// with WithMessage or WrapKind and never mutate a kind directly.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Kinds exposed by the student API.
var (
	ErrInvalidStudent       = kind("INVALID_STUDENT", http.StatusBadRequest, "invalid student")
	ErrStudentAlreadyExists = kind("STUDENT_ALREADY_EXISTS", http.StatusConflict, "student already exists")
	ErrInvalidPagination    = kind("INVALID_PAGINATION", http.StatusBadRequest, "invalid pagination parameters")
	ErrInvalidPayload       = kind("INVALID_PAYLOAD", http.StatusBadRequest, "invalid payload")
	ErrNotFound             = kind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnavailable          = kind("SERVICE_UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrInternal             = kind("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

func kind(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors of the same kind, so errors.Is(err, ErrNotFound) holds
// for copies carrying a custom message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && e.Code == t.Code
}

// WithMessage returns a copy of e with its message replaced. An empty
// message keeps the kind's default.
func (e *Error) WithMessage(message string) *Error {
	if e == nil {
		return nil
	}
	c := *e
	if message != "" {
		c.Message = message
	}
	return &c
}

// WrapKind attaches cause to a copy of k.
func WrapKind(cause error, k *Error, message string) *Error {
	wrapped := k.WithMessage(message)
	if wrapped == nil {
		wrapped = ErrInternal.WithMessage(message)
	}
	wrapped.Err = cause
	return wrapped
}

// FromError normalises err into an *Error. Anything without a kind becomes
// ErrInternal with err kept as the cause and hidden from the client.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return WrapKind(err, ErrInternal, "")
}
