package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure. The HTTP layer maps each kind to a fixed status code.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindForbidden  ErrorKind = "forbidden"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

// Error is a typed domain error carrying a kind and a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a domain error of the same kind, so that
// errors.Is(err, ErrNotFound) matches any not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrForbidden  = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "conflict"}
	ErrInternal   = &Error{Kind: KindInternal, Message: "internal error"}
)

// NewValidationError returns a validation error with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewForbiddenError returns a forbidden error with a formatted message.
func NewForbiddenError(format string, args ...any) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError returns a not-found error with a formatted message.
func NewNotFoundError(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError returns a conflict error with a formatted message.
func NewConflictError(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError returns an internal error with a formatted message.
func NewInternalError(format string, args ...any) error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first domain error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
