package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates missing or malformed client input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the referenced resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the write collides with an existing row.
	ErrConflict = errors.New("conflict")
)

// Error carries a human readable message together with its kind. The kind is
// one of the sentinels above and is what the HTTP boundary matches on.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// BadRequestf builds an ErrValidation error.
func BadRequestf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds an ErrNotFound error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds an ErrConflict error.
func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Message returns the client facing message of err, falling back to the
// error string for plain errors.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
