// Package apperr defines the error categories the CLI treats specially.
//
//	UserError    – missing or invalid user input (bad flag, unreadable biometrics).
//	               The CLI prints only the message. Exit code: 2.
//
//	ErrCancelled – the user interrupted a run (Ctrl-C during a batch).
//	               Exit code: 0.
//
// Model artifact failures are reported through model.ErrModelUnavailable.
// Everything else is a plain Go error wrapped with fmt.Errorf("context: %w", err).
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts a running operation.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}
