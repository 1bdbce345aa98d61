// Package domainerr classifies the failures of ledger operations so the HTTP
// layer can map them onto status codes without knowing where they came from.
package domainerr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation = errors.New("validation error")
	ErrReference  = errors.New("reference error")
	ErrConflict   = errors.New("conflict error")
	ErrNotFound   = errors.New("not found error")
	ErrFormat     = errors.New("format error")
	ErrStore      = errors.New("store error")
)

// Error is a classified failure. Message is safe to show to the caller;
// Err, when set, is the underlying cause and is only logged.
type Error struct {
	kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Is(target error) bool {
	return e.kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &Error{kind: ErrValidation, Message: message}
}

func Reference(message string) error {
	return &Error{kind: ErrReference, Message: message}
}

func Conflict(message string) error {
	return &Error{kind: ErrConflict, Message: message}
}

func NotFound(message string) error {
	return &Error{kind: ErrNotFound, Message: message}
}

func Format(message string, cause error) error {
	return &Error{kind: ErrFormat, Message: message, Err: cause}
}

// Store wraps an unexpected storage failure. Errors that are already
// classified pass through unchanged, as does nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return &Error{kind: ErrStore, Message: "error interno del servidor", Err: err}
}

// StatusCode maps err onto the HTTP status reported to the caller.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrReference),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing text of err.
func Message(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return "error interno del servidor"
}
