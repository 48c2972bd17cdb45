package openlibrary

import (
	"errors"
	"fmt"
)

// Common errors returned by the Open Library client.
var (
	// ErrNotFound indicates Open Library has no record for the ISBN.
	ErrNotFound = errors.New("book not found in Open Library")
)

// StatusError represents a non-success HTTP response from the Open Library
// API. Never retried.
type StatusError struct {
	Code int
	ISBN string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openlibrary: unexpected status %d for ISBN %s", e.Code, e.ISBN)
}

// MissingFieldError indicates a required key was absent from the upstream
// payload. The message names the exact upstream key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("openlibrary: missing required field %q in book details", e.Field)
}

// IsNotFound returns true if the error indicates the ISBN has no record.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == 404
}

// IsMissingField returns true if the error is a MissingFieldError, along
// with the missing field name.
func IsMissingField(err error) (string, bool) {
	var fieldErr *MissingFieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Field, true
	}
	return "", false
}
