package crossref

import (
	"errors"
	"fmt"
)

// Common errors returned by the Crossref client.
var (
	// ErrNotFound indicates the DOI was not found in Crossref.
	ErrNotFound = errors.New("work not found in Crossref")

	// ErrInvalidResponse indicates an unexpected API response shape.
	ErrInvalidResponse = errors.New("invalid response from Crossref")
)

// StatusError represents a non-success HTTP response from the Crossref API.
// Retrieval failures are surfaced immediately and never retried.
type StatusError struct {
	Code int
	DOI  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("crossref: unexpected status %d for DOI %s", e.Code, e.DOI)
}

// MissingFieldError indicates a required key was absent from the upstream
// payload. The message names the exact upstream key so failures can be
// debugged against the live schema.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("crossref: missing required field %q in work metadata", e.Field)
}

// UnsupportedTypeError indicates the declared work type has no extraction
// rules. Only strict dispatch produces it; permissive dispatch passes the
// raw payload through instead.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("crossref: unsupported work type %q", e.Type)
}

// IsNotFound returns true if the error indicates the DOI does not exist.
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
