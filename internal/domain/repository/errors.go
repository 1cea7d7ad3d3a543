package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrTransportUnavailable = errors.New("record store unavailable")
)

// FieldError is a store-side validation message for a single field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RecordFailure describes one rejected record of a batch write
type RecordFailure struct {
	Index   int          `json:"index"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (f RecordFailure) String() string {
	parts := make([]string, 0, len(f.Errors)+1)
	if f.Message != "" {
		parts = append(parts, f.Message)
	}
	for _, e := range f.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("record %d rejected", f.Index)
	}
	return strings.Join(parts, "; ")
}

// ValidationError is returned when the store rejected every record of a write
type ValidationError struct {
	Failures []RecordFailure
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		messages = append(messages, f.String())
	}
	return "validation failed: " + strings.Join(messages, " | ")
}

// BatchResult is the outcome of a best-effort batch write
type BatchResult[T any] struct {
	Records  []T
	Failures []RecordFailure
}

// Partial reports whether some but not all records were rejected
func (r *BatchResult[T]) Partial() bool {
	return len(r.Records) > 0 && len(r.Failures) > 0
}
