package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures crossing the service boundary. Handlers fold
// the kind into the structured result so callers can branch without parsing
// messages.
type ErrorKind string

const (
	// KindValidation marks malformed caller input, rejected before storage.
	KindValidation ErrorKind = "validation"
	// KindNotFound marks an id-targeted mutation that matched no row.
	KindNotFound ErrorKind = "not_found"
	// KindStorage marks an underlying storage fault.
	KindStorage ErrorKind = "storage"
	// KindResourceUnavailable marks a missing or unreadable resource file.
	KindResourceUnavailable ErrorKind = "resource_unavailable"
)

// Error is the typed failure every service operation returns. It never
// crosses the dispatcher boundary as an uncaught fault; handlers convert it
// into a {success: false, ...} result.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed caller input.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports an id that matched no row.
func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStorageError wraps a storage fault.
func NewStorageError(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// NewResourceUnavailableError wraps a resource file read fault.
func NewResourceUnavailableError(message string, err error) *Error {
	return &Error{Kind: KindResourceUnavailable, Message: message, Err: err}
}

// KindOf returns the kind carried by err. Untyped faults count as storage
// errors.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStorage
}

// MessageOf returns the human-readable message carried by err.
func MessageOf(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return err.Error()
}
