package errors

import (
	"errors"
	"fmt"
)

// Kind classifies every failure Callboard absorbs.
type Kind string

const (
	// A required identifier or credential is not configured.
	KindMissingConfig Kind = "missing_config"
	// A third-party endpoint failed, answered non-2xx or returned an unusable body.
	KindRemote Kind = "remote"
	// Required inbound fields are absent.
	KindValidation Kind = "validation"
	// Anything else.
	KindInternal Kind = "internal"
)

// Error is the structured error passed between service layers.
// It is only turned into a string when a response body gets written.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error is required by the error interface.
func (e Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// MissingConfig reports an absent identifier or credential.
func MissingConfig(msg string) Error {
	return Error{Kind: KindMissingConfig, Message: msg}
}

// Remote wraps a third-party failure.
func Remote(cause error, msg string) Error {
	return Error{Kind: KindRemote, Message: msg, Cause: cause}
}

// Validation reports missing inbound fields.
func Validation(msg string) Error {
	return Error{Kind: KindValidation, Message: msg}
}

// Internal wraps an unexpected failure.
func Internal(cause error) Error {
	return Error{Kind: KindInternal, Message: "internal error", Cause: cause}
}

// KindOf returns the Kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
