// Package apperrors defines the request-terminal error taxonomy shared by
// services and controllers. Every operation either fully succeeds or returns
// exactly one of these kinds; the HTTP layer owns the status-code mapping.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for status-code mapping.
type Kind int

const (
	// KindValidation covers missing or empty required fields.
	KindValidation Kind = iota
	// KindAuth covers bad credentials and missing/invalid/expired tokens.
	KindAuth
	// KindNotFound covers references to ids that do not exist.
	KindNotFound
	// KindConflict covers duplicate actions: already following, already
	// liked, email taken.
	KindConflict
)

// Error is a taxonomy error. It matches errors.Is against the sentinel for
// its kind so callers never need to compare messages.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == ""
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
)

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) error {
	return &Error{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind, reporting ok=false for errors outside
// the taxonomy (which the HTTP layer turns into a 500).
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
