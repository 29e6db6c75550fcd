// Package fault defines the typed business-rule failures shared by the
// service layer. Every rule violation carries a kind for the HTTP boundary
// and a human-readable reason naming the exact rule that failed.
package fault

import "errors"

type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindInvalidState    Kind = "invalid_state"
	KindConflict        Kind = "conflict"
	KindInvalidInput    Kind = "invalid_input"
)

// Error is a typed business-rule failure.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

func Forbidden(reason string) *Error    { return &Error{Kind: KindForbidden, Reason: reason} }
func NotFound(reason string) *Error     { return &Error{Kind: KindNotFound, Reason: reason} }
func InvalidState(reason string) *Error { return &Error{Kind: KindInvalidState, Reason: reason} }
func Conflict(reason string) *Error     { return &Error{Kind: KindConflict, Reason: reason} }
func InvalidInput(reason string) *Error { return &Error{Kind: KindInvalidInput, Reason: reason} }

// KindOf extracts the kind of err, or an empty kind if err is not a fault.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Is reports whether err is a fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
