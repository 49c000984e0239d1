// Package apperr defines the error taxonomy shared by startup code and request handlers.
// Every failure that crosses a package boundary is wrapped in an *Error carrying a Kind,
// so callers can decide how to react (abort startup, render a response) without string matching.
package apperr

import "errors"

// Kind classifies an error. It is a tagged enumeration: the HTTP layer currently maps
// every kind to 500, but keeping the kinds distinct lets that mapping grow later.
type Kind uint8

const (
	// KindInternal is the zero value, so errors that were never classified end up here.
	KindInternal Kind = iota
	// KindConfiguration means a required setting is missing or malformed. Fatal at startup.
	KindConfiguration
	// KindInfrastructure means the backing store (or another external resource) failed.
	KindInfrastructure
)

// String returns the lowercase name of the kind, used in log attributes.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "internal"
	}
}

// Error is a context-annotated error value. Msg describes what was being attempted,
// Err is the underlying cause (may be nil for errors created with New).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error renders the message followed by the cause chain, e.g.
// "failed to insert demo record: sql: database is closed".
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap annotates err with msg and kind. A nil err returns nil so it can be used inline:
//
//	return apperr.Wrap(apperr.KindInfrastructure, db.Ping(), "ping failed")
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of the outermost *Error in err's chain.
// Errors that carry no classification are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err (or anything it wraps) is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
