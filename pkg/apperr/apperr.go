// Package apperr carries the error kinds the data core reports to callers.
// The message text is display-oriented and not a stable contract; callers
// should branch on the kind only.
package apperr

import "errors"

type Kind uint8

const (
	// NotFound reports that a referenced category, product or order id does
	// not exist.
	NotFound Kind = iota + 1
	// Conflict reports an operation blocked by referential state, such as
	// deleting a category that products still use.
	Conflict
	// Validation reports malformed input rejected before touching storage.
	Validation
	// Storage reports a failure of the underlying persistence layer.
	Storage
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

// KindOf extracts the kind from any error in the chain, or 0 when the error
// did not originate here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
