// Package serrors defines the error kinds shared by the lookup, equivalence and
// admission packages. Every failure in those packages is returned as a value
// carrying one of these kinds so that batch callers can skip a row and go on.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel category. Kinds are comparable and match with errors.Is.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new error kind with the given name.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound: a year or score is absent from a table.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrCompute: metadata needed for a computation (e.g. a year's quota) is missing.
	ErrCompute = NewKind("COMPUTE_ERROR")
	// ErrInvalidInput: a score, rank or option was rejected before any lookup.
	ErrInvalidInput = NewKind("INVALID_INPUT")
)

// Error carries a kind, an optional cause and a message.
//
// errors.Is(err, target) matches either the kind or anything in the cause chain,
// so a ComputeError wrapping a NotFound matches both kinds.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause.
func Wrap(k Kind, cause error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: cause, msg: fmt.Sprintf(msgFmt, args...)}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the first *Error found in err's chain, or nil.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}

// IsNotFound reports whether err carries ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsCompute reports whether err carries ErrCompute.
func IsCompute(err error) bool { return errors.Is(err, ErrCompute) }

// IsInvalidInput reports whether err carries ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }
