// Package akerrors defines the shared error taxonomy used by the evaluator
// and the analyzer.
package akerrors

import (
	"fmt"
	"strings"
)

// Kind classifies a failure raised by the evaluator or the analyzer.
type Kind string

const (
	InvalidFormat       Kind = "INVALID_FORMAT"
	NotInScope          Kind = "NOT_IN_SCOPE"
	LeadingAtIdent      Kind = "LEADING_AT_IDENT"
	UnknownDefType      Kind = "UNKNOWN_DEF_TYPE"
	TypeError           Kind = "TYPE_ERROR"
	UndefinedIdentifier Kind = "UNDEFINED_IDENTIFIER"
	ArityMismatch       Kind = "ARITY_MISMATCH"
	Aborted             Kind = "ABORTED"
)

// Error is the common error message for both subsystems. It carries the
// path of identifiers traversed from the entry point to the failing node,
// mirroring the position carried by cue/errors.Error.
type Error struct {
	Kind Kind
	Msg  string
	path []string

	// Err is the underlying error that triggered this one, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(string(e.Kind))
	}
	if len(e.path) > 0 {
		fmt.Fprintf(&b, " (at %s)", strings.Join(e.path, "."))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Path reports the identifiers traversed from the entry point to the
// failing node, outermost first.
func (e *Error) Path() []string { return e.path }

// New creates an Error of the given kind with a path prefix.
func New(kind Kind, path []string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), path: path}
}

// Wrap attaches a path to an arbitrary error, preserving it as the cause.
func Wrap(kind Kind, path []string, err error) *Error {
	return &Error{Kind: kind, Msg: err.Error(), path: path, Err: err}
}

// WithPath returns a copy of err with ident prepended to its path, for
// building up a path as an error unwinds through nested definitions. Errors
// that are not *Error pass through unchanged.
func WithPath(err error, ident string) error {
	if e, ok := err.(*Error); ok {
		cp := *e
		cp.path = append([]string{ident}, cp.path...)
		return &cp
	}
	return err
}

// List aggregates multiple independent failures, e.g. from analyzeAll.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

func (l *List) Add(err *Error) { *l = append(*l, err) }

func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
