// Package fwerr defines the framework's error taxonomy. Every failure that
// crosses a package boundary is one of these kinds, so test code can assert
// on the category without string matching.
package fwerr

import (
	"errors"
	"fmt"
	"time"
)

type Kind int

const (
	NotFound Kind = iota + 1
	InvalidArgument
	Timeout
	PartialSelection
	UnsupportedBrowser
	FrameSwitch
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case InvalidArgument:
		return "invalid argument"
	case Timeout:
		return "timeout"
	case PartialSelection:
		return "partial selection"
	case UnsupportedBrowser:
		return "unsupported browser"
	case FrameSwitch:
		return "frame switch"
	default:
		return "unknown"
	}
}

// Error carries the failure kind plus whatever diagnostics the operation
// had on hand. Selector and Budget are set by the wait/lookup paths.
type Error struct {
	Kind     Kind
	Op       string
	Message  string
	Selector string
	Budget   time.Duration
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Message)
	if e.Selector != "" {
		msg += fmt.Sprintf(" (selector %s)", e.Selector)
	}
	if e.Budget > 0 {
		msg += fmt.Sprintf(" (after %s)", e.Budget)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// WithSelector attaches the locator the operation was working on.
func (e *Error) WithSelector(selector string) *Error {
	e.Selector = selector
	return e
}

// WithBudget attaches the wait budget that was exhausted.
func (e *Error) WithBudget(budget time.Duration) *Error {
	e.Budget = budget
	return e
}

// IsKind reports whether err or anything it wraps is a framework error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}
