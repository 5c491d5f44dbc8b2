/*
Package run executes instruction words against a stack environment.  It owns
the dispatcher that routes each primitive to its handler, the function values
pushed by the front end, the inversion engine, and the concurrency units
created by spawn.
*/
package run

import (
	"fmt"

	"github.com/YoutacRandS-VA/uiua/value"
)

// Span locates a word in its source for error reports and trace output.
type Span struct {
	Line int
	Col  int
	Text string
}

func (s Span) String() string {
	if s.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Kind classifies a runtime error.
type Kind uint

// Possible Kind values
const (
	KindInvalid Kind = iota
	// KindUnderflow is a pop from a stack with too few values.
	KindUnderflow
	// KindType is a type or shape mismatch reported by an array kernel.
	KindType
	// KindUser is an error thrown by assert or a failed inverse match.
	KindUser
	// KindInversion means a function has no inverse or no under split.
	KindInversion
	// KindThread is a failure in or around a spawned unit.
	KindThread
)

var kindStrings = []string{
	KindInvalid:   "INVALID",
	KindUnderflow: "stack underflow",
	KindType:      "type mismatch",
	KindUser:      "user error",
	KindInversion: "inversion",
	KindThread:    "thread",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return kindStrings[KindInvalid]
	}
	return kindStrings[k]
}

// Error is a runtime failure carrying its classification and the span of the
// word that raised it.
type Error struct {
	Kind Kind
	Span Span
	msg  string
	// Payload holds the thrown value for user errors raised by assert.
	Payload *value.Val
	cause   error
}

func errorf(kind Kind, span Span, format string, v ...interface{}) *Error {
	return &Error{Kind: kind, Span: span, msg: fmt.Sprintf(format, v...)}
}

func (e *Error) Error() string {
	if e.Span.Line == 0 {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.Span, e.msg)
}

// Unwrap exposes the kernel error underlying a type mismatch.
func (e *Error) Unwrap() error { return e.cause }

// kernelErr converts an array kernel error into a runtime error at span.
// Errors that are already runtime errors pass through unchanged.
func kernelErr(err error, span Span) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	if verr, ok := err.(*value.Error); ok {
		return &Error{Kind: KindType, Span: span, msg: verr.Error(), cause: verr}
	}
	return &Error{Kind: KindType, Span: span, msg: err.Error(), cause: err}
}

// breakSignal unwinds n levels of enclosing loops.  It is not a failure; any
// loop that sees it either stops or rethrows it with a decremented count, and
// try lets it pass.
type breakSignal struct {
	n    int
	span Span
}

func (b breakSignal) Error() string {
	return fmt.Sprintf("%s: break outside of a loop", b.span)
}

// loopErr handles an error produced inside a loop body.  It reports stop for
// a break addressed to this loop and rethrows everything else, decrementing
// multi-level breaks.
func loopErr(err error) (stop bool, out error) {
	b, ok := err.(breakSignal)
	if !ok {
		return false, err
	}
	if b.n <= 1 {
		return true, nil
	}
	return false, breakSignal{n: b.n - 1, span: b.span}
}
