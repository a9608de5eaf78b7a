// Copyright 2024 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the user-visible error conditions this package raises.
// ParseError is returned as an error value; the other kinds are raised as
// panics whose value is an *Error. Contract violations detected inside internal/mago or the accumulator's
// own bookkeeping are not Kind-tagged errors — they are panics, since they
// indicate a bug in this package or its caller rather than bad user input.
type Kind int

const (
	// DivisionByZero is raised by quotient/remainder operations when the
	// divisor is zero.
	DivisionByZero Kind = iota
	// NegativeModulus is raised by Mod, ModBigInt and NewModContext when
	// the modulus is zero or negative.
	NegativeModulus
	// NegativeArgument is raised for negative bit counts, bit indices and
	// bit-mask arguments, and by jacobiSymbol when its modulus is not odd
	// and positive.
	NegativeArgument
	// OutOfRange is raised by ToBinaryBytes when the requested length is
	// too short to hold the value.
	OutOfRange
	// ParseError is returned for malformed decimal or hexadecimal text.
	ParseError
)

func (k Kind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case NegativeModulus:
		return "negative modulus"
	case NegativeArgument:
		return "negative argument"
	case OutOfRange:
		return "out of range"
	case ParseError:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by this package's parse functions and
// used as the panic value for the other error kinds.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("bigint: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying cause, when present, to errors.Is, errors.As
// and errors.Unwrap. *Error has no Cause method, so
// github.com/pkg/errors.Cause stops at the *Error itself.
func (e *Error) Unwrap() error { return e.cause }

func newError(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// newParseErrorAt builds a ParseError carrying byte-offset context; the
// underlying cause is captured with pkg/errors, so a caller that unwraps
// the *Error and formats the cause with %+v gets a stack trace pointing at
// the exact parse failure. The *Error itself prints only its plain message.
func newParseErrorAt(pos int, format string, args ...interface{}) *Error {
	cause := errors.Errorf(format, args...)
	return &Error{Kind: ParseError, Msg: fmt.Sprintf("at byte %d: %v", pos, cause), cause: cause}
}

// invalidState panics to signal an internal consistency-check failure. It
// is never returned to callers: reaching this indicates a bug in this
// package, mirroring the teacher's own panic("underflow")-style contract
// checks in nat.go.
func invalidState(why string) {
	panic("bigint: invalid internal state: " + why)
}
