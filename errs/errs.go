// Package errs defines the closed set of error kinds shared by the
// parser, coercion engine, and extraction bridge, per spec §7. Errors
// are values, not exceptions: the parser, coercion and extraction
// functions return errors whose concrete type is *errs.Error, so
// embedders can recover the Code with errors.As. The dotted-path
// accessors in package value and the confload loader return plain
// errors instead.
package errs

import (
	"errors"
	"fmt"
)

// Code is one member of the closed error-kind set from spec §7.
type Code int

const (
	// ConversionFailed is a coercion rejected for any reason: wrong
	// source variant, out-of-range narrowing, non-integral real, or an
	// unparseable string.
	ConversionFailed Code = iota
	// UnexpectedEOF means the parser ran out of input before completing
	// a production.
	UnexpectedEOF
	// UnexpectedCharacter means the parser saw a byte not permitted in
	// the current production.
	UnexpectedCharacter
	// TrailingCharacter means a value parsed cleanly but non-whitespace
	// input remained.
	TrailingCharacter
	// IntegerOverflow means a number literal exceeded 64-bit range.
	IntegerOverflow
	// InvalidEscapeSequence means a string escape was malformed.
	InvalidEscapeSequence
	// MissingField means the inspection bridge could not find a
	// required field.
	MissingField
)

var codeNames = [...]string{
	ConversionFailed:      "conversion_failed",
	UnexpectedEOF:         "unexpected_eof",
	UnexpectedCharacter:   "unexpected_character",
	TrailingCharacter:     "trailing_character",
	IntegerOverflow:       "integer_overflow",
	InvalidEscapeSequence: "invalid_escape_sequence",
	MissingField:          "missing_field",
}

func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(codeNames) {
		return "<unknown error code>"
	}
	return codeNames[c]
}

// Error is the structured error surfaced by every fallible confval
// operation: a closed-set Code plus a free-form message. Inspection
// bridge failures concatenate the failing field path with ".", per
// spec §7.
type Error struct {
	Code Code
	Msg  string
	Path string // dotted field path for inspection-bridge failures; empty otherwise
	wrap error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.wrap }

// New builds an *Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that also unwraps to cause, so callers can
// still errors.Is/As through to an underlying stdlib error (e.g. the
// strconv.NumError behind an integer_overflow).
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), wrap: cause}
}

// WithField returns a copy of e with field prepended to its Path,
// building up a dotted path as inspection-bridge failures propagate
// out of nested records.
func (e *Error) WithField(field string) *Error {
	cp := *e
	if cp.Path == "" {
		cp.Path = field
	} else {
		cp.Path = field + "." + cp.Path
	}
	return &cp
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}
