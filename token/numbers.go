// Package token provides the lexical atoms shared by the parser and
// printer: integers, reals, timespans, quoted/unquoted strings, and the
// identifier and whitespace classes used to delimit them. It mirrors
// the teacher's token package (go-tony/token/numbers.go,
// go-tony/token/quoted.go) in spirit — classify first, convert second —
// but is rewritten against this grammar's own production rules (spec
// §4.1) rather than Tony/YAML's.
package token

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tonylang/confval/errs"
)

// ErrNumber is a sentinel for a numeric scan that finds no digits at
// all. No function in this package returns it: ParseInteger reports an
// empty literal as errs.UnexpectedCharacter.
var ErrNumber = errors.New("no digits")

// ParseInteger parses s as a signed 64-bit integer per spec §4.1:
// optional sign, then decimal, 0x/0X hex, 0b/0B binary, or a leading-0
// octal literal. Underscore digit separators are rejected even though
// Go's own integer-literal grammar permits them.
func ParseInteger(s string) (int64, error) {
	if s == "" {
		return 0, errs.New(errs.UnexpectedCharacter, "empty integer literal")
	}
	if strings.ContainsRune(s, '_') {
		return 0, errs.New(errs.UnexpectedCharacter, "underscore separators are not allowed in integer literal %q", s)
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, errs.Wrap(errs.IntegerOverflow, err, "integer literal %q out of range", s)
		}
		return 0, errs.Wrap(errs.UnexpectedCharacter, err, "invalid integer literal %q", s)
	}
	return n, nil
}

// ParseReal parses s as a 64-bit IEEE-754 real per spec §4.1. The
// caller (the parser) is responsible for deciding that s is real-shaped
// (contains '.' or an exponent) rather than a plain integer literal —
// ParseReal itself accepts any valid float text.
func ParseReal(s string) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, errs.New(errs.UnexpectedCharacter, "underscore separators are not allowed in real literal %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errs.Wrap(errs.UnexpectedCharacter, err, "invalid real literal %q", s)
	}
	return f, nil
}

// LooksReal reports whether the numeric text d (as scanned by the
// tokenizer; a leading sign does not affect the result) has a
// fractional part or exponent
// and should therefore be treated as a real literal rather than an
// integer. A bare "1." is real; a bare "1" is never real at parse time
// (spec §4.1).
func LooksReal(d string) bool {
	return strings.ContainsAny(d, ".eE")
}

// asciiDigits returns the length of the leading run of ASCII digits in d.
func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	return i
}
