package token

import (
	"strconv"
	"strings"

	"github.com/tonylang/confval/errs"
)

// Unquote interprets the C-style escapes allowed inside a quoted string
// (spec §4.1): \n \t \\ \" \' \r and the hex escape \xHH. The input
// must not include the surrounding quote characters.
func Unquote(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", errs.New(errs.InvalidEscapeSequence, "dangling escape at end of string")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case 'x':
			if i+2 >= len(s) {
				return "", errs.New(errs.InvalidEscapeSequence, "incomplete hex escape \\x%s", s[i+1:])
			}
			hex := s[i+1 : i+3]
			v, err := strconv.ParseUint(hex, 16, 8)
			if err != nil {
				return "", errs.Wrap(errs.InvalidEscapeSequence, err, "invalid hex escape \\x%s", hex)
			}
			b.WriteByte(byte(v))
			i += 2
		default:
			return "", errs.New(errs.InvalidEscapeSequence, "unknown escape sequence \\%c", s[i])
		}
	}
	return b.String(), nil
}

// Quote renders v as a double-quoted string literal with the escapes
// Unquote understands. A top-level string is never re-escaped by
// ToString (spec §4.4's "string -> identity, no re-quoting"); the
// printers use Quote for every string element of a list or dictionary,
// and for dictionary keys that NeedsQuote reports.
func Quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 {
				b.WriteString("\\x")
				const hexDigits = "0123456789abcdef"
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isUnquotedTerminator reports whether r ends an unquoted string or
// identifier token (spec §4.1): whitespace, the list/dictionary
// separators, and the assignment/closing punctuation.
func isUnquotedTerminator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '=', ']', '}':
		return true
	}
	return false
}

// IsWhitespace reports whether r is insignificant whitespace between
// tokens (spec §4.1: free separator everywhere outside quoted strings).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// NeedsQuote reports whether v must be quoted to round-trip correctly
// as an unquoted token (spec §4.1): it is empty, starts with a digit
// or bracket/quote/whitespace character, equals a reserved literal
// (true/false/null), contains a terminator/comment-introducing
// character that would otherwise end the unquoted token early, or
// contains a '.' that would be read back as a dotted key-path
// separator rather than a literal character. coerce.dictionaryToString
// and print.renderColoredDictionary use this to decide whether a
// dictionary key must be re-quoted on output, so that a literal quoted key like "a.b" doesn't come back
// out as an unquoted `a.b` and silently turn into a nested path on the
// next parse.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	first := rune(v[0])
	if (first >= '0' && first <= '9') || first == '[' || first == '{' || first == '"' || first == '\'' || IsWhitespace(first) {
		return true
	}
	for _, r := range v {
		if isUnquotedTerminator(r) || r == '#' || r == '.' {
			return true
		}
	}
	if strings.Contains(v, "//") || strings.Contains(v, "/*") {
		return true
	}
	return false
}
