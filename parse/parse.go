// Package parse implements the text grammar from spec §4.1: the
// strict top-level Parse entry point and, in cli.go, the relaxed
// CLI-shortcut pre-pass from spec §4.2. It follows the teacher's
// recursive-descent, cursor-over-a-byte-range shape
// (go-tony/parse/parse.go's parseBalanced/noComments dispatch) but
// implements this grammar's own productions — '=' entries rather than
// ':', brace-or-indent-free dictionaries, dotted key expansion, and no
// YAML-style tags — rather than Tony's.
package parse

import (
	"strings"
	"unicode"

	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/token"
	"github.com/tonylang/confval/value"
)

// parser holds a read-only cursor over the input text.
type parser struct {
	s string
	i int
}

// Parse parses the full input string per spec §4.1's top-level
// contract: skip leading whitespace, parse one value, and require that
// only trailing whitespace remains. On any parser failure whose first
// non-whitespace byte is one of [ { " ' or a digit, the failure is
// surfaced verbatim; otherwise the whole input is returned unchanged as
// an unquoted string (the "unescaped fallback").
func Parse(input string) (value.Value, error) {
	p := &parser{s: input}
	p.skipWS()
	if p.eof() {
		return value.Value{}, errs.New(errs.UnexpectedEOF, "empty input")
	}
	start := p.i
	v, err := p.parseValue()
	if err == nil {
		p.skipWS()
		if p.eof() {
			return v, nil
		}
		err = errs.New(errs.TrailingCharacter, "trailing input starting at byte %d: %q", p.i, p.s[p.i:])
	}
	// Failure at the top level (either the value production itself
	// failed, or trailing non-whitespace remained): surface it verbatim
	// when the first significant byte clearly commits to a production,
	// otherwise fall back to treating the whole input as an unescaped
	// string (spec §4.1's top-level contract, steps 4-5).
	switch c := input[start]; {
	case c == '[' || c == '{' || c == '"' || c == '\'':
		return value.Value{}, err
	case unicode.IsDigit(rune(c)):
		return value.Value{}, err
	default:
		return value.NewString(input), nil
	}
}

func (p *parser) eof() bool { return p.i >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.i]
}

// skipWS consumes whitespace and comments (# and // to end of line, and
// non-nesting /* */ blocks), which are never significant outside
// quoted strings (spec §4.1).
func (p *parser) skipWS() {
	for !p.eof() {
		c := p.s[p.i]
		switch {
		case token.IsWhitespace(rune(c)):
			p.i++
		case c == '#':
			p.skipToEOL()
		case c == '/' && p.i+1 < len(p.s) && p.s[p.i+1] == '/':
			p.skipToEOL()
		case c == '/' && p.i+1 < len(p.s) && p.s[p.i+1] == '*':
			p.i += 2
			end := strings.Index(p.s[p.i:], "*/")
			if end < 0 {
				p.i = len(p.s)
				return
			}
			p.i += end + 2
		default:
			return
		}
	}
}

func (p *parser) skipToEOL() {
	idx := strings.IndexByte(p.s[p.i:], '\n')
	if idx < 0 {
		p.i = len(p.s)
		return
	}
	p.i += idx
}

// parseValue dispatches on the next significant byte to the matching
// production of spec §4.1.
func (p *parser) parseValue() (value.Value, error) {
	p.skipWS()
	if p.eof() {
		return value.Value{}, errs.New(errs.UnexpectedEOF, "expected a value")
	}
	switch c := p.peek(); {
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseDictionary()
	case c == '"' || c == '\'':
		return p.parseQuoted(c)
	case c >= '0' && c <= '9':
		return p.parseNumberLike()
	case (c == '+' || c == '-') && p.i+1 < len(p.s) && p.s[p.i+1] >= '0' && p.s[p.i+1] <= '9':
		return p.parseNumberLike()
	default:
		return p.parseWordOrUnquotedString()
	}
}

// parseWordOrUnquotedString handles true/false and the unquoted-string
// fallback production.
func (p *parser) parseWordOrUnquotedString() (value.Value, error) {
	start := p.i
	for !p.eof() && !isUnquotedEnd(p.s[p.i]) {
		p.i++
	}
	if p.i == start {
		return value.Value{}, errs.New(errs.UnexpectedCharacter, "unexpected character %q at byte %d", p.peek(), p.i)
	}
	word := p.s[start:p.i]
	switch word {
	case "true":
		return value.NewBoolean(true), nil
	case "false":
		return value.NewBoolean(false), nil
	default:
		return value.NewString(word), nil
	}
}

func isUnquotedEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '=', ']', '}':
		return true
	}
	return false
}

// parseQuoted parses a single- or double-quoted string literal,
// applying the C-style escapes from token.Unquote.
func (p *parser) parseQuoted(quote byte) (value.Value, error) {
	start := p.i
	p.i++ // consume opening quote
	var raw strings.Builder
	for {
		if p.eof() {
			return value.Value{}, errs.New(errs.UnexpectedEOF, "unterminated quoted string starting at byte %d", start)
		}
		c := p.s[p.i]
		if c == quote {
			p.i++
			break
		}
		if c == '\\' {
			raw.WriteByte(c)
			p.i++
			if p.eof() {
				return value.Value{}, errs.New(errs.UnexpectedEOF, "unterminated escape in quoted string starting at byte %d", start)
			}
			raw.WriteByte(p.s[p.i])
			p.i++
			continue
		}
		raw.WriteByte(c)
		p.i++
	}
	s, err := token.Unquote(raw.String())
	if err != nil {
		return value.Value{}, err
	}
	return value.NewString(s), nil
}

// parseNumberLike scans a sign-optional numeric run and its optional
// timespan suffix, then decides between integer, real, and timespan per
// spec §4.1.
func (p *parser) parseNumberLike() (value.Value, error) {
	start := p.i
	if p.peek() == '+' || p.peek() == '-' {
		p.i++
	}
	digitsStart := p.i
	p.scanDigitRun(digitsStart)
	if p.i == digitsStart {
		return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected digits at byte %d", p.i)
	}
	// Fractional part.
	if !p.eof() && p.s[p.i] == '.' {
		p.i++
		for !p.eof() && isASCIIDigit(p.s[p.i]) {
			p.i++
		}
	}
	// Exponent.
	if !p.eof() && (p.s[p.i] == 'e' || p.s[p.i] == 'E') {
		save := p.i
		p.i++
		if !p.eof() && (p.s[p.i] == '+' || p.s[p.i] == '-') {
			p.i++
		}
		expDigits := p.i
		for !p.eof() && isASCIIDigit(p.s[p.i]) {
			p.i++
		}
		if p.i == expDigits {
			p.i = save // not actually an exponent; leave it for the terminator check
		}
	}
	numText := p.s[start:p.i]

	// Timespan suffix immediately follows the number, with no separator.
	sufStart := p.i
	for !p.eof() && isASCIILetter(p.s[p.i]) {
		p.i++
	}
	if p.i > sufStart {
		suffix := p.s[sufStart:p.i]
		if _, ok := timespanFactor[suffix]; ok {
			d, err := token.ParseTimespan(numText + suffix)
			if err != nil {
				return value.Value{}, err
			}
			return value.NewTimespan(d), nil
		}
		// Not a timespan suffix: this is trailing garbage on a number,
		// e.g. "10msb". Roll the cursor back so the caller's
		// trailing-character check reports it precisely.
		p.i = sufStart
	}

	if isHexOrBinOrOctal(numText) || !token.LooksReal(numText) {
		n, err := token.ParseInteger(numText)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewInteger(n), nil
	}
	f, err := token.ParseReal(numText)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewReal(f), nil
}

func (p *parser) scanDigitRun(from int) {
	if from+1 < len(p.s) && p.s[from] == '0' && (p.s[from+1] == 'x' || p.s[from+1] == 'X' || p.s[from+1] == 'b' || p.s[from+1] == 'B') {
		p.i = from + 2
		for !p.eof() && isHexDigit(p.s[p.i]) {
			p.i++
		}
		return
	}
	p.i = from
	for !p.eof() && isASCIIDigit(p.s[p.i]) {
		p.i++
	}
}

func isHexOrBinOrOctal(s string) bool {
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X' || s[1] == 'b' || s[1] == 'B')
}

func isASCIIDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

var timespanFactor = map[string]struct{}{
	"ns": {}, "us": {}, "ms": {}, "s": {}, "min": {}, "h": {},
}

// parseList parses '[' value (',' value)* ','? ']'.
func (p *parser) parseList() (value.Value, error) {
	p.i++ // consume '['
	var items []value.Value
	p.skipWS()
	if !p.eof() && p.peek() == ']' {
		p.i++
		return value.NewList(items...), nil
	}
	for {
		p.skipWS()
		v, err := p.parseValue()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
		p.skipWS()
		if p.eof() {
			return value.Value{}, errs.New(errs.UnexpectedEOF, "unterminated list")
		}
		switch p.peek() {
		case ',':
			p.i++
			p.skipWS()
			if !p.eof() && p.peek() == ']' {
				p.i++
				return value.NewList(items...), nil
			}
		case ']':
			p.i++
			return value.NewList(items...), nil
		default:
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected ',' or ']' at byte %d, got %q", p.i, p.peek())
		}
	}
}

// parseDictionary parses '{' entry (',' entry)* ','? '}', where each
// entry is 'key = value' or the 'key { ... }' shorthand, and dotted key
// paths expand into nested dictionaries.
func (p *parser) parseDictionary() (value.Value, error) {
	p.i++ // consume '{'
	result := value.NewDictionary()
	dict := result.Dictionary()
	p.skipWS()
	if !p.eof() && p.peek() == '}' {
		p.i++
		return result, nil
	}
	for {
		p.skipWS()
		if p.eof() {
			return value.Value{}, errs.New(errs.UnexpectedEOF, "unterminated dictionary")
		}
		if p.peek() == '}' {
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected key, got '}' at byte %d", p.i)
		}
		key, quoted, err := p.parseKey()
		if err != nil {
			return value.Value{}, err
		}
		p.skipWS()
		var v value.Value
		switch {
		case !p.eof() && p.peek() == '{':
			v, err = p.parseDictionary()
		case !p.eof() && p.peek() == '=':
			p.i++
			v, err = p.parseValue()
		default:
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected '=' or '{' after key %q at byte %d", key, p.i)
		}
		if err != nil {
			return value.Value{}, err
		}
		// A quoted key is a literal segment, dots included; only an
		// unquoted key's dots expand into nested dictionaries.
		if quoted {
			dict.Set(key, v)
		} else if err := dict.SetPath(key, v); err != nil {
			return value.Value{}, errs.Wrap(errs.ConversionFailed, err, "cannot set dotted key %q", key)
		}
		p.skipWS()
		if p.eof() {
			return value.Value{}, errs.New(errs.UnexpectedEOF, "unterminated dictionary")
		}
		switch p.peek() {
		case ',':
			p.i++
			p.skipWS()
			if !p.eof() && p.peek() == '}' {
				p.i++
				return result, nil
			}
		case '}':
			p.i++
			return result, nil
		default:
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected ',' or '}' at byte %d, got %q", p.i, p.peek())
		}
	}
}

// parseKey parses a dictionary key: a quoted string (taken literally,
// dots included, never path-expanded) or an unquoted identifier that
// may contain dots meant as a path separator.
func (p *parser) parseKey() (key string, quoted bool, err error) {
	p.skipWS()
	if p.eof() {
		return "", false, errs.New(errs.UnexpectedEOF, "expected key")
	}
	if c := p.peek(); c == '"' || c == '\'' {
		v, err := p.parseQuoted(c)
		if err != nil {
			return "", false, err
		}
		s, _ := v.Str()
		return s, true, nil
	}
	start := p.i
	for !p.eof() && !isKeyEnd(p.s[p.i]) {
		p.i++
	}
	if p.i == start {
		return "", false, errs.New(errs.UnexpectedCharacter, "expected key at byte %d", p.i)
	}
	return p.s[start:p.i], false, nil
}

func isKeyEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '=', '{', ',', '}':
		return true
	}
	return false
}
