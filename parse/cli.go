package parse

import (
	"strings"

	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/value"
)

// TargetShape tells ParseCLI what kind of value the caller expects, so
// it can apply the matching relaxation from spec §4.2. The strict
// top-level Parse never applies these rules.
type TargetShape int

const (
	// ShapeAny applies no relaxation; ParseCLI behaves exactly like Parse.
	ShapeAny TargetShape = iota
	// ShapeList is a flat list target: outer brackets become optional.
	ShapeList
	// ShapeStringList is a list-of-string target: outer brackets and
	// per-element quoting both become optional.
	ShapeStringList
	// ShapeNestedList is a list-of-list target: the outermost brackets
	// become optional, but inner brackets stay mandatory.
	ShapeNestedList
)

// ParseCLI parses input under the relaxed CLI-shortcut grammar (spec
// §4.2), driven by shape. With ShapeAny it is identical to Parse.
func ParseCLI(input string, shape TargetShape) (value.Value, error) {
	switch shape {
	case ShapeList:
		return parseShortcutList(input, false)
	case ShapeStringList:
		return parseShortcutList(input, true)
	case ShapeNestedList:
		return parseShortcutNestedList(input)
	default:
		return Parse(input)
	}
}

// parseShortcutList implements "list target, outer brackets optional"
// and, when stringElems is set, "string target inside a list target,
// quotes optional" (spec §4.2).
func parseShortcutList(input string, stringElems bool) (value.Value, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "[") {
		return Parse(trimmed)
	}
	elems := splitTopLevelCommas(trimmed)
	items := make([]value.Value, 0, len(elems))
	for _, e := range elems {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if stringElems && !strings.HasPrefix(e, "\"") && !strings.HasPrefix(e, "'") {
			items = append(items, value.NewString(e))
			continue
		}
		v, err := Parse(e)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
	return value.NewList(items...), nil
}

// parseShortcutNestedList implements "nested-list target, outermost
// brackets optional" (spec §4.2): "[1,2],[3]" -> [[1,2],[3]]; with no
// inner bracket at all, the whole input is one inner list, e.g.
// "1,2,3" -> [[1,2,3]].
//
// Groups are always computed first via splitTopLevelCommaGroups, since
// a leading '[' does not mean the whole input is one bracketed value:
// "[1,2],[3]" starts with '[' but is two top-level groups, and handing
// that straight to strict Parse only consumes the first group and
// fails on the trailing ",[3]". The fully-bracketed case ("[1,2,3]" or
// "[[1,2],[3]]") is recognized by there being exactly one group that
// spans the entire trimmed input.
func parseShortcutNestedList(input string) (value.Value, error) {
	trimmed := strings.TrimSpace(input)
	groups := splitTopLevelCommaGroups(trimmed)

	if len(groups) == 1 && groups[0] == trimmed && strings.HasPrefix(trimmed, "[") {
		// Could be the fully-bracketed form "[[1,2],[3]]" or a single
		// inner list "[1,2,3]" passed with its own brackets but no outer
		// wrapping; Parse handles the former, and the latter is wrapped
		// below once we know it parsed to a flat list of non-lists.
		v, err := Parse(trimmed)
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind() != value.ListKind {
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "nested-list target requires a list")
		}
		if allInnerLists(v) {
			return v, nil
		}
		return value.NewList(v), nil
	}

	hasInnerBracket := false
	for _, g := range groups {
		if strings.Contains(g, "[") {
			hasInnerBracket = true
			break
		}
	}
	if !hasInnerBracket {
		inner, err := parseShortcutList(trimmed, false)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewList(inner), nil
	}
	items := make([]value.Value, 0, len(groups))
	for _, g := range groups {
		v, err := Parse(g)
		if err != nil {
			return value.Value{}, err
		}
		if v.Kind() != value.ListKind {
			return value.Value{}, errs.New(errs.UnexpectedCharacter, "expected an inner list in %q", g)
		}
		items = append(items, v)
	}
	return value.NewList(items...), nil
}

func allInnerLists(v value.Value) bool {
	for _, e := range v.ListElements() {
		if e.Kind() != value.ListKind {
			return false
		}
	}
	return true
}

// splitTopLevelCommas splits on commas that are not inside brackets or
// quotes, and tolerates a trailing comma (spec §4.2: "1,2,3," parses as
// "1,2,3").
func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// splitTopLevelCommaGroups splits on top-level commas that separate
// bracketed groups, e.g. "[1,2],[3]" -> ["[1,2]", "[3]"], trimming
// whitespace and dropping empty segments from a trailing comma.
func splitTopLevelCommaGroups(s string) []string {
	groups := splitTopLevelCommas(s)
	trimmed := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g != "" {
			trimmed = append(trimmed, g)
		}
	}
	return trimmed
}
