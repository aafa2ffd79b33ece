package cli

import (
	"github.com/tonylang/confval/parse"
	"github.com/tonylang/confval/value"
)

// shortcutValue is a pflag.Value implementing the §4.2 CLI-shortcut
// grammar for a flag whose target shape (plain list, list-of-string,
// or nested list) is known ahead of time, so bracket/quote noise can
// be dropped on the command line: --tags a,b,c instead of
// --tags '["a","b","c"]'.
type shortcutValue struct {
	shape  parse.TargetShape
	raw    string
	parsed value.Value
	set    bool
}

func newShortcutValue(shape parse.TargetShape) *shortcutValue {
	return &shortcutValue{shape: shape}
}

func (s *shortcutValue) String() string {
	if !s.set {
		return ""
	}
	return s.raw
}

func (s *shortcutValue) Set(text string) error {
	v, err := parse.ParseCLI(text, s.shape)
	if err != nil {
		return err
	}
	s.raw = text
	s.parsed = v
	s.set = true
	return nil
}

func (s *shortcutValue) Type() string {
	switch s.shape {
	case parse.ShapeStringList:
		return "stringList"
	case parse.ShapeNestedList:
		return "nestedList"
	default:
		return "list"
	}
}

func (s *shortcutValue) Value() value.Value { return s.parsed }
