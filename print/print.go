// Package print implements the canonical printer (spec §4.4's
// to_string, C6), plus an optional ANSI colorizer for terminal output.
// The colorizer is keyed by (value.Kind, Attr) exactly as the
// teacher's encode.Colors keys by (ir.Type, ColorAttr) in
// encode_colors.go — a lookup table of per-kind color functions with a
// neutral default, rather than a big switch statement.
package print

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tonylang/confval/coerce"
	"github.com/tonylang/confval/token"
	"github.com/tonylang/confval/value"
)

// Attr distinguishes the role a token plays within a printed value, so
// the same Kind can be colored differently as a key versus a value.
type Attr int

const (
	AttrValue Attr = iota
	AttrKey
	AttrPunctuation
)

type colorable struct {
	Kind value.Kind
	Attr Attr
}

// Colors is a lookup table from (Kind, Attr) to an ANSI-wrapping
// SprintfFunc, with a neutral passthrough default.
type Colors struct {
	Default func(string, ...any) string
	byKind  map[colorable]func(string, ...any) string
}

// NewColors builds the default palette, one entry per variant that
// benefits from distinct coloring; kinds absent from the map fall
// back to Default (no color).
func NewColors() *Colors {
	c := &Colors{Default: passthrough, byKind: map[colorable]func(string, ...any) string{}}
	c.byKind[colorable{value.IntegerKind, AttrValue}] = color.New(color.FgCyan).SprintfFunc()
	c.byKind[colorable{value.RealKind, AttrValue}] = color.New(color.FgCyan).SprintfFunc()
	c.byKind[colorable{value.TimespanKind, AttrValue}] = color.New(color.FgMagenta).SprintfFunc()
	c.byKind[colorable{value.BooleanKind, AttrValue}] = color.New(color.FgYellow).SprintfFunc()
	c.byKind[colorable{value.NoneKind, AttrValue}] = color.New(color.FgHiBlack).SprintfFunc()
	c.byKind[colorable{value.StringKind, AttrValue}] = color.New(color.FgGreen).SprintfFunc()
	c.byKind[colorable{value.URIKind, AttrValue}] = color.New(color.FgGreen).SprintfFunc()
	c.byKind[colorable{value.DictionaryKind, AttrKey}] = color.New(color.FgBlue).SprintfFunc()
	c.byKind[colorable{value.ListKind, AttrPunctuation}] = color.New(color.FgHiBlack).SprintfFunc()
	c.byKind[colorable{value.DictionaryKind, AttrPunctuation}] = color.New(color.FgHiBlack).SprintfFunc()
	return c
}

func passthrough(s string, _ ...any) string { return s }

func (c *Colors) get(k value.Kind, a Attr) func(string, ...any) string {
	if f, ok := c.byKind[colorable{k, a}]; ok {
		return f
	}
	return c.Default
}

// Option configures Print.
type Option func(*options)

type options struct {
	colors  *Colors
	colored bool
}

// WithColor forces colorization on or off, overriding the
// isatty-based auto-detection Print otherwise applies.
func WithColor(enabled bool) Option {
	return func(o *options) { o.colored = enabled }
}

// WithColors supplies a custom palette.
func WithColors(c *Colors) Option {
	return func(o *options) { o.colors = c }
}

// Print writes v's canonical textual form (spec §4.4) to w, applying
// ANSI colorization when w is a terminal (auto-detected via
// mattn/go-isatty) unless overridden by WithColor.
func Print(w io.Writer, v value.Value, opts ...Option) error {
	o := &options{colors: NewColors(), colored: autoColor(w)}
	for _, opt := range opts {
		opt(o)
	}
	_, err := io.WriteString(w, render(v, o))
	return err
}

// String renders v's canonical form without colorization, identical
// to coerce.ToString — provided so callers that only need print's
// signature don't need to import coerce directly.
func String(v value.Value) string {
	return coerce.ToString(v)
}

func autoColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(v value.Value, o *options) string {
	if !o.colored {
		return coerce.ToString(v)
	}
	return renderColored(v, o)
}

func renderColored(v value.Value, o *options) string {
	switch v.Kind() {
	case value.ListKind:
		return renderColoredList(v.ListElements(), o)
	case value.DictionaryKind:
		return renderColoredDictionary(v.Dictionary(), o)
	default:
		f := o.colors.get(v.Kind(), AttrValue)
		return f(coerce.ToString(v))
	}
}

func renderColoredElement(v value.Value, o *options) string {
	if v.Kind() == value.StringKind {
		s, _ := v.Str()
		f := o.colors.get(value.StringKind, AttrValue)
		return f(token.Quote(s))
	}
	return renderColored(v, o)
}

func renderColoredList(elems []value.Value, o *options) string {
	punct := o.colors.get(value.ListKind, AttrPunctuation)
	var b strings.Builder
	b.WriteString(punct("["))
	for i, e := range elems {
		if i > 0 {
			b.WriteString(punct(", "))
		}
		b.WriteString(renderColoredElement(e, o))
	}
	b.WriteString(punct("]"))
	return b.String()
}

func renderColoredDictionary(d *value.Dictionary, o *options) string {
	punct := o.colors.get(value.DictionaryKind, AttrPunctuation)
	key := o.colors.get(value.DictionaryKind, AttrKey)
	var b strings.Builder
	b.WriteString(punct("{"))
	first := true
	d.Range(func(k string, val value.Value) bool {
		if !first {
			b.WriteString(punct(", "))
		}
		first = false
		if token.NeedsQuote(k) {
			b.WriteString(key(token.Quote(k)))
		} else {
			b.WriteString(key(k))
		}
		b.WriteString(punct(" = "))
		b.WriteString(renderColoredElement(val, o))
		return true
	})
	b.WriteString(punct("}"))
	return b.String()
}
