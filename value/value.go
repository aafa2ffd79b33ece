// Package value implements the tagged-union configuration value at the
// heart of confval: a closed, nine-variant sum type used to carry
// application configuration obtained from text, flags, or programmatic
// construction.
//
// A Value is never mutated concurrently by design — see the package
// doc on [Value] for the full contract. Coercion and extraction of a
// Value into Go types live in the sibling coerce and extract packages;
// this package only owns the data model and its mutation primitives.
package value

import "time"

// Kind identifies which of the nine variants a Value currently holds.
// The order below is part of the public contract: TypeName and the
// ordering used by [Compare] both key off this index.
type Kind int

const (
	NoneKind Kind = iota
	IntegerKind
	BooleanKind
	RealKind
	TimespanKind
	URIKind
	StringKind
	ListKind
	DictionaryKind
)

var kindNames = [...]string{
	NoneKind:       "none",
	IntegerKind:    "integer",
	BooleanKind:    "boolean",
	RealKind:       "real",
	TimespanKind:   "timespan",
	URIKind:        "uri",
	StringKind:     "string",
	ListKind:       "list",
	DictionaryKind: "dictionary",
}

// TypeName returns the tag name for k, e.g. "integer" or "dictionary".
func (k Kind) TypeName() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

func (k Kind) String() string { return k.TypeName() }

// Value is a dynamically-typed configuration value. The zero Value is
// the none variant. A Value owns its contents; there is no sharing or
// interior mutation across goroutines, and concurrent mutation of a
// single Value is undefined — callers that fan a Value out across
// goroutines must copy it first (a plain Go assignment is a deep-enough
// copy for every variant except list/dictionary, whose backing storage
// stays shared between the copies; Clone makes an independent copy).
type Value struct {
	kind Kind

	i64 int64   // integer, timespan (nanoseconds)
	b   bool    // boolean
	f64 float64 // real
	s   string  // string, uri

	list []Value
	dict *Dictionary
}

// IsNone reports whether v holds the none variant (the default value).
func (v Value) IsNone() bool { return v.kind == NoneKind }

// Kind returns the variant currently held by v.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the tag name of the variant held by v.
func (v Value) TypeName() string { return v.kind.TypeName() }

// None constructs the none variant.
func None() Value { return Value{} }

// NewInteger constructs an integer variant.
func NewInteger(i int64) Value { return Value{kind: IntegerKind, i64: i} }

// NewBoolean constructs a boolean variant.
func NewBoolean(b bool) Value { return Value{kind: BooleanKind, b: b} }

// NewReal constructs a real (IEEE-754 double) variant.
func NewReal(f float64) Value { return Value{kind: RealKind, f64: f} }

// NewTimespan constructs a timespan variant from a nanosecond count.
func NewTimespan(d time.Duration) Value { return Value{kind: TimespanKind, i64: int64(d)} }

// NewURI constructs a uri variant. The text grammar never produces this
// variant directly (see spec §4.1); it exists for programmatic
// construction and for embedders that parse URIs themselves.
func NewURI(s string) Value { return Value{kind: URIKind, s: s} }

// NewString constructs a string variant.
func NewString(s string) Value { return Value{kind: StringKind, s: s} }

// NewList constructs a list variant from the given elements.
func NewList(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: ListKind, list: cp}
}

// NewDictionary constructs an empty dictionary variant.
func NewDictionary() Value {
	return Value{kind: DictionaryKind, dict: newDictionary()}
}

// Int returns the stored integer and true, or (0, false) if v does not
// hold the integer variant. This is a raw accessor; for coercion across
// variants use the coerce package's ToInteger.
func (v Value) Int() (int64, bool) {
	if v.kind != IntegerKind {
		return 0, false
	}
	return v.i64, true
}

// Bool returns the stored boolean and true, or (false, false) if v does
// not hold the boolean variant.
func (v Value) Bool() (bool, bool) {
	if v.kind != BooleanKind {
		return false, false
	}
	return v.b, true
}

// Float returns the stored real and true, or (0, false) if v does not
// hold the real variant.
func (v Value) Float() (float64, bool) {
	if v.kind != RealKind {
		return 0, false
	}
	return v.f64, true
}

// Duration returns the stored timespan and true, or (0, false) if v
// does not hold the timespan variant.
func (v Value) Duration() (time.Duration, bool) {
	if v.kind != TimespanKind {
		return 0, false
	}
	return time.Duration(v.i64), true
}

// Str returns the stored string and true, or ("", false) if v does not
// hold the string variant. Use URI for the uri variant.
func (v Value) Str() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// URI returns the stored URI text and true, or ("", false) if v does
// not hold the uri variant.
func (v Value) URI() (string, bool) {
	if v.kind != URIKind {
		return "", false
	}
	return v.s, true
}

// ListElements returns the live backing slice of a list-variant Value,
// or nil if v does not hold the list variant. Element mutation through
// the returned slice is visible on v; appending is not — use Append or
// ConvertToList for that.
func (v Value) ListElements() []Value {
	if v.kind != ListKind {
		return nil
	}
	return v.list
}

// Dictionary returns the live dictionary of a dictionary-variant Value,
// or nil if v does not hold the dictionary variant.
func (v Value) Dictionary() *Dictionary {
	if v.kind != DictionaryKind {
		return nil
	}
	return v.dict
}

// ConvertToList mutates v in place per spec §3:
//   - a list is left unchanged;
//   - none becomes an empty list;
//   - anything else becomes a single-element list wrapping the old value.
func (v *Value) ConvertToList() {
	switch v.kind {
	case ListKind:
		return
	case NoneKind:
		*v = Value{kind: ListKind, list: []Value{}}
	default:
		old := *v
		*v = Value{kind: ListKind, list: []Value{old}}
	}
}

// AsList calls ConvertToList and returns the resulting backing slice.
func (v *Value) AsList() []Value {
	v.ConvertToList()
	return v.list
}

// Append converts v to a list (per ConvertToList) and pushes x onto it.
func (v *Value) Append(x Value) {
	v.ConvertToList()
	v.list = append(v.list, x)
}

// AsDictionary replaces v with an empty dictionary if it does not
// already hold one, and returns the (possibly new) dictionary.
func (v *Value) AsDictionary() *Dictionary {
	if v.kind != DictionaryKind {
		*v = NewDictionary()
	}
	return v.dict
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case ListKind:
		cp := make([]Value, len(v.list))
		for i, e := range v.list {
			cp[i] = e.Clone()
		}
		return Value{kind: ListKind, list: cp}
	case DictionaryKind:
		return Value{kind: DictionaryKind, dict: v.dict.clone()}
	default:
		return v
	}
}
