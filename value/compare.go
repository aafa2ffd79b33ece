package value

import (
	"cmp"
	"strings"
)

// Equal reports structural equality between a and b per spec §3: the
// variant must match, then contents must match (lists element-wise,
// dictionaries as equal multisets of (key, value) pairs).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NoneKind:
		return true
	case IntegerKind, TimespanKind:
		return a.i64 == b.i64
	case BooleanKind:
		return a.b == b.b
	case RealKind:
		return a.f64 == b.f64
	case URIKind, StringKind:
		return a.s == b.s
	case ListKind:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case DictionaryKind:
		return a.dict.equal(b.dict)
	default:
		return false
	}
}

// Compare defines the strict ordering from spec §3: lexicographically
// first by variant (discriminator) index, then by content. Dictionaries
// are compared entry by entry in insertion order.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case NoneKind:
		return 0
	case IntegerKind, TimespanKind:
		return cmp.Compare(a.i64, b.i64)
	case BooleanKind:
		return cmp.Compare(boolRank(a.b), boolRank(b.b))
	case RealKind:
		return cmp.Compare(a.f64, b.f64)
	case URIKind, StringKind:
		return strings.Compare(a.s, b.s)
	case ListKind:
		return compareLists(a.list, b.list)
	case DictionaryKind:
		return compareDictionaries(a.dict, b.dict)
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareLists(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareDictionaries(a, b *Dictionary) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		ak, av := a.entries[i].key, a.entries[i].val
		bk, bv := b.entries[i].key, b.entries[i].val
		if c := strings.Compare(ak, bk); c != 0 {
			return c
		}
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
