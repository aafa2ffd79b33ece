package value

import "fmt"

// entry is one key/value pair of a Dictionary, kept in insertion order.
type entry struct {
	key string
	val Value
}

// Dictionary is an ordered string-keyed mapping of Values. Iteration
// order equals insertion order at the top level, satisfying the
// round-trip property assumed by spec §8 item 1 for flat dictionaries
// (see SPEC_FULL.md §7 on the open question this resolves).
type Dictionary struct {
	entries []entry
	index   map[string]int
}

func newDictionary() *Dictionary {
	return &Dictionary{index: map[string]int{}}
}

// Len returns the number of top-level keys.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

// Get returns the value stored at key and true, or the none Value and
// false if key is absent. This is a single-level lookup; for dotted
// paths see GetPath in dotpath.go.
func (d *Dictionary) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Value{}, false
	}
	return d.entries[i].val, true
}

// Set inserts or overwrites key with val, preserving the position of an
// existing key and appending new keys at the end.
func (d *Dictionary) Set(key string, val Value) {
	if i, ok := d.index[key]; ok {
		d.entries[i].val = val
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, entry{key: key, val: val})
}

// Delete removes key if present.
func (d *Dictionary) Delete(key string) {
	i, ok := d.index[key]
	if !ok {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, key)
	for k, idx := range d.index {
		if idx > i {
			d.index[k] = idx - 1
		}
	}
}

// Range calls f for each entry in insertion order, stopping early if f
// returns false.
func (d *Dictionary) Range(f func(key string, val Value) bool) {
	if d == nil {
		return
	}
	for _, e := range d.entries {
		if !f(e.key, e.val) {
			return
		}
	}
}

func (d *Dictionary) clone() *Dictionary {
	if d == nil {
		return newDictionary()
	}
	cp := &Dictionary{
		entries: make([]entry, len(d.entries)),
		index:   make(map[string]int, len(d.index)),
	}
	for i, e := range d.entries {
		cp.entries[i] = entry{key: e.key, val: e.val.Clone()}
		cp.index[e.key] = i
	}
	return cp
}

// equal reports structural equality between two dictionaries: same set
// of (key, value) pairs, order independent, per spec §3's "equal
// multisets of (key, value) pairs" rule.
func (d *Dictionary) equal(o *Dictionary) bool {
	if d.Len() != o.Len() {
		return false
	}
	eq := true
	d.Range(func(k string, v Value) bool {
		ov, ok := o.Get(k)
		if !ok || !Equal(v, ov) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("dictionary(%d keys)", d.Len())
}
