package value

import (
	"fmt"
	"strings"
)

// ErrNotFound is returned by GetPath when an intermediate or final key
// in a dotted path is absent.
var ErrNotFound = fmt.Errorf("not found")

// ErrNotADictionary is returned by SetPath when a dotted path needs to
// descend through a key that already holds a non-dictionary value.
var ErrNotADictionary = fmt.Errorf("not a dictionary")

// GetPath resolves a dotted key path such as "a.b.c" against d,
// traversing nested dictionaries. A missing intermediate key (or a
// non-dictionary value at an intermediate position) yields ErrNotFound,
// per spec §4.3.
func (d *Dictionary) GetPath(path string) (Value, error) {
	segs := strings.Split(path, ".")
	cur := d
	for i, seg := range segs {
		v, ok := cur.Get(seg)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if i == len(segs)-1 {
			return v, nil
		}
		if v.Kind() != DictionaryKind {
			return Value{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		cur = v.Dictionary()
	}
	return Value{}, fmt.Errorf("%w: %s", ErrNotFound, path)
}

// SetPath writes val at the dotted key path, creating intermediate
// dictionaries as needed. It is an error (ErrNotADictionary) if an
// existing non-dictionary value occupies an intermediate position.
func (d *Dictionary) SetPath(path string, val Value) error {
	segs := strings.Split(path, ".")
	cur := d
	for i, seg := range segs[:len(segs)-1] {
		existing, ok := cur.Get(seg)
		if !ok {
			nested := NewDictionary()
			cur.Set(seg, nested)
			existing, _ = cur.Get(seg)
		}
		if existing.Kind() != DictionaryKind {
			return fmt.Errorf("%w: %s at segment %q", ErrNotADictionary, path, strings.Join(segs[:i+1], "."))
		}
		cur = existing.Dictionary()
	}
	cur.Set(segs[len(segs)-1], val)
	return nil
}
