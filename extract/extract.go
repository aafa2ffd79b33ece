// Package extract implements spec §4.5's generic get_as<T> extraction
// protocol and §4.6's inspection-protocol bridge. It follows the
// reflect-driven dispatch idiom encoding/json and encoding/gob use for
// the same problem (a single generic entry point backed by a
// recursive, kind-switching reflect walk) rather than hand-writing one
// case per concrete Go type, since spec §4.5 enumerates its cases by
// structural shape (container-of, map-to, tuple-of, record) rather
// than by fixed type list.
package extract

import (
	"math"
	"reflect"
	"time"

	"github.com/tonylang/confval/coerce"
	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/value"
)

// URI is the Go extraction target for spec's uri variant, which (per
// spec §4.1) has no dedicated coercion rule: only an actual URIKind
// value.Value extracts into it.
type URI string

// Field describes one member of a record advertising the inspection
// protocol (spec §4.6). Slot must be a pointer to the field, e.g.
// &r.Name — the same pointer serves both Build (write field into
// Value) and GetAs (read Value into field), mirroring how
// encoding/gob and the flag package register addressable fields.
type Field struct {
	Name     string
	Slot     any
	Optional bool
}

// Inspectable is a user record type that can describe its fields for
// the inspection bridge (spec §4.6).
type Inspectable interface {
	ConfigFields() []Field
}

var valueType = reflect.TypeOf(value.Value{})
var uriType = reflect.TypeOf(URI(""))
var durationType = reflect.TypeOf(time.Duration(0))
var emptyStructType = reflect.TypeOf(struct{}{})

// GetAs extracts a T from v per spec §4.5. It returns a structured
// *errs.Error (via errs.Is) on any failure; on error the zero T is
// returned.
func GetAs[T any](v value.Value) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if err := extractInto(rv, v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// GetAsEnum extracts a string-mapped enumeration (spec §4.5 case 8):
// to_string(v) is looked up in names, and an unmapped name fails. Go
// has no runtime-discoverable enum metadata, so the caller supplies
// the name table explicitly — the idiomatic equivalent of the
// spec's "type advertises a string-name mapping".
func GetAsEnum[T comparable](v value.Value, names map[string]T) (T, error) {
	var zero T
	s := coerce.ToString(v)
	t, ok := names[s]
	if !ok {
		return zero, errs.New(errs.ConversionFailed, "unknown enumerator %q", s)
	}
	return t, nil
}

func extractInto(dst reflect.Value, v value.Value) error {
	if dst.Type() == valueType {
		dst.Set(reflect.ValueOf(v))
		return nil
	}
	if dst.Type() == uriType {
		s, ok := v.URI()
		if !ok {
			return errs.New(errs.ConversionFailed, "cannot convert %s to uri", v.TypeName())
		}
		dst.SetString(s)
		return nil
	}
	if dst.Type() == durationType {
		d, err := coerce.ToTimespan(v)
		if err != nil {
			return err
		}
		dst.SetInt(int64(d))
		return nil
	}

	switch dst.Kind() {
	case reflect.Bool:
		b, err := coerce.ToBoolean(v)
		if err != nil {
			return err
		}
		dst.SetBool(b)
		return nil

	case reflect.String:
		dst.SetString(coerce.ToString(v))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := dst.Type().Bits()
		bounds := signedBounds(bits)
		n, err := coerce.ToNarrowInteger(v, bounds)
		if err != nil {
			return err
		}
		dst.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := dst.Type().Bits()
		bounds := unsignedBounds(bits)
		n, err := coerce.ToNarrowInteger(v, bounds)
		if err != nil {
			return err
		}
		dst.SetUint(uint64(n))
		return nil

	case reflect.Float64:
		f, err := coerce.ToReal(v)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
		return nil

	case reflect.Float32:
		f, err := coerce.ToFloat32(v)
		if err != nil {
			return err
		}
		dst.SetFloat(float64(f))
		return nil

	case reflect.Slice:
		return extractSlice(dst, v)

	case reflect.Array:
		return extractArray(dst, v)

	case reflect.Map:
		return extractMap(dst, v)

	case reflect.Ptr:
		elem := reflect.New(dst.Type().Elem())
		if err := extractInto(elem.Elem(), v); err != nil {
			return err
		}
		dst.Set(elem)
		return nil

	case reflect.Struct:
		return extractStruct(dst, v)

	default:
		return errs.New(errs.ConversionFailed, "unsupported extraction target %s", dst.Type())
	}
}

// extractSlice implements spec §4.5 case 4: a sequence container over
// U, built from to_list with a positional get_as<U> on each element.
func extractSlice(dst reflect.Value, v value.Value) error {
	elems, err := coerce.ToList(v)
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
	for i, e := range elems {
		if err := extractInto(out.Index(i), e); err != nil {
			return err
		}
	}
	dst.Set(out)
	return nil
}

// extractArray implements the fixed-size tuple case (spec §4.5 case 6)
// for the common, idiomatic-Go case of a homogeneous tuple: a Go
// array's element type is necessarily uniform, so a heterogeneous
// tuple should instead use a record type through the inspection
// bridge (extractStruct) — see DESIGN.md.
func extractArray(dst reflect.Value, v value.Value) error {
	elems, err := coerce.ToList(v)
	if err != nil {
		return err
	}
	if len(elems) != dst.Len() {
		return errs.New(errs.ConversionFailed, "expected %d elements, got %d", dst.Len(), len(elems))
	}
	for i, e := range elems {
		if err := extractInto(dst.Index(i), e); err != nil {
			return err
		}
	}
	return nil
}

// extractMap implements spec §4.5 cases 4 and 5: a map with an
// empty-struct element type is a set (built from to_list, membership
// only); any other map is the associative-container case (built from
// to_dictionary, string keys only).
func extractMap(dst reflect.Value, v value.Value) error {
	if dst.Type().Elem() == emptyStructType {
		elems, err := coerce.ToList(v)
		if err != nil {
			return err
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(elems))
		for _, e := range elems {
			key := reflect.New(dst.Type().Key()).Elem()
			if err := extractInto(key, e); err != nil {
				return err
			}
			out.SetMapIndex(key, reflect.ValueOf(struct{}{}))
		}
		dst.Set(out)
		return nil
	}

	if dst.Type().Key().Kind() != reflect.String {
		return errs.New(errs.ConversionFailed, "map extraction requires a string key, got %s", dst.Type().Key())
	}
	d, err := coerce.ToDictionary(v)
	if err != nil {
		return err
	}
	out := reflect.MakeMapWithSize(dst.Type(), d.Len())
	var walkErr error
	d.Range(func(key string, val value.Value) bool {
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := extractInto(elem, val); err != nil {
			if fe, ok := err.(*errs.Error); ok {
				walkErr = fe.WithField(key)
			} else {
				walkErr = err
			}
			return false
		}
		out.SetMapIndex(reflect.ValueOf(key).Convert(dst.Type().Key()), elem)
		return true
	})
	if walkErr != nil {
		return walkErr
	}
	dst.Set(out)
	return nil
}

// extractStruct implements the inspection-protocol bridge (spec §4.6)
// for any struct pointer implementing Inspectable.
func extractStruct(dst reflect.Value, v value.Value) error {
	insp, ok := dst.Addr().Interface().(Inspectable)
	if !ok {
		return errs.New(errs.ConversionFailed, "%s does not implement the inspection protocol", dst.Type())
	}
	d, err := coerce.ToDictionary(v)
	if err != nil {
		return err
	}
	for _, f := range insp.ConfigFields() {
		fv, ok := d.Get(f.Name)
		if !ok {
			if f.Optional {
				continue
			}
			return errs.New(errs.MissingField, "missing field %q", f.Name).WithField(f.Name)
		}
		slot := reflect.ValueOf(f.Slot)
		if slot.Kind() != reflect.Ptr {
			return errs.New(errs.ConversionFailed, "field %q slot must be a pointer", f.Name)
		}
		if err := extractInto(slot.Elem(), fv); err != nil {
			if fe, ok := err.(*errs.Error); ok {
				return fe.WithField(f.Name)
			}
			return err
		}
	}
	return nil
}

// Build writes a record into a Value, the mirror of GetAs's struct
// case (spec §4.6): the bridge produces a dictionary with one entry
// per declared field, converting each field's current value to a
// Value via the same rules extraction reads it back with.
func Build(insp Inspectable) value.Value {
	result := value.NewDictionary()
	d := result.Dictionary()
	for _, f := range insp.ConfigFields() {
		slot := reflect.ValueOf(f.Slot)
		if slot.Kind() == reflect.Ptr {
			slot = slot.Elem()
		}
		d.Set(f.Name, buildValue(slot))
	}
	return result
}

func buildValue(rv reflect.Value) value.Value {
	if rv.Type() == valueType {
		return rv.Interface().(value.Value)
	}
	if rv.Type() == uriType {
		return value.NewURI(string(rv.Interface().(URI)))
	}
	if rv.Type() == durationType {
		return value.NewTimespan(rv.Interface().(time.Duration))
	}
	switch rv.Kind() {
	case reflect.Bool:
		return value.NewBoolean(rv.Bool())
	case reflect.String:
		return value.NewString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.NewInteger(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.NewInteger(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return value.NewReal(rv.Float())
	case reflect.Slice, reflect.Array:
		items := make([]value.Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = buildValue(rv.Index(i))
		}
		return value.NewList(items...)
	case reflect.Map:
		if rv.Type().Elem() == emptyStructType {
			items := make([]value.Value, 0, rv.Len())
			for _, k := range rv.MapKeys() {
				items = append(items, buildValue(k))
			}
			return value.NewList(items...)
		}
		out := value.NewDictionary()
		od := out.Dictionary()
		for _, k := range rv.MapKeys() {
			od.Set(k.String(), buildValue(rv.MapIndex(k)))
		}
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return value.None()
		}
		return buildValue(rv.Elem())
	case reflect.Struct:
		addressable := rv
		if !addressable.CanAddr() {
			tmp := reflect.New(rv.Type())
			tmp.Elem().Set(rv)
			addressable = tmp.Elem()
		}
		if insp, ok := addressable.Addr().Interface().(Inspectable); ok {
			return Build(insp)
		}
		return value.None()
	default:
		return value.None()
	}
}

func signedBounds(bits int) coerce.IntegerBounds {
	if bits >= 64 {
		return coerce.IntegerBounds{Min: math.MinInt64, Max: math.MaxInt64, Bits: 64}
	}
	max := int64(1)<<(uint(bits)-1) - 1
	min := -max - 1
	return coerce.IntegerBounds{Min: min, Max: max, Bits: bits}
}

func unsignedBounds(bits int) coerce.IntegerBounds {
	if bits >= 64 {
		// Values above math.MaxInt64 are outside the int64 storage the
		// core Value uses for its integer variant.
		return coerce.IntegerBounds{Min: 0, Max: math.MaxInt64, Bits: 64, Unsigned: true}
	}
	max := int64(1)<<uint(bits) - 1
	return coerce.IntegerBounds{Min: 0, Max: max, Bits: bits, Unsigned: true}
}
