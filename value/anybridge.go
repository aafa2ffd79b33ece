package value

import (
	"time"

	"github.com/tonylang/confval/token"
)

// FromAny bridges a generic Go value of the shape produced by
// encoding/json, viper, or YAML decoders — map[string]any, []any, and
// scalar types — into a Value. Concrete types outside that closed set
// become None rather than guessing at a variant, matching spec §1's
// non-goal of auto-promoting unrecognized shapes.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return None()
	case bool:
		return NewBoolean(t)
	case string:
		return NewString(t)
	case int:
		return NewInteger(int64(t))
	case int64:
		return NewInteger(t)
	case float64:
		return NewReal(t)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromAny(e)
		}
		return NewList(items...)
	case map[string]any:
		out := NewDictionary()
		d := out.Dictionary()
		for k, v := range t {
			d.Set(k, FromAny(v))
		}
		return out
	default:
		return None()
	}
}

// ToAny is FromAny's mirror: it renders v as the generic
// map[string]any / []any / scalar shape encoding/json expects,
// suitable for round-tripping through json.Marshal (used by
// ApplyJSONPatch). Timespans and URIs, which have no native JSON
// scalar type, degrade to their canonical string form.
func ToAny(v Value) any {
	switch v.kind {
	case NoneKind:
		return nil
	case BooleanKind:
		return v.b
	case IntegerKind:
		return v.i64
	case RealKind:
		return v.f64
	case TimespanKind:
		return token.FormatTimespan(time.Duration(v.i64))
	case URIKind, StringKind:
		return v.s
	case ListKind:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = ToAny(e)
		}
		return out
	case DictionaryKind:
		out := make(map[string]any, v.dict.Len())
		v.dict.Range(func(k string, val Value) bool {
			out[k] = ToAny(val)
			return true
		})
		return out
	default:
		return nil
	}
}
