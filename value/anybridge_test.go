package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyScalarsAndContainers(t *testing.T) {
	assert.True(t, FromAny(nil).IsNone())

	v := FromAny(true)
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)

	v = FromAny("hello")
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	v = FromAny(3.5)
	f, ok := v.Float()
	require.True(t, ok)
	assert.Equal(t, 3.5, f)
}

func TestFromAnyNestedMapAndList(t *testing.T) {
	src := map[string]any{
		"name": "svc",
		"tags": []any{"a", "b"},
		"nested": map[string]any{
			"port": float64(8080),
		},
	}
	v := FromAny(src)
	require.Equal(t, DictionaryKind, v.Kind())
	d := v.Dictionary()

	name, ok := d.Get("name")
	require.True(t, ok)
	s, _ := name.Str()
	assert.Equal(t, "svc", s)

	tags, ok := d.Get("tags")
	require.True(t, ok)
	assert.Equal(t, ListKind, tags.Kind())
	assert.Len(t, tags.ListElements(), 2)

	nested, ok := d.Get("nested")
	require.True(t, ok)
	port, err := nested.Dictionary().GetPath("port")
	require.NoError(t, err)
	f, _ := port.Float()
	assert.Equal(t, 8080.0, f)
}

func TestToAnyRoundTripsThroughFromAny(t *testing.T) {
	dv := NewDictionary()
	d := dv.Dictionary()
	d.Set("a", NewInteger(1))
	d.Set("b", NewList(NewString("x"), NewString("y")))
	d.Set("c", NewTimespan(10*time.Millisecond))

	back := FromAny(ToAny(dv))
	require.Equal(t, DictionaryKind, back.Kind())
	got, ok := back.Dictionary().Get("c")
	require.True(t, ok)
	s, _ := got.Str()
	assert.Equal(t, "10ms", s)
}
