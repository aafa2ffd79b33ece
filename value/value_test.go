package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToList(t *testing.T) {
	t.Run("none becomes empty list", func(t *testing.T) {
		v := None()
		v.ConvertToList()
		assert.Equal(t, ListKind, v.Kind())
		assert.Empty(t, v.ListElements())
	})

	t.Run("scalar becomes single element list", func(t *testing.T) {
		v := NewInteger(42)
		v.ConvertToList()
		require.Equal(t, ListKind, v.Kind())
		require.Len(t, v.ListElements(), 1)
		i, ok := v.ListElements()[0].Int()
		require.True(t, ok)
		assert.Equal(t, int64(42), i)
	})

	t.Run("list is a no-op", func(t *testing.T) {
		v := NewList(NewInteger(1), NewInteger(2))
		v.ConvertToList()
		assert.Len(t, v.ListElements(), 2)
	})
}

func TestAppend(t *testing.T) {
	v := NewInteger(1)
	v.Append(NewInteger(2))
	v.Append(NewInteger(3))
	require.Equal(t, ListKind, v.Kind())
	got := v.ListElements()
	require.Len(t, got, 3)
	for i, want := range []int64{1, 2, 3} {
		n, ok := got[i].Int()
		require.True(t, ok)
		assert.Equal(t, want, n)
	}
}

func TestAsDictionary(t *testing.T) {
	v := NewString("not a dict")
	d := v.AsDictionary()
	d.Set("a", NewInteger(1))
	assert.Equal(t, DictionaryKind, v.Kind())
	got, ok := v.Dictionary().Get("a")
	require.True(t, ok)
	n, _ := got.Int()
	assert.Equal(t, int64(1), n)
}

func TestDottedPath(t *testing.T) {
	d := newDictionary()
	require.NoError(t, d.SetPath("a.b.c", NewInteger(7)))
	v, err := d.GetPath("a.b.c")
	require.NoError(t, err)
	n, _ := v.Int()
	assert.Equal(t, int64(7), n)

	_, err = d.GetPath("a.missing.c")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, d.SetPath("x", NewInteger(1)))
	err = d.SetPath("x.y", NewInteger(2))
	assert.ErrorIs(t, err, ErrNotADictionary)
}

func TestEqual(t *testing.T) {
	a := NewDictionary()
	ad := a.Dictionary()
	ad.Set("x", NewInteger(1))
	ad.Set("y", NewInteger(2))

	b := NewDictionary()
	bd := b.Dictionary()
	bd.Set("y", NewInteger(2))
	bd.Set("x", NewInteger(1))

	assert.True(t, Equal(a, b), "dictionary equality is order independent")
	assert.False(t, Equal(NewInteger(1), NewReal(1)), "variant mismatch never equal")
}

func TestCompareOrdersByVariantThenContent(t *testing.T) {
	assert.Negative(t, Compare(None(), NewInteger(0)))
	assert.Negative(t, Compare(NewInteger(1), NewInteger(2)))
	assert.Zero(t, Compare(NewTimespan(time.Second), NewTimespan(time.Second)))
}

func TestCloneIsDeep(t *testing.T) {
	v := NewList(NewInteger(1))
	cp := v.Clone()
	cp.Append(NewInteger(2))
	assert.Len(t, v.ListElements(), 1)
	assert.Len(t, cp.ListElements(), 2)
}
