package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/value"
)

func TestParsePrimitives(t *testing.T) {
	v, err := Parse("32768")
	require.NoError(t, err)
	n, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(32768), n)

	v, err = Parse("50.05")
	require.NoError(t, err)
	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 50.05, f, 1e-9)

	v, err = Parse("10ms")
	require.NoError(t, err)
	d, ok := v.Duration()
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, d)

	v, err = Parse("true")
	require.NoError(t, err)
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)
}

func TestParseList(t *testing.T) {
	v, err := Parse("[1, 2, 3]")
	require.NoError(t, err)
	require.Equal(t, value.ListKind, v.Kind())
	elems := v.ListElements()
	require.Len(t, elems, 3)
	for i, want := range []int64{1, 2, 3} {
		n, _ := elems[i].Int()
		assert.Equal(t, want, n)
	}
}

func TestParseDictionary(t *testing.T) {
	v, err := Parse("{a=1,b=2,c=3}")
	require.NoError(t, err)
	require.Equal(t, value.DictionaryKind, v.Kind())
	d := v.Dictionary()
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
	got, ok := d.Get("b")
	require.True(t, ok)
	n, _ := got.Int()
	assert.Equal(t, int64(2), n)
}

func TestParseDottedKeys(t *testing.T) {
	v, err := Parse("{a.b.c=1}")
	require.NoError(t, err)
	inner, err := v.Dictionary().GetPath("a.b.c")
	require.NoError(t, err)
	n, _ := inner.Int()
	assert.Equal(t, int64(1), n)
}

func TestParseQuotedKeyKeepsLiteralDot(t *testing.T) {
	v, err := Parse(`{"a.b"=1}`)
	require.NoError(t, err)
	d := v.Dictionary()
	got, ok := d.Get("a.b")
	require.True(t, ok)
	n, _ := got.Int()
	assert.Equal(t, int64(1), n)
	_, ok = d.Get("a")
	assert.False(t, ok)
}

func TestParseNestedDictShorthand(t *testing.T) {
	v, err := Parse("{a{b=1}}")
	require.NoError(t, err)
	inner, err := v.Dictionary().GetPath("a.b")
	require.NoError(t, err)
	n, _ := inner.Int()
	assert.Equal(t, int64(1), n)
}

func TestParseComments(t *testing.T) {
	v, err := Parse("1 # trailing comment\n")
	require.NoError(t, err)
	n, _ := v.Int()
	assert.Equal(t, int64(1), n)

	v, err = Parse("/* c */ 2 // more\n")
	require.NoError(t, err)
	n, _ = v.Int()
	assert.Equal(t, int64(2), n)
}

func TestParseTrailingCharacter(t *testing.T) {
	_, err := Parse("10msb")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.TrailingCharacter))
}

func TestParseUnexpectedCharacterInDictionary(t *testing.T) {
	_, err := Parse("{a=,")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.UnexpectedCharacter))
}

func TestParseUnquotedFallback(t *testing.T) {
	v, err := Parse("this is not a value }")
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "this is not a value }", s)
}

func TestParseEmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := Parse("")
	assert.True(t, errs.Is(err, errs.UnexpectedEOF))

	_, err = Parse("   ")
	assert.True(t, errs.Is(err, errs.UnexpectedEOF))
}

func TestParseCLIListShortcut(t *testing.T) {
	v, err := ParseCLI("1,2,3,", ShapeList)
	require.NoError(t, err)
	require.Equal(t, value.ListKind, v.Kind())
	require.Len(t, v.ListElements(), 3)
}

func TestParseCLIStringListShortcut(t *testing.T) {
	v, err := ParseCLI("abc,def", ShapeStringList)
	require.NoError(t, err)
	elems := v.ListElements()
	require.Len(t, elems, 2)
	s0, _ := elems[0].Str()
	s1, _ := elems[1].Str()
	assert.Equal(t, "abc", s0)
	assert.Equal(t, "def", s1)
}

func TestParseCLINestedListShortcut(t *testing.T) {
	v, err := ParseCLI("[1,2],[3]", ShapeNestedList)
	require.NoError(t, err)
	elems := v.ListElements()
	require.Len(t, elems, 2)
	assert.Equal(t, value.ListKind, elems[0].Kind())
	assert.Equal(t, value.ListKind, elems[1].Kind())

	v, err = ParseCLI("1,2,3", ShapeNestedList)
	require.NoError(t, err)
	elems = v.ListElements()
	require.Len(t, elems, 1)
	assert.Equal(t, value.ListKind, elems[0].Kind())
	assert.Len(t, elems[0].ListElements(), 3)
}

func TestParseCLIListShortcutWithSpacesAndTrailingComma(t *testing.T) {
	v, err := ParseCLI(" 1,2 , 3  ,", ShapeList)
	require.NoError(t, err)
	elems := v.ListElements()
	require.Len(t, elems, 3)
	for i, want := range []int64{1, 2, 3} {
		n, ok := elems[i].Int()
		require.True(t, ok)
		assert.Equal(t, want, n)
	}

	sv, err := ParseCLI(" 1,2 , 3  ,", ShapeStringList)
	require.NoError(t, err)
	selems := sv.ListElements()
	require.Len(t, selems, 3)
	for i, want := range []string{"1", "2", "3"} {
		s, ok := selems[i].Str()
		require.True(t, ok)
		assert.Equal(t, want, s)
	}
}

func TestParseUnmatchedBracketFails(t *testing.T) {
	_, err := Parse("[1,2,3")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.UnexpectedEOF))

	_, err = Parse("123]")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.TrailingCharacter))
}
