package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/value"
)

func TestToBoolean(t *testing.T) {
	b, err := ToBoolean(value.NewBoolean(true))
	require.NoError(t, err)
	assert.True(t, b)

	b, err = ToBoolean(value.NewString("false"))
	require.NoError(t, err)
	assert.False(t, b)

	_, err = ToBoolean(value.NewInteger(1))
	assert.True(t, errs.Is(err, errs.ConversionFailed))
}

func TestToIntegerFromReal(t *testing.T) {
	n, err := ToInteger(value.NewReal(50.05))
	assert.True(t, errs.Is(err, errs.ConversionFailed))
	_ = n

	n, err = ToInteger(value.NewReal(4.0))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestToNarrowIntegerBounds(t *testing.T) {
	int16Bounds := IntegerBounds{Min: -32768, Max: 32767, Bits: 16}
	uint16Bounds := IntegerBounds{Min: 0, Max: 65535, Bits: 16, Unsigned: true}

	_, err := ToNarrowInteger(value.NewInteger(32768), int16Bounds)
	assert.True(t, errs.Is(err, errs.ConversionFailed))

	n, err := ToNarrowInteger(value.NewInteger(32768), uint16Bounds)
	require.NoError(t, err)
	assert.Equal(t, int64(32768), n)

	_, err = ToNarrowInteger(value.NewInteger(-1), uint16Bounds)
	assert.True(t, errs.Is(err, errs.ConversionFailed))
}

func TestToReal(t *testing.T) {
	f, err := ToReal(value.NewInteger(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = ToReal(value.NewBoolean(true))
	assert.True(t, errs.Is(err, errs.ConversionFailed))
}

func TestToTimespan(t *testing.T) {
	d, err := ToTimespan(value.NewString("10ms"))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, d)

	_, err = ToTimespan(value.NewInteger(10))
	assert.True(t, errs.Is(err, errs.ConversionFailed))
}

func TestToStringCanonicalForms(t *testing.T) {
	assert.Equal(t, "null", ToString(value.None()))
	assert.Equal(t, "true", ToString(value.NewBoolean(true)))
	assert.Equal(t, "-5", ToString(value.NewInteger(-5)))
	assert.Equal(t, "4ns", ToString(value.NewTimespan(4*time.Nanosecond)))
	assert.Equal(t, "42s", ToString(value.NewTimespan(42*time.Second)))
	assert.Equal(t, "abc", ToString(value.NewString("abc")))
	assert.Equal(t, "[1, 2, 3]", ToString(value.NewList(value.NewInteger(1), value.NewInteger(2), value.NewInteger(3))))
}

func TestToStringQuotesDictionaryKeyNeedingIt(t *testing.T) {
	dv := value.NewDictionary()
	d := dv.Dictionary()
	d.Set("a.b", value.NewInteger(1))
	assert.Equal(t, `{"a.b" = 1}`, ToString(dv))

	plain := value.NewDictionary()
	plain.Dictionary().Set("a", value.NewInteger(1))
	assert.Equal(t, `{a = 1}`, ToString(plain))
}

func TestToListFromDictionary(t *testing.T) {
	dv := value.NewDictionary()
	d := dv.Dictionary()
	d.Set("a", value.NewInteger(1))
	d.Set("b", value.NewInteger(2))
	list, err := ToList(dv)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, value.ListKind, list[0].Kind())
}

func TestToDictionaryFromString(t *testing.T) {
	d, err := ToDictionary(value.NewString("{a=1,b=2}"))
	require.NoError(t, err)
	got, ok := d.Get("a")
	require.True(t, ok)
	n, _ := got.Int()
	assert.Equal(t, int64(1), n)

	assert.True(t, CanConvertToDictionary(value.NewString("{a=1}")))
	assert.False(t, CanConvertToDictionary(value.NewString("not a dict")))
}
