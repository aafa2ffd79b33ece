package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonylang/confval/errs"
	"github.com/tonylang/confval/parse"
	"github.com/tonylang/confval/value"
)

func TestGetAsIdentity(t *testing.T) {
	v := value.NewInteger(42)
	got, err := GetAs[value.Value](v)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, got))
}

func TestGetAsNarrowIntegerBounds(t *testing.T) {
	v, err := parse.Parse("32768")
	require.NoError(t, err)

	_, err = GetAs[int16](v)
	assert.True(t, errs.Is(err, errs.ConversionFailed))

	got, err := GetAs[uint16](v)
	require.NoError(t, err)
	assert.Equal(t, uint16(32768), got)
}

func TestGetAsRealAndInt64Failure(t *testing.T) {
	v, err := parse.Parse("50.05")
	require.NoError(t, err)

	_, err = GetAs[int64](v)
	assert.True(t, errs.Is(err, errs.ConversionFailed))

	f, err := GetAs[float64](v)
	require.NoError(t, err)
	assert.InDelta(t, 50.05, f, 1e-9)
}

func TestGetAsSlice(t *testing.T) {
	v, err := parse.Parse("[1, 2, 3]")
	require.NoError(t, err)
	got, err := GetAs[[]int](v)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestGetAsMap(t *testing.T) {
	v, err := parse.Parse("{a=1,b=2,c=3}")
	require.NoError(t, err)
	got, err := GetAs[map[string]int](v)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
}

func TestGetAsSet(t *testing.T) {
	v, err := parse.Parse("[1, 2, 2, 3]")
	require.NoError(t, err)
	got, err := GetAs[map[int]struct{}](v)
	require.NoError(t, err)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, got)
}

type point3 struct {
	X, Y, Z int
}

func (p *point3) ConfigFields() []Field {
	return []Field{
		{Name: "x", Slot: &p.X},
		{Name: "y", Slot: &p.Y},
		{Name: "z", Slot: &p.Z},
	}
}

type line struct {
	P1, P2 point3
}

func (l *line) ConfigFields() []Field {
	return []Field{
		{Name: "p1", Slot: &l.P1},
		{Name: "p2", Slot: &l.P2},
	}
}

func TestGetAsNestedRecord(t *testing.T) {
	v, err := parse.Parse("{p1{x=1,y=2,z=3},p2{x=10,y=20,z=30}}")
	require.NoError(t, err)
	got, err := GetAs[line](v)
	require.NoError(t, err)
	assert.Equal(t, line{P1: point3{1, 2, 3}, P2: point3{10, 20, 30}}, got)
}

func TestBuildRoundTripsRecord(t *testing.T) {
	l := line{P1: point3{1, 2, 3}, P2: point3{10, 20, 30}}
	v := Build(&l)
	got, err := GetAs[line](v)
	require.NoError(t, err)
	assert.Equal(t, l, got)
}

func TestExtractMissingRequiredFieldReportsPath(t *testing.T) {
	v, err := parse.Parse("{p1{x=1,y=2,z=3}}")
	require.NoError(t, err)
	_, err = GetAs[line](v)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ConversionFailed) || errs.Is(err, errs.MissingField))
	assert.Contains(t, err.Error(), "p2")
}

func TestGetAsEnum(t *testing.T) {
	type color int
	const (
		red color = iota
		green
	)
	names := map[string]color{"red": red, "green": green}
	v := value.NewString("green")
	got, err := GetAsEnum(v, names)
	require.NoError(t, err)
	assert.Equal(t, green, got)

	_, err = GetAsEnum(value.NewString("blue"), names)
	assert.True(t, errs.Is(err, errs.ConversionFailed))
}
