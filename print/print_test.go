package print

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonylang/confval/value"
)

func TestPrintUncoloredMatchesToString(t *testing.T) {
	v := value.NewList(value.NewInteger(1), value.NewInteger(2), value.NewInteger(3))
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, v, WithColor(false)))
	assert.Equal(t, "[1, 2, 3]", buf.String())
}

func TestPrintColoredWrapsWithANSI(t *testing.T) {
	v := value.NewInteger(5)
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, v, WithColor(true)))
	assert.Contains(t, buf.String(), "5")
	assert.NotEqual(t, "5", buf.String())
}

func TestPrintDictionaryColored(t *testing.T) {
	dv := value.NewDictionary()
	d := dv.Dictionary()
	d.Set("a", value.NewString("x"))
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, dv, WithColor(true)))
	assert.Contains(t, buf.String(), "a")
	assert.Contains(t, buf.String(), `"x"`)
}

func TestStringMatchesCanonicalForm(t *testing.T) {
	assert.Equal(t, "null", String(value.None()))
}

func TestPrintDictionaryQuotesKeyNeedingIt(t *testing.T) {
	dv := value.NewDictionary()
	dv.Dictionary().Set("a.b", value.NewInteger(1))

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, dv, WithColor(false)))
	assert.Equal(t, `{"a.b" = 1}`, buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, dv, WithColor(true)))
	assert.Contains(t, buf.String(), `"a.b"`)
}
