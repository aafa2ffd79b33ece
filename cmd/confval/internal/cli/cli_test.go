package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(zap.NewNop().Sugar())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseCommandPrintsCanonicalForm(t *testing.T) {
	out, err := run(t, "parse", "--color=never", "32768")
	require.NoError(t, err)
	assert.Equal(t, "32768", out)
}

func TestParseCommandListShortcut(t *testing.T) {
	out, err := run(t, "parse", "--color=never", "--list", "a,b,c")
	require.NoError(t, err)
	assert.Equal(t, `["a", "b", "c"]`, out)
}

func TestParseCommandRejectsTrailingCharacter(t *testing.T) {
	_, err := run(t, "parse", "10msb")
	assert.Error(t, err)
}

func TestDiffCommandReportsNoDifference(t *testing.T) {
	out, err := run(t, "diff", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "(no difference)\n", out)
}

func TestDiffCommandReportsChange(t *testing.T) {
	out, err := run(t, "diff", "1", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLoadCommandReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: svc\nport: 8080\n"), 0o644))

	out, err := run(t, "load", "--color=never", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, `name = "svc"`)
}

func TestLoadCommandFailsWithoutUsablePath(t *testing.T) {
	_, err := run(t, "load", "--path", "/nonexistent/confval-test.yaml")
	assert.Error(t, err)
}
