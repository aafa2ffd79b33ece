package confload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFailsWithoutUsablePath(t *testing.T) {
	l := New(WithPaths("/nonexistent/path/does-not-exist.yaml"))
	_, err := l.Load()
	assert.Error(t, err)
}
