package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendsToLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	logger, err := New(dir, false)
	require.NoError(t, err)
	logger.Info("session completed", "total", 60)
	logger.Debug("hidden")
	require.NoError(t, logger.Close())

	again, err := New(dir, true)
	require.NoError(t, err)
	again.Debug("frame", "remaining", 3)
	require.NoError(t, again.Close())

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `msg="session completed" total=60`)
	assert.NotContains(t, content, "hidden")
	assert.Contains(t, content, "level=DEBUG msg=frame remaining=3")
	assert.Equal(t, filepath.Join(dir, fileName), again.Path())
}

func TestDiscard_IsSafeToClose(t *testing.T) {
	logger := Discard()
	logger.Warn("dropped")

	assert.Empty(t, logger.Path())
	assert.NoError(t, logger.Close())

	var missing *Logger
	assert.NoError(t, missing.Close())
}
