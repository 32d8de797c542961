package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/cogscreen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.LoggingConfig{ConsoleLevel: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("loud")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_FileCore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	log, err := New(config.LoggingConfig{
		Level:        "info",
		ConsoleLevel: "error",
		Directory:    dir,
		MaxSize:      1,
	}, &buf)
	require.NoError(t, err)

	log.Debug("skipped")
	log.Info("assessment completed")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"assessment completed"`)
	assert.NotContains(t, string(data), "skipped")
	assert.Empty(t, buf.String())
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, nil)
	assert.Error(t, err)
}
