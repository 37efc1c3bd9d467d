package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	log.WithField("component", "test").Debug("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "component=test")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Options{Level: "chatty", Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Options{Level: "info", FilePath: path})
	require.NoError(t, err)

	log.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestOrDiscard(t *testing.T) {
	log, err := New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Same(t, log, OrDiscard(log))

	fallback := OrDiscard(nil)
	require.NotNil(t, fallback)
	assert.NotPanics(t, func() { fallback.WithField("component", "test").Warn("dropped") })
}
