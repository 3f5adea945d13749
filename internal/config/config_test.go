package config

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // restores the original value on cleanup
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DEMO_ACTIONS_COLOR", "DEMO_ACTIONS_LOG_LEVEL", "DEMO_ACTIONS_LOG_FORMAT", DemoEnvVar} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Demo)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DEMO_ACTIONS_COLOR", "0")
	t.Setenv("DEMO_ACTIONS_LOG_LEVEL", "debug")
	t.Setenv("DEMO_ACTIONS_LOG_FORMAT", "json")
	t.Setenv(DemoEnvVar, `C:\demos\match.dem`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0", cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, `C:\demos\match.dem`, cfg.Demo)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "info", "text")
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	log.WithField("path", "demo.dem.json").Info("committed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "committed")
	assert.Contains(t, out, "path=demo.dem.json")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	log.WithField("actions", 3).Debug("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "built", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 3, entry["actions"])
}

func TestNewLogger_Errors(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "text")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.ErrorContains(t, err, "invalid log format")
}

func TestLoad_EmptyLogLevel(t *testing.T) {
	t.Setenv("DEMO_ACTIONS_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
