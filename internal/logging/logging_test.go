package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestSetup_WritesJSONToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig().Logging
	cfg.Level = "info"

	out, err := Setup(cfg, &buf)
	require.NoError(t, err)
	assert.Same(t, &buf, out)

	logrus.WithField("module", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["module"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetup_LevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig().Logging // warn

	_, err := Setup(cfg, &buf)
	require.NoError(t, err)

	logrus.Info("hidden")
	assert.Zero(t, buf.Len())

	logrus.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_InvalidLevel(t *testing.T) {
	cfg := config.DefaultConfig().Logging
	cfg.Level = "chatty"

	_, err := Setup(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestWriter_FileUsesRotatingLogger(t *testing.T) {
	cfg := config.DefaultConfig().Logging
	cfg.File = t.TempDir() + "/agent.log"

	w := Writer(cfg, nil)

	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, cfg.File, lj.Filename)
	assert.Equal(t, 20, lj.MaxSize)
	assert.Equal(t, 3, lj.MaxBackups)
	require.NoError(t, lj.Close())
}
