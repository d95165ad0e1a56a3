package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"mall_query_v1/internal/config"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_FileOutputRotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")
	log, err := New(config.LogConfig{Level: "info", Format: "text", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	out, ok := log.Out.(*lumberjack.Logger)
	require.True(t, ok, "配置文件路径时应使用 lumberjack")
	assert.Equal(t, path, out.Filename)
}

func TestLogError_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	LogError(log, "revenue", "TopStores", map[string]string{"branch": "台北忠孝館"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "revenue", entry["module"])
	assert.Equal(t, "TopStores", entry["funcName"])
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "error", entry["level"])
}

func TestNewGormLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	gl := NewGormLogger(log, 0)
	assert.NotNil(t, gl)
}
