package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", buf)

	log.WithField("service", "dashboard").Debug("reloaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reloaded", entry["msg"])
	assert.Equal(t, "dashboard", entry["service"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("verbose", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
