package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStrings(t *testing.T) {
	cfg := FromStrings(" DEBUG ", "Text")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.True(t, cfg.Pretty)

	cfg = FromStrings("warn", "json")
	assert.Equal(t, WarnLevel, cfg.Level)
	assert.False(t, cfg.Pretty)
}

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf, Service: "coursereg"})

	Info().Msg("dropped")
	Warn().Str("courseId", "7").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "info entries must be filtered at warn level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "coursereg", entry["service"])
	assert.Equal(t, "7", entry["courseId"])
	assert.Contains(t, entry, "time")
}

func TestConfigureReplacesGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})

	log.Info().Msg("through zerolog/log")
	assert.Contains(t, buf.String(), "through zerolog/log")

	buf.Reset()
	Info().Msg("through package helper")
	assert.Contains(t, buf.String(), "through package helper")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: LogLevel("verbose"), Output: &buf})

	Debug().Msg("hidden")
	Info().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
