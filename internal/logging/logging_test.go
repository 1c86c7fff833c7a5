package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", false, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("path", "floor.png").Msg("Texture failed to load")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "floor.png", entry["path"])
	assert.Equal(t, "Texture failed to load", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", true, &buf)
	require.NoError(t, err)

	log.Debug().Msg("Scene built")
	assert.Contains(t, buf.String(), "Scene built")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewEmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", false, &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", false, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestThrottled(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", false, &buf)
	require.NoError(t, err)

	slow := Throttled(log, 2, time.Hour)
	for i := 0; i < 5; i++ {
		slow.Warn().Msg("Slow frame")
	}
	// two from the burst, then the first of every hundred
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("Slow frame")))
}
