package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	l, err := New("warn", WithOutput(buf))
	require.NoError(t, err)

	l.Info().Msg("skipped")
	l.Warn().Str("key", "value").Msg("kept")

	line := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "value", line["key"])
	assert.Equal(t, "kept", line["message"])
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("loud", WithOutput(bytes.NewBuffer(nil)))
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	c := &Config{}
	c.Default()
	assert.Equal(t, "info", c.Level)
	assert.NoError(t, c.Validate())

	c.Level = "chatty"
	assert.Error(t, c.Validate())
}
