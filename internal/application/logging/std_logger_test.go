package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
)

func TestStdLogger_FiltersBelowLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewStdLogger(&buf, "warn", "text")

	// Act
	logger.Log(logging.LevelInfo, "Order placed", nil)
	logger.Log(logging.LevelWarn, "Unknown emotion", map[string]interface{}{"emotion": "smug", "customer": "c1"})

	// Assert
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[WARNING] Unknown emotion customer=c1 emotion=smug")
}

func TestStdLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStdLogger(&buf, "debug", "json")

	logger.Log(logging.LevelDebug, "Seat selected", map[string]interface{}{"seat": 2})

	line := strings.TrimSpace(buf.String())
	assert.Equal(t, "DEBUG", gjson.Get(line, "level").String())
	assert.Equal(t, "Seat selected", gjson.Get(line, "msg").String())
	assert.Equal(t, int64(2), gjson.Get(line, "seat").Int())
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, logging.ParseLevel("info"), logging.ParseLevel("verbose"))
	assert.Less(t, logging.ParseLevel("debug"), logging.ParseLevel("error"))
}
