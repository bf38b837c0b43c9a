package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		debug     bool
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "Text Logger Info Level",
			config: Config{Level: "info", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, `msg="test message"`)
			},
		},
		{
			name:   "JSON Logger Debug Level",
			config: Config{Level: "debug", Format: "json", Output: "stdout"},
			debug:  true,
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &logEntry), output)
				assert.Equal(t, "DEBUG", logEntry["level"])
				assert.Equal(t, "test message", logEntry["msg"])
				assert.Contains(t, logEntry, "source")
			},
		},
		{
			name:   "Unknown level falls back to info",
			config: Config{Level: "verbose", Format: "text"},
			debug:  true,
			checkFunc: func(t *testing.T, output string) {
				assert.Empty(t, output)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(tt.config, &buf)

			if tt.debug {
				log.Debug("test message")
			} else {
				log.Info("test message")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}

func TestOpenOutput(t *testing.T) {
	assert.Equal(t, os.Stderr, OpenOutput("stderr"))
	assert.Equal(t, os.Stdout, OpenOutput("stdout"))
	assert.Equal(t, os.Stdout, OpenOutput(""))
}
