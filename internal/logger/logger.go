// Package logger builds the structured slog logger shared by every component.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const defaultLogFile = "code-optimizer.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a new slog logger based on the provided configuration.
// When output is nil the destination is chosen from cfg.Output.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = OpenOutput(cfg.Output)
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		*level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: *level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// OpenOutput resolves a configured output name to a writer. Unknown names and
// unopenable log files fall back to stdout.
func OpenOutput(name string) io.Writer {
	switch name {
	case "stderr":
		return os.Stderr
	case "file":
		file, err := os.OpenFile(defaultLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			return os.Stdout
		}
		return file
	default:
		return os.Stdout
	}
}
