package config

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"slices"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Log formats.
const (
	LogFormatText    = "text"    // slog key=value
	LogFormatJSON    = "json"    // slog JSON
	LogFormatConsole = "console" // standard library log lines
)

var logFormats = []string{LogFormatText, LogFormatJSON, LogFormatConsole}

func validFormat(format string) bool {
	return slices.Contains(logFormats, format)
}

// parseLevel maps a level name to a slog level. logr verbosity V(n) logs at
// slog level -n, so debug enables V(1) through V(4).
func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "error":
		return slog.LevelError, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (valid: error, info, debug)", level)
	}
}

// NewLogger creates the logger for the given level and format.
func NewLogger(level, format string, w io.Writer) (logr.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case LogFormatJSON:
		return logr.FromSlogHandler(slog.NewJSONHandler(w, opts)), nil
	case LogFormatText, "":
		return logr.FromSlogHandler(slog.NewTextHandler(w, opts)), nil
	case LogFormatConsole:
		// stdr has no error-only mode; error level behaves like info.
		verbosity := 0
		if lvl <= slog.LevelDebug {
			verbosity = int(slog.LevelInfo - slog.LevelDebug)
		}
		stdr.SetVerbosity(verbosity)
		return stdr.New(log.New(w, "", log.LstdFlags)), nil
	default:
		return logr.Discard(), fmt.Errorf("unknown log format %q", format)
	}
}
