// Package logging builds the slog logger used by the signup CLI and by
// traced pipelines.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/lmittmann/tint"
)

const (
	JSON = "json"
	Text = "text"
	Tint = "tint"
)

type handlerFunc func(w io.Writer, level slog.Level, source bool) slog.Handler

var handlers = map[string]handlerFunc{
	JSON: func(w io.Writer, level slog.Level, source bool) slog.Handler {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: source})
	},
	Text: func(w io.Writer, level slog.Level, source bool) slog.Handler {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: source})
	},
	// tint is the colored console handler for interactive runs.
	Tint: func(w io.Writer, level slog.Level, source bool) slog.Handler {
		return tint.NewHandler(w, &tint.Options{Level: level, AddSource: source})
	},
}

// Types lists the accepted logging types in sorted order.
func Types() []string {
	types := make([]string, 0, len(handlers))
	for t := range handlers {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// New builds a logger writing to w. Source locations are attached only at
// debug level.
func New(w io.Writer, loggingType string, logLevelName string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevelName)); err != nil {
		return nil, fmt.Errorf("could not parse log level: %w", err)
	}

	handler, ok := handlers[loggingType]
	if !ok {
		return nil, fmt.Errorf("unknown logging type %q, want one of %s", loggingType, strings.Join(Types(), ", "))
	}

	return slog.New(handler(w, level, level <= slog.LevelDebug)), nil
}

// Initialize installs a stderr logger as the slog default. Results go to
// stdout, so diagnostics never interleave with them.
func Initialize(loggingType string, logLevelName string) error {
	logger, err := New(os.Stderr, loggingType, logLevelName)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	logger.Debug("logging initialized", "type", loggingType, "level", logLevelName)
	return nil
}
