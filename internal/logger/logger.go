// Package logger builds the structured slog.Logger used across the service.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup returns a *slog.Logger configured for the given environment.
//
//	dev (and anything unrecognised): text output at DEBUG
//	staging: JSON output at DEBUG
//	prod: JSON output at INFO
//
// Output goes to w, or to os.Stdout when w is nil.
func Setup(env string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// SetupDefault builds the logger with Setup, installs it as the global
// slog logger and returns it.
func SetupDefault(env string, w io.Writer) *slog.Logger {
	log := Setup(env, w)
	slog.SetDefault(log)
	return log
}
