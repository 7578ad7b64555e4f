package main

import (
	"io"
	"log/slog"
	"strings"
)

func initTrace(w io.Writer, debugLevel string, noLogTime bool) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if noLogTime {
		handlerOptions.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{} // Remove the time attribute
			}
			return a
		}
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	default:
		handlerOptions.Level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, handlerOptions)
	logger := slog.New(handler)
	return logger
}

// normalizeArgs rewrites the historical -split, -join and -verify spellings (any case)
// into subcommand names. Only the first argument is considered.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := make([]string, len(args))
	copy(out, args)
	switch strings.ToLower(args[0]) {
	case "-split":
		out[0] = "split"
	case "-join":
		out[0] = "join"
	case "-verify":
		out[0] = "verify"
	}
	return out
}
