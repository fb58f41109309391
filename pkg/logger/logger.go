package logger

import (
	"log/slog"
	"os"
	"strings"
)

var std = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Init replaces the package logger and the slog default with a text handler at level.
func Init(level slog.Level) {
	std = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(std)
}

// ParseLevel maps a config string to a slog level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	std.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	std.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	std.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	std.Error(msg, args...)
}
