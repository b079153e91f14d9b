package cmd

import (
	"log/slog"
	"strings"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	ClockJobSchedule string
	LogLevel         string
	DemoInputFile    string
	DemoWorkDir      string
}

// SlogLevel maps LOG_LEVEL (debug, info, warn, error) to a slog level.
// Anything else, including an empty value, means info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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
