package cli

import (
	"io"
	"log/slog"
	"strings"
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// parseLevel maps a level name to a slog level, defaulting to warn.
func parseLevel(name string) slog.Level {
	level, ok := logLevelMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return slog.LevelWarn
	}
	return level
}

// initLogging installs a text handler on w as the default logger.
func initLogging(levelName string, w io.Writer) {
	level := parseLevel(levelName)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	slog.Debug("logging initialized", "level", level.String())
}
