package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"shark-ai/internal/config"
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures the default slog logger from config.
// Logs go to stdout unless LOG_FILE is set, in which case they are written to a rotating file.
func Init(cfg *config.Config) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var out io.Writer = os.Stdout
	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			logger := slog.New(newHandler(cfg.LogFormat, os.Stdout, opts))
			slog.SetDefault(logger)
			return logger, err
		}
		out = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   true,
		}
	}

	logger := slog.New(newHandler(cfg.LogFormat, out, opts))
	slog.SetDefault(logger)
	return logger, nil
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}
