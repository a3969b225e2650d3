package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/t4thdd/aid-efrh/pkg/config"
	"github.com/t4thdd/aid-efrh/pkg/logger"
)

type settings struct {
	LogLevel  string `env:"FORMCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := config.Load(&s); err != nil {
		return settings{}, err
	}
	switch logger.Format(s.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return settings{}, fmt.Errorf("FORMCHECK_LOG_FORMAT: unsupported format %q", s.LogFormat)
	}
	return s, nil
}

func newLogger(s settings, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevelName(s.LogLevel),
		logger.WithFormat(logger.Format(s.LogFormat)),
		logger.WithAttr(slog.String("service", "formcheck")),
		logger.WithContextExtractors(snapshotFileAttr),
	)
}

type snapshotFileKey struct{}

func withSnapshotFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, snapshotFileKey{}, path)
}

func snapshotFileAttr(ctx context.Context) (slog.Attr, bool) {
	path, ok := ctx.Value(snapshotFileKey{}).(string)
	if !ok || path == "" {
		return slog.Attr{}, false
	}
	return slog.String("file", path), true
}
