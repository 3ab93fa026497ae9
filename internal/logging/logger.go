package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger пишет структурированные логи с учетом контекста.
//
// args передаются парами ключ-значение:
//
//	log.Info(ctx, "starting server", "addr", addr, "storage", kind)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With возвращает логгер, который всегда добавляет указанные пары.
	With(args ...any) Logger
}

// ParseLevel переводит строку ("debug", "info", "warn", "error") в slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NewJSON пишет записи в w в формате JSON.
func NewJSON(w io.Writer, level slog.Level) Logger {
	return New(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

// Nop отбрасывает все записи.
func Nop() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
