package logging

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
)

// reqLogger пишет в slog и добавляет request_id, если он есть в контексте.
type reqLogger struct {
	l *slog.Logger
}

// New оборачивает готовый *slog.Logger.
func New(l *slog.Logger) Logger {
	return &reqLogger{l: l}
}

func (r *reqLogger) Debug(ctx context.Context, msg string, args ...any) {
	r.log(ctx, slog.LevelDebug, msg, args)
}

func (r *reqLogger) Info(ctx context.Context, msg string, args ...any) {
	r.log(ctx, slog.LevelInfo, msg, args)
}

func (r *reqLogger) Warn(ctx context.Context, msg string, args ...any) {
	r.log(ctx, slog.LevelWarn, msg, args)
}

func (r *reqLogger) Error(ctx context.Context, msg string, args ...any) {
	r.log(ctx, slog.LevelError, msg, args)
}

func (r *reqLogger) With(args ...any) Logger {
	return &reqLogger{l: r.l.With(args...)}
}

func (r *reqLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !r.l.Enabled(ctx, level) {
		return
	}
	if id := middleware.GetReqID(ctx); id != "" {
		args = append(args, "request_id", id)
	}
	r.l.Log(ctx, level, msg, args...)
}
