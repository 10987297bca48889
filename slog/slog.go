// Package slog decorates ogscrape services with structured logging using
// the standard library's log/slog.
//
// Every decorated call logs one line when it returns: at Info level on
// success and at Warn level with the error on failure.
package slog

import (
	"context"
	"log/slog"
	"time"
)

// logCall logs the outcome of a call that started at begin.
func logCall(ctx context.Context, logger *slog.Logger, msg string, begin time.Time, err error, args ...any) {
	level := slog.LevelInfo
	args = append(args, "duration", time.Since(begin))
	if err != nil {
		level = slog.LevelWarn
		args = append(args, "err", err)
	}
	logger.Log(ctx, level, msg, args...)
}
