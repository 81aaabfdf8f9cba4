package pipe

import (
	"context"
	"log/slog"
)

// Log returns a side effect for Peek that writes the held value under the
// "value" key. A nil logger means slog.Default().
//
// Example:
//
//	n := pipe.Of(2).
//		Map(double).
//		Peek(pipe.Log[int](logger, slog.LevelDebug, "doubled")).
//		Result()
func Log[R any](logger *slog.Logger, level slog.Level, msg string, args ...any) func(R) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(v R) {
		logger.Log(context.Background(), level, msg, append([]any{slog.Any("value", v)}, args...)...)
	}
}

// LogPair is Log for Pair.Peek; values go under "first" and "second".
func LogPair[U, V any](logger *slog.Logger, level slog.Level, msg string, args ...any) func(U, V) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(first U, second V) {
		attrs := append([]any{slog.Any("first", first), slog.Any("second", second)}, args...)
		logger.Log(context.Background(), level, msg, attrs...)
	}
}
