package logger

import (
	"log/slog"
	"time"
)

// typed returns the default logger tagged with t, which CustomHandler
// prints as the [TYPE] column.
func typed(t string) *slog.Logger {
	return slog.Default().With(slog.String("type", t))
}

// LogRequest records one card database round trip. status is zero when
// the request never got a response.
func LogRequest(url string, status int, took time.Duration, err error) {
	l := typed("api").With(
		slog.String("url", url),
		slog.Int("http_status", status),
		slog.Duration("took", took),
	)
	if err != nil {
		l.Warn("Request failed", slog.Any("error", err))
		return
	}
	l.Debug("Request completed")
}

// LogQuery records a raw statement run outside the repositories.
func LogQuery(query string, took time.Duration, err error) {
	l := typed("db").With(slog.String("query", query), slog.Duration("took", took))
	if err != nil {
		l.Error("Query failed", slog.Any("error", err))
		return
	}
	l.Debug("Query executed")
}

func LogDeck(msg string, attrs ...any) {
	typed("deck").Info(msg, attrs...)
}

func LogExport(msg string, attrs ...any) {
	typed("export").Info(msg, attrs...)
}

func LogSystem(msg string, attrs ...any) {
	typed("sys").Info(msg, attrs...)
}

func LogError(msg string, err error, attrs ...any) {
	typed("error").Error(msg, append([]any{slog.Any("error", err)}, attrs...)...)
}
