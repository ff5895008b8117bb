package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the global logger. Production gets JSON output, everything
// else a text handler.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize tolerates a bare error (or any odd trailing value) instead of a
// key/value pair so call sites can do logger.Error("msg", err).
func normalize(args []any) []any {
	if len(args) == 0 {
		return nil
	}

	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		if _, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i++
			continue
		}
		if err, ok := args[i].(error); ok {
			out = append(out, slog.Any("error", err))
			continue
		}
		out = append(out, slog.Any("detail", args[i]))
	}

	return out
}
