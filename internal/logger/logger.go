package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger in prod and a text logger at debug level
// elsewhere. A nil writer means stdout.
func New(env string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	var h slog.Handler
	if env == "prod" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(h).With("service", "storefront")
}
