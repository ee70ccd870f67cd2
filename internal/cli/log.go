package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// withLogger attaches l to ctx so downstream RunE handlers and any
// library code that receives ctx can log without a global.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext recovers the logger attached by withLogger, falling
// back to the package default if none was attached (e.g. in a test that
// calls a command handler directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func newLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return l
}
