package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// NewLogger returns a logrus logger writing to w at level using the text
// or json formatter. Text output is coloured only when w is a terminal and
// NO_COLOR is unset.
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:      isColorable(w),
			DisableColors:    !isColorable(w),
			DisableTimestamp: !isTerminal(w),
			FullTimestamp:    true,
		})
	default:
		return nil, fmt.Errorf("telemetry: unknown log format %q", format)
	}

	return logger, nil
}

// Logger returns the logger stored in ctx as an entry, or an entry of the
// standard logger.
func Logger(ctx context.Context) *logrus.Entry {
	switch logger := ctx.Value(loggerContextKeyVal).(type) {
	case *logrus.Entry:
		return logger
	case *logrus.Logger:
		return logrus.NewEntry(logger)
	default:
		return logrus.NewEntry(logrus.StandardLogger())
	}
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func isColorable(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") == "1" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTerminal(w)
}
