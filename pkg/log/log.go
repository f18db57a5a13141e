// Package log provides the process-wide zerolog logger. Diagnostics always go
// to the writer given to Init (stderr in the binary) and never to stdout.
package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop() // Default to no-op logger
)

// Init replaces the package logger. format is "console" or "json"; an empty
// level means warn.
func Init(w io.Writer, level, format string) error {
	lvl := zerolog.WarnLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log: invalid level %q: %w", level, err)
		}
	}

	var out io.Writer
	switch format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case "json":
		out = w
	default:
		return fmt.Errorf("log: unknown format %q", format)
	}

	mu.Lock()
	pkgLogger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()
	return nil
}

// Reset restores the no-op logger.
func Reset() {
	mu.Lock()
	pkgLogger = zerolog.Nop()
	mu.Unlock()
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := pkgLogger
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }

// Printf logs at debug level.
func Printf(format string, v ...interface{}) {
	logger().Debug().Msgf(format, v...)
}
