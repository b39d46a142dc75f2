// Package logger provides a structured logging interface for the application.
//
// It wraps the zap logging library to keep call sites simple while retaining
// zap's performance. Output goes to stdout and, optionally, to a size-rotated
// file managed by lumberjack.
package logger

import (
	"io"
	"os"

	"github.com/code19m/errx"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging interface used across the application.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(args ...any)
	// Info logs a message at info level.
	Info(args ...any)
	// Warn logs a message at warn level.
	Warn(args ...any)
	// Error logs a message at error level.
	Error(args ...any)
	// Fatal logs a message at fatal level and then calls os.Exit(1).
	Fatal(args ...any)

	// Debugf logs a formatted message at debug level.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at info level.
	Infof(format string, args ...any)
	// Warnf logs a formatted message at warn level.
	Warnf(format string, args ...any)
	// Errorf logs a formatted message at error level.
	Errorf(format string, args ...any)
	// Fatalf logs a formatted message at fatal level and then calls os.Exit(1).
	Fatalf(format string, args ...any)

	// With creates a new logger that includes the given key-value pairs
	// in every subsequent entry.
	With(keysAndValues ...any) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Errorx logs an error with its errx code, type, trace and details.
	Errorx(err error)

	// Sync flushes any buffered log entries. Intended for use on shutdown.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

// New creates a new Logger instance with the provided configuration.
func New(cfg Config) (Logger, error) {
	zapLogger, err := cfg.buildZap()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop returns a Logger that discards everything. Intended for tests.
func Nop() Logger {
	return &logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{SugaredLogger: l.SugaredLogger.Named(name)}
}

func (l *logger) Errorx(err error) {
	e := errx.AsErrorX(err)
	l.SugaredLogger.With(
		"error_code", e.Code(),
		"error_type", e.Type().String(),
		"error_trace", e.Trace(),
		"error_details", e.Details(),
		"error_fields", e.Fields(),
	).Error(e.Error())
}

func stdoutSink() io.Writer {
	return os.Stdout
}

// fileSink returns a rotating file writer for the configured path.
func (c Config) fileSink() io.Writer {
	return &lumberjack.Logger{
		Filename:   c.FilePath,
		MaxSize:    c.FileMaxSizeMB,
		MaxBackups: c.FileMaxBackups,
		Compress:   true,
	}
}
