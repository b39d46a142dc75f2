package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "file"
	timeKey    = "time"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error".
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"debug"`

	// Encoding specifies the log format: "json" for production pipelines,
	// "console" for development.
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"json"`

	// FilePath, when set, duplicates log output to a size-rotated file.
	FilePath string `yaml:"file_path"`
	// FileMaxSizeMB is the maximum size of the log file before rotation.
	FileMaxSizeMB int `yaml:"file_max_size_mb" default:"100"`
	// FileMaxBackups is the number of rotated files to retain.
	FileMaxBackups int `yaml:"file_max_backups" default:"3"`
}

// buildZap assembles the zap logger from the configuration.
func (c Config) buildZap() (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errx.Wrap(err)
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var encoder zapcore.Encoder
	if c.Encoding == EncodingConsole {
		// Development mode gets colored levels and indented field output.
		encoder = newDevEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(stdoutSink()), level),
	}

	if c.FilePath != "" {
		// File output is always JSON regardless of console encoding.
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(c.fileSink()),
			level,
		))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	), nil
}
